package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

var ErrEncoderUnavailable = errors.New("ffmpeg not found in PATH")

// FFmpegError carries the invocation details of a failed ffmpeg run.
type FFmpegError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *FFmpegError) Error() string {
	return fmt.Sprintf("ffmpeg failed (exit=%d, stderr=%q): %v",
		e.ExitCode, truncate(e.Stderr, 200), e.Cause)
}

func (e *FFmpegError) Unwrap() error { return e.Cause }

// Executor runs the external ffmpeg binary.
type Executor struct {
	path string
	log  *slog.Logger
}

// NewExecutor resolves the ffmpeg binary. An empty path means look it
// up in PATH.
func NewExecutor(path string, log *slog.Logger) (*Executor, error) {
	if path == "" {
		var err error
		path, err = exec.LookPath("ffmpeg")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)
		}
	}

	return &Executor{path: path, log: log}, nil
}

// Run executes ffmpeg with the given arguments, feeding stdin when one
// is provided. Stderr is captured for error reporting.
func (e *Executor) Run(ctx context.Context, stdin io.Reader, args []string) error {
	cmd := exec.CommandContext(ctx, e.path, args...)
	cmd.Stdin = stdin

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	e.log.Debug("executing ffmpeg", "args", args)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &FFmpegError{
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Cause:    err,
		}
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
