// SPDX-License-Identifier: EPL-2.0

package video

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ik5/waveviz/render"
)

// Job describes one full assembly run.
type Job struct {
	Style    render.Style
	Params   render.Params
	Envelope []float64
	Mapper   Mapper

	// AudioPath is the track muxed under the animation (the input file,
	// or the synthesized tone written to a temp WAV).
	AudioPath string
	// OutputPath is the final MP4 location. It is only created on
	// success; all intermediates live in a temp dir next to it.
	OutputPath string
}

// Assembler drives the renderer across every output frame, encodes the
// silent animation and muxes the audio track in.
type Assembler struct {
	exec *Executor
	log  *slog.Logger
}

func NewAssembler(exec *Executor, log *slog.Logger) *Assembler {
	return &Assembler{exec: exec, log: log}
}

// Assemble renders, encodes and muxes. Frames are streamed straight
// into the encoder, so the raster sequence is never held in memory.
func (a *Assembler) Assemble(ctx context.Context, job Job) error {
	frames := job.Mapper.FrameCount()
	if frames <= 0 {
		return errors.New("nothing to encode: zero output frames")
	}

	// Keep intermediates on the same filesystem as the output so the
	// final rename is atomic.
	tmpDir, err := os.MkdirTemp(filepath.Dir(job.OutputPath), ".waveviz-")
	if err != nil {
		return errors.Wrap(err, "creating work dir")
	}
	defer os.RemoveAll(tmpDir)

	silent := filepath.Join(tmpDir, "silent.mp4")
	if err := a.encodeSilent(ctx, job, frames, silent); err != nil {
		return errors.Wrap(err, "encoding silent video")
	}

	muxed := filepath.Join(tmpDir, "muxed.mp4")
	if err := a.mux(ctx, silent, job.AudioPath, muxed); err != nil {
		return errors.Wrap(err, "muxing audio track")
	}

	if err := os.Rename(muxed, job.OutputPath); err != nil {
		return errors.Wrap(err, "placing output file")
	}

	a.log.Info("wrote video",
		"path", job.OutputPath,
		"frames", frames,
		"fps", job.Mapper.FPS)
	return nil
}

// encodeSilent streams raw RGBA frames over stdin into an H.264 encode.
func (a *Assembler) encodeSilent(ctx context.Context, job Job, frames int, outPath string) error {
	pr, pw := io.Pipe()

	go func() {
		defer pw.Close()

		vals := make([]float64, len(job.Envelope))
		for i := 0; i < frames; i++ {
			playhead := job.Mapper.EnvelopeIndex(i)
			for j, v := range job.Envelope {
				if j <= playhead {
					vals[j] = v
				} else {
					vals[j] = 0
				}
			}

			img := render.Frame(job.Style, vals, job.Params)
			if _, err := pw.Write(img.Pix); err != nil {
				// Encoder went away; it reports its own failure.
				return
			}

			if (i+1)%job.Mapper.FPS == 0 {
				a.log.Debug("rendering frames", "done", i+1, "total", frames)
			}
		}
	}()

	err := a.exec.Run(ctx, pr, encodeArgs(job.Params.Width, job.Params.Height, job.Mapper.FPS, outPath))
	pr.Close()
	return err
}

// mux copies the silent video stream and lays the audio track under it.
func (a *Assembler) mux(ctx context.Context, videoPath, audioPath, outPath string) error {
	return a.exec.Run(ctx, nil, muxArgs(videoPath, audioPath, outPath))
}

// encodeArgs builds the rawvideo-over-stdin H.264 encode invocation.
func encodeArgs(width, height, fps int, outPath string) []string {
	return []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%d", fps),
		"-i", "-",
		"-an",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		outPath,
	}
}

// muxArgs builds the audio overlay invocation. The video stream is
// copied untouched; the audio is transcoded to AAC and muxed in full.
func muxArgs(videoPath, audioPath, outPath string) []string {
	return []string{
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-c:a", "aac",
		outPath,
	}
}
