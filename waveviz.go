// SPDX-License-Identifier: EPL-2.0

package waveviz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/waveviz/audio"
	"github.com/ik5/waveviz/envelope"
	"github.com/ik5/waveviz/formats/aiff"
	"github.com/ik5/waveviz/formats/mp3"
	"github.com/ik5/waveviz/formats/vorbis"
	"github.com/ik5/waveviz/formats/wav"
	"github.com/ik5/waveviz/synth"
	"github.com/ik5/waveviz/video"
)

const (
	// loadRate is the analysis sample rate every input is resampled to
	// before envelope extraction.
	loadRate   = 22050
	bufferSize = 4096

	toneFrequency = 440.0
	toneAmplitude = 1.0
)

// DefaultRegistry returns a Registry with all built-in decoders
// registered under their usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// Visualize runs the whole pipeline: decode the input file (or
// synthesize a tone when inputPath is empty), extract the RMS envelope,
// and render the animation into <output>.mp4 with the audio track
// attached.
func Visualize(ctx context.Context, inputPath string, cfg Config, logger *slog.Logger) error {
	res, err := cfg.resolve()
	if err != nil {
		return err
	}

	sig, audioPath, cleanup, err := loadSignal(inputPath, res.wave, cfg.Duration, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("audio loaded",
		"duration", sig.Duration(),
		"rate", sig.Rate,
		"samples", len(sig.Samples))

	env, err := envelope.Compute(ctx, sig, cfg.NumBars, cfg.YLim)
	if err != nil {
		return fmt.Errorf("computing envelope: %w", err)
	}

	mapper := video.Mapper{
		Duration: sig.Duration(),
		FPS:      cfg.FPS,
		Speed:    cfg.Speed,
		Bars:     cfg.NumBars,
	}

	executor, err := video.NewExecutor(cfg.FFmpegPath, logger)
	if err != nil {
		return err
	}

	asm := video.NewAssembler(executor, logger)
	return asm.Assemble(ctx, video.Job{
		Style:      res.style,
		Params:     res.params,
		Envelope:   env,
		Mapper:     mapper,
		AudioPath:  audioPath,
		OutputPath: cfg.Output + ".mp4",
	})
}

// loadSignal decodes inputPath, or synthesizes a tone when it is empty.
// It returns the analysis signal, the path of the audio track to mux,
// and a cleanup func for any temp file it created.
func loadSignal(inputPath string, wave synth.Wave, duration float64, logger *slog.Logger) (audio.Signal, string, func(), error) {
	noop := func() {}

	if inputPath == "" {
		logger.Info("no input file, synthesizing tone",
			"wave", wave.String(),
			"seconds", duration)

		gen := synth.NewGenerator(wave, toneFrequency, toneAmplitude, loadRate, duration)
		sig, err := audio.Collect(gen, loadRate, bufferSize)
		if err != nil {
			return audio.Signal{}, "", noop, fmt.Errorf("synthesizing tone: %w", err)
		}

		// The tone only exists in memory; write it out so the assembler
		// has a track to mux.
		tmp, err := os.CreateTemp("", "waveviz-tone-*.wav")
		if err != nil {
			return audio.Signal{}, "", noop, fmt.Errorf("creating tone file: %w", err)
		}
		cleanup := func() { os.Remove(tmp.Name()) }

		if err := wav.WritePCM16(tmp, sig.Rate, sig.Samples); err != nil {
			tmp.Close()
			cleanup()
			return audio.Signal{}, "", noop, fmt.Errorf("writing tone file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			cleanup()
			return audio.Signal{}, "", noop, fmt.Errorf("writing tone file: %w", err)
		}

		return sig, tmp.Name(), cleanup, nil
	}

	ext := filepath.Ext(inputPath)
	dec, ok := DefaultRegistry().Lookup(ext)
	if !ok {
		return audio.Signal{}, "", noop, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return audio.Signal{}, "", noop, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Signal{}, "", noop, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, inputPath, err)
	}
	defer src.Close()

	sig, err := audio.Collect(src, loadRate, bufferSize)
	if err != nil {
		return audio.Signal{}, "", noop, fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	return sig, inputPath, noop, nil
}
