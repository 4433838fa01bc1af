// SPDX-License-Identifier: EPL-2.0

// Package waveviz turns an audio file into a synchronized waveform
// video.
//
// The pipeline is: decode the input (or synthesize a tone), compute a
// per-bar RMS envelope, rasterize one frame per output video frame, and
// hand the frames to ffmpeg for H.264 encoding with the original audio
// muxed back in.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - WAV via formats/wav (github.com/go-audio/wav)
//   - MP3 via formats/mp3 (github.com/hajimehoshi/go-mp3)
//   - Ogg Vorbis via formats/vorbis (github.com/jfreymuth/oggvorbis)
//   - AIFF via formats/aiff (github.com/go-audio/aiff)
//
// # Quick Start
//
// The simplest way to render a video is Visualize:
//
//	cfg := waveviz.DefaultConfig()
//	cfg.Output = "clip"
//	if err := cfg.Validate(); err != nil {
//	    // Handle configuration error
//	}
//	err := waveviz.Visualize(ctx, "song.mp3", cfg, slog.Default())
//	// clip.mp4 now holds the animation with the song's audio
//
// When the input path is empty, a tone of the configured wave shape
// (sine, square, triangle or sawtooth) is synthesized and used instead.
//
// # Pipeline Packages
//
// Each stage is usable on its own:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	sig, _ := audio.Collect(src, 22050, 4096)
//	env, _ := envelope.Compute(ctx, sig, 50, 1.0)
//	img := render.Frame(render.Bars, env, params)
//
// The video package drives the external ffmpeg binary; everything else
// is pure Go.
//
// # Error Handling
//
// Configuration problems surface as ErrInvalidConfiguration, inputs no
// decoder understands as ErrUnsupportedFormat, zero-length streams as
// audio.ErrEmptyAudio, and encoder failures as *video.FFmpegError. All
// are fatal; the tool never retries and never leaves a partial output
// file behind.
package waveviz
