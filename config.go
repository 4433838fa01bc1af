// SPDX-License-Identifier: EPL-2.0

package waveviz

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml"

	"github.com/ik5/waveviz/render"
	"github.com/ik5/waveviz/synth"
)

// Config holds every visualization knob. It is built once from flags
// (optionally seeded from a TOML file), validated, and read-only from
// then on.
type Config struct {
	// WaveType is the synthesized tone shape used when no input file is
	// given: sine, square, triangle or sawtooth.
	WaveType string `toml:"wave_type"`
	// WaveformType is the visual style: bars, line or circle.
	WaveformType string `toml:"waveform_type"`

	NumBars    int     `toml:"num_bars"`
	BarWidth   float64 `toml:"bar_width"`
	FaceColor  string  `toml:"facecolor"`
	BarColor   string  `toml:"bar_color"`
	EdgeColor  string  `toml:"edge_color"`
	BarOpacity float64 `toml:"bar_opacity"`

	// Speed is the playback speed factor; higher compresses the
	// animation relative to the audio.
	Speed float64 `toml:"speed"`
	FPS   int     `toml:"fps"`
	YLim  float64 `toml:"ylim"`

	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Duration of the synthesized tone in seconds. Ignored when an
	// input file is given.
	Duration float64 `toml:"duration"`

	// Output is the result file name without the .mp4 extension.
	Output string `toml:"output"`

	// FFmpegPath overrides PATH lookup of the encoder binary.
	FFmpegPath string `toml:"ffmpeg_path"`
}

func DefaultConfig() Config {
	return Config{
		WaveType:     "sine",
		WaveformType: "bars",
		NumBars:      50,
		BarWidth:     0.8,
		FaceColor:    "black",
		BarColor:     "cyan",
		EdgeColor:    "cyan",
		BarOpacity:   1.0,
		Speed:        1.0,
		FPS:          20,
		YLim:         1.0,
		Width:        1280,
		Height:       720,
		Duration:     5.0,
		Output:       "audio_visualization",
	}
}

// ParseConfig overlays a TOML document on top of the defaults.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w", err)
	}
	return cfg, nil
}

// resolved carries the parsed forms of the string-typed knobs.
type resolved struct {
	style  render.Style
	wave   synth.Wave
	params render.Params
}

func (c *Config) resolve() (resolved, error) {
	var res resolved
	var err error

	res.style, err = render.ParseStyle(c.WaveformType)
	if err != nil {
		return res, fmt.Errorf("%w: waveform_type %q: %w", ErrInvalidConfiguration, c.WaveformType, err)
	}

	res.wave, err = synth.ParseWave(c.WaveType)
	if err != nil {
		return res, fmt.Errorf("%w: wave_type %q: %w", ErrInvalidConfiguration, c.WaveType, err)
	}

	face, err := render.ParseColor(c.FaceColor)
	if err != nil {
		return res, fmt.Errorf("%w: facecolor %q: %w", ErrInvalidConfiguration, c.FaceColor, err)
	}
	fill, err := render.ParseColor(c.BarColor)
	if err != nil {
		return res, fmt.Errorf("%w: bar_color %q: %w", ErrInvalidConfiguration, c.BarColor, err)
	}
	edge, err := render.ParseColor(c.EdgeColor)
	if err != nil {
		return res, fmt.Errorf("%w: edge_color %q: %w", ErrInvalidConfiguration, c.EdgeColor, err)
	}

	switch {
	case c.NumBars <= 0:
		return res, fmt.Errorf("%w: num_bars must be positive, got %d", ErrInvalidConfiguration, c.NumBars)
	case c.BarWidth <= 0 || c.BarWidth > 1:
		return res, fmt.Errorf("%w: bar_width must be in (0, 1], got %g", ErrInvalidConfiguration, c.BarWidth)
	case c.BarOpacity < 0 || c.BarOpacity > 1:
		return res, fmt.Errorf("%w: bar_opacity must be in [0, 1], got %g", ErrInvalidConfiguration, c.BarOpacity)
	case c.Speed <= 0:
		return res, fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidConfiguration, c.Speed)
	case c.FPS <= 0:
		return res, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfiguration, c.FPS)
	case c.YLim <= 0:
		return res, fmt.Errorf("%w: ylim must be positive, got %g", ErrInvalidConfiguration, c.YLim)
	case c.Width <= 0 || c.Width%2 != 0:
		// yuv420p encodes require even dimensions
		return res, fmt.Errorf("%w: width must be positive and even, got %d", ErrInvalidConfiguration, c.Width)
	case c.Height <= 0 || c.Height%2 != 0:
		return res, fmt.Errorf("%w: height must be positive and even, got %d", ErrInvalidConfiguration, c.Height)
	case c.Duration <= 0:
		return res, fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidConfiguration, c.Duration)
	case c.Output == "":
		return res, fmt.Errorf("%w: output name is empty", ErrInvalidConfiguration)
	}

	res.params = render.Params{
		Width:      c.Width,
		Height:     c.Height,
		BarWidth:   c.BarWidth,
		Opacity:    c.BarOpacity,
		YLim:       c.YLim,
		Background: face,
		Fill:       fill,
		Edge:       edge,
	}

	return res, nil
}

// Validate checks the configuration eagerly, before any audio is
// touched.
func (c *Config) Validate() error {
	_, err := c.resolve()
	return err
}
