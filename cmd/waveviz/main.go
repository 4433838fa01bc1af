package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/ik5/waveviz"
)

var (
	configPath string
	verbose    bool

	flags = waveviz.DefaultConfig()
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", "", "TOML configuration file with flag defaults")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	pflag.StringVar(&flags.WaveType, "wave_type", flags.WaveType, "synthesized tone shape: sine|square|triangle|sawtooth")
	pflag.StringVar(&flags.WaveformType, "waveform_type", flags.WaveformType, "visual style: bars|line|circle")
	pflag.IntVar(&flags.NumBars, "num_bars", flags.NumBars, "number of bars/points in the visualization")
	pflag.Float64Var(&flags.BarWidth, "bar_width", flags.BarWidth, "bar width as a fraction of its slot")
	pflag.StringVar(&flags.FaceColor, "facecolor", flags.FaceColor, "background color")
	pflag.StringVar(&flags.BarColor, "bar_color", flags.BarColor, "bar/line fill color")
	pflag.StringVar(&flags.EdgeColor, "edge_color", flags.EdgeColor, "bar edge color")
	pflag.Float64Var(&flags.BarOpacity, "bar_opacity", flags.BarOpacity, "bar opacity in [0, 1]")
	pflag.Float64Var(&flags.Speed, "speed", flags.Speed, "playback speed factor, higher is faster")
	pflag.IntVar(&flags.FPS, "fps", flags.FPS, "output video frame rate")
	pflag.Float64Var(&flags.YLim, "ylim", flags.YLim, "intensity value mapped to full bar height")
	pflag.IntVar(&flags.Width, "width", flags.Width, "frame width in pixels")
	pflag.IntVar(&flags.Height, "height", flags.Height, "frame height in pixels")
	pflag.Float64Var(&flags.Duration, "duration", flags.Duration, "synthesized tone length in seconds")
	pflag.StringVar(&flags.Output, "output", flags.Output, "output file name without extension")
	pflag.StringVar(&flags.FFmpegPath, "ffmpeg", flags.FFmpegPath, "path to the ffmpeg binary (default: search PATH)")
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [audio_file]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Renders an animated waveform video from an audio file.")
		fmt.Fprintln(os.Stderr, "Without an audio file, a tone of --wave_type is synthesized.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := waveviz.Visualize(ctx, pflag.Arg(0), cfg, slog.Default()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// buildConfig merges defaults, the optional TOML file and explicit
// flags, in that order of precedence.
func buildConfig() (waveviz.Config, error) {
	if configPath == "" {
		return flags, nil
	}

	f, err := os.Open(configPath)
	if err != nil {
		return waveviz.Config{}, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	cfg, err := waveviz.ParseConfig(f)
	if err != nil {
		return waveviz.Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	// Flags given on the command line win over the file.
	pflag.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "wave_type":
			cfg.WaveType = flags.WaveType
		case "waveform_type":
			cfg.WaveformType = flags.WaveformType
		case "num_bars":
			cfg.NumBars = flags.NumBars
		case "bar_width":
			cfg.BarWidth = flags.BarWidth
		case "facecolor":
			cfg.FaceColor = flags.FaceColor
		case "bar_color":
			cfg.BarColor = flags.BarColor
		case "edge_color":
			cfg.EdgeColor = flags.EdgeColor
		case "bar_opacity":
			cfg.BarOpacity = flags.BarOpacity
		case "speed":
			cfg.Speed = flags.Speed
		case "fps":
			cfg.FPS = flags.FPS
		case "ylim":
			cfg.YLim = flags.YLim
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "duration":
			cfg.Duration = flags.Duration
		case "output":
			cfg.Output = flags.Output
		case "ffmpeg":
			cfg.FFmpegPath = flags.FFmpegPath
		}
	})

	return cfg, nil
}
