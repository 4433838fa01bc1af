// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"io"
	"math"
)

// Wave selects the shape of a generated tone.
type Wave uint8

const (
	Sine Wave = iota
	Square
	Triangle
	Sawtooth
)

var ErrUnknownWave = errors.New("unsupported wave type")

// ParseWave maps a flag value to a Wave.
func ParseWave(s string) (Wave, error) {
	switch s {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	case "sawtooth":
		return Sawtooth, nil
	default:
		return 0, ErrUnknownWave
	}
}

func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Generator produces a fixed-duration mono tone. It implements
// audio.Source so synthesized audio flows through the same pipeline as
// decoded files.
type Generator struct {
	wave      Wave
	frequency float64
	amplitude float64
	rate      int

	total int // samples to generate
	pos   int // samples generated so far
}

// NewGenerator creates a tone generator at rate Hz lasting duration
// seconds.
func NewGenerator(wave Wave, frequency, amplitude float64, rate int, duration float64) *Generator {
	return &Generator{
		wave:      wave,
		frequency: frequency,
		amplitude: amplitude,
		rate:      rate,
		total:     int(float64(rate) * duration),
	}
}

func (g *Generator) SampleRate() int { return g.rate }
func (g *Generator) Channels() int   { return 1 }
func (g *Generator) Close() error    { return nil }

func (g *Generator) ReadSamples(dst []float32) (int, error) {
	if g.pos >= g.total {
		return 0, io.EOF
	}

	n := min(len(dst), g.total-g.pos)
	for i := 0; i < n; i++ {
		dst[i] = float32(g.sample(g.pos + i))
	}
	g.pos += n

	if g.pos >= g.total {
		return n, io.EOF
	}
	return n, nil
}

func (g *Generator) sample(i int) float64 {
	t := float64(i) / float64(g.rate)
	cycles := t * g.frequency

	switch g.wave {
	case Square:
		s := math.Sin(2 * math.Pi * cycles)
		if s >= 0 {
			return g.amplitude
		}
		return -g.amplitude
	case Triangle:
		// Fold the centered ramp to get a linear rise and fall
		frac := cycles - math.Floor(cycles+0.5)
		return g.amplitude * (2*math.Abs(2*frac) - 1)
	case Sawtooth:
		return g.amplitude * 2 * (cycles - math.Floor(cycles+0.5))
	default: // Sine
		return g.amplitude * math.Sin(2*math.Pi*cycles)
	}
}
