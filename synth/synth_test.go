package synth

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestParseWave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Wave
	}{
		{"sine", Sine},
		{"square", Square},
		{"triangle", Triangle},
		{"sawtooth", Sawtooth},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseWave(tt.in)
			if err != nil {
				t.Fatalf("ParseWave(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseWave(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseWave_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseWave("noise"); !errors.Is(err, ErrUnknownWave) {
		t.Errorf("ParseWave(noise) error = %v, want ErrUnknownWave", err)
	}
}

func TestGenerator_Metadata(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Sine, 440, 1.0, 22050, 5)

	if gen.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", gen.SampleRate())
	}
	if gen.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", gen.Channels())
	}
}

func TestGenerator_Length(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Sine, 440, 1.0, 22050, 2)

	total := 0
	buf := make([]float32, 1000)
	for {
		n, err := gen.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 44100 {
		t.Errorf("generated %d samples, want 44100", total)
	}
}

func TestGenerator_AmplitudeBounds(t *testing.T) {
	t.Parallel()

	waves := []Wave{Sine, Square, Triangle, Sawtooth}
	for _, w := range waves {
		w := w
		t.Run(w.String(), func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(w, 440, 0.8, 22050, 1)
			buf := make([]float32, 22050)
			n, _ := gen.ReadSamples(buf)

			for i := 0; i < n; i++ {
				if v := math.Abs(float64(buf[i])); v > 0.8+1e-6 {
					t.Fatalf("%s sample %d = %v, exceeds amplitude 0.8", w, i, buf[i])
				}
			}
		})
	}
}

func TestGenerator_SquareValues(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Square, 440, 1.0, 22050, 1)
	buf := make([]float32, 4096)
	n, _ := gen.ReadSamples(buf)

	for i := 0; i < n; i++ {
		if buf[i] != 1.0 && buf[i] != -1.0 {
			t.Fatalf("square sample %d = %v, want ±1.0", i, buf[i])
		}
	}
}

func TestGenerator_SineStartsAtZero(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Sine, 440, 1.0, 22050, 1)
	buf := make([]float32, 1)
	if _, err := gen.ReadSamples(buf); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if buf[0] != 0 {
		t.Errorf("first sine sample = %v, want 0", buf[0])
	}
}
