// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Signal is a fully decoded mono audio clip. It is the unit the rest of
// the pipeline works on: decode once, analyze, discard.
type Signal struct {
	Samples []float64
	Rate    int
}

// Duration of the clip in seconds.
func (s Signal) Duration() float64 {
	if s.Rate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.Rate)
}

// Collect drains src into a Signal at targetRate, mixing down to mono.
// Sources already at targetRate are read through unchanged; everything
// else goes through the cubic Resampler first.
//
// Returns ErrEmptyAudio if the stream finishes without producing a
// single sample.
func Collect(src Source, targetRate, bufferSize int) (Signal, error) {
	s := src
	if src.SampleRate() != targetRate {
		s = NewResampler(src, targetRate)
	}
	mono := NewMonoMixer(s)

	samples := make([]float64, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			samples = append(samples, float64(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return Signal{}, fmt.Errorf("%w", err)
		}
	}

	if len(samples) == 0 {
		return Signal{}, ErrEmptyAudio
	}

	return Signal{Samples: samples, Rate: targetRate}, nil
}
