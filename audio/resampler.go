// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/waveviz/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples; preserves channel count.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// Sliding window of 4 frames around the interpolation point:
	// win[0]=t-1, win[1]=t0, win[2]=t+1, win[3]=t+2.
	win  [4][]float32
	have [4]bool

	// Fractional position between win[1] and win[2].
	pos    float64
	primed bool
	eof    bool

	frameBuf []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		frameBuf: make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the initial interpolation window. Missing tail frames are
// duplicated from the last one read so short streams still resample.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.frameBuf)
		if n > 0 {
			copy(r.win[i], r.frameBuf[:n])
			r.have[i] = true
		}

		if err == io.EOF {
			r.eof = true
			if i == 0 && n == 0 {
				return io.EOF
			}
			for j := i + 1; j < 4; j++ {
				copy(r.win[j], r.win[i])
				r.have[j] = r.have[i]
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// advance shifts the window left by one frame and reads the next source
// frame into win[3].
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(r.win[3], r.frameBuf[:n])
		r.have[3] = true
	} else {
		r.have[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.have[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	wanted := len(dst) / r.channels

	for written < wanted {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y0 := r.win[1][c]
			if r.have[0] {
				y0 = r.win[0][c]
			}
			y3 := r.win[2][c]
			if r.have[3] {
				y3 = r.win[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.win[1][c], r.win[2][c], y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
