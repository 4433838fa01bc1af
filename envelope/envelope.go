// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/waveviz/audio"
)

var ErrNoWindows = errors.New("window count must be positive")

// minPeak guards the normalization divisor so silent input yields an
// all-zero envelope instead of NaN.
const minPeak = 1e-9

// Compute partitions sig.Samples into n contiguous windows (the last
// may be shorter), computes the RMS amplitude of each, normalizes by
// the loudest window and scales into [0, ylim].
//
// Windows are independent, so they are computed by a bounded worker
// pool and gathered in index order.
func Compute(ctx context.Context, sig audio.Signal, n int, ylim float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrNoWindows
	}

	vals := make([]float64, n)
	window := (len(sig.Samples) + n - 1) / n

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		i := i
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := min(i*window, len(sig.Samples))
		end := min(start+window, len(sig.Samples))

		g.Go(func() error {
			vals[i] = rms(sig.Samples[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	peak := 0.0
	for _, v := range vals {
		peak = math.Max(peak, v)
	}
	if peak < minPeak {
		// Silence: leave the envelope at zero
		return vals, nil
	}

	for i := range vals {
		vals[i] = vals[i] / peak * ylim
	}

	return vals, nil
}

func rms(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range window {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(window)))
}
