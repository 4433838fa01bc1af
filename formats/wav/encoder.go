// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/waveviz/utils"
)

// WritePCM16 writes mono float64 samples in [-1, 1] as a 16-bit PCM WAV
// file at sampleRate. The writer must be seekable because the RIFF
// header sizes are patched on Close.
func WritePCM16(ws io.WriteSeeker, sampleRate int, samples []float64) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, v := range samples {
		buf.Data[i] = int(utils.Float64ToInt16(v))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
