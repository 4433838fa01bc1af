// SPDX-License-Identifier: EPL-2.0

package video

// Mapper converts output frame indices into envelope indices. Speed
// above 1.0 advances through the envelope faster than real time; the
// audio track itself is never resampled, only the image playback rate
// changes.
type Mapper struct {
	Duration float64 // audio duration in seconds
	FPS      int
	Speed    float64
	Bars     int // envelope length
}

// FrameCount is floor(duration * fps / speed). A fractional tail is
// truncated; the audio beyond it is still muxed in full.
func (m Mapper) FrameCount() int {
	if m.Duration <= 0 || m.FPS <= 0 || m.Speed <= 0 {
		return 0
	}
	return int(m.Duration * float64(m.FPS) / m.Speed)
}

// EnvelopeIndex maps output frame i to the nearest envelope window,
// clamped into [0, Bars-1] for any speed/fps combination.
func (m Mapper) EnvelopeIndex(i int) int {
	if m.Bars <= 0 {
		return 0
	}
	if m.Duration <= 0 || m.FPS <= 0 {
		return 0
	}

	elapsed := float64(i) / float64(m.FPS) * m.Speed
	idx := int(elapsed / m.Duration * float64(m.Bars))

	if idx < 0 {
		return 0
	}
	if idx >= m.Bars {
		return m.Bars - 1
	}
	return idx
}
