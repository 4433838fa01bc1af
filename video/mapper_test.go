package video

import "testing"

func TestMapper_FrameCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration float64
		fps      int
		speed    float64
		want     int
	}{
		{"two seconds at 10fps", 2, 10, 1.0, 20},
		{"double speed halves frames", 2, 10, 2.0, 10},
		{"half speed doubles frames", 2, 10, 0.5, 40},
		{"fractional tail truncates", 1.05, 10, 1.0, 10},
		{"five seconds at 20fps", 5, 20, 1.0, 100},
		{"zero duration", 0, 10, 1.0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := Mapper{Duration: tt.duration, FPS: tt.fps, Speed: tt.speed, Bars: 10}
			if got := m.FrameCount(); got != tt.want {
				t.Errorf("FrameCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMapper_SpeedDoublingHalvesFrames(t *testing.T) {
	t.Parallel()

	for _, duration := range []float64{1.0, 2.7, 33.333} {
		base := Mapper{Duration: duration, FPS: 30, Speed: 1.0, Bars: 10}
		fast := Mapper{Duration: duration, FPS: 30, Speed: 2.0, Bars: 10}

		half := base.FrameCount() / 2
		got := fast.FrameCount()
		if got < half-1 || got > half+1 {
			t.Errorf("duration %v: FrameCount at 2x = %d, want %d±1", duration, got, half)
		}
	}
}

func TestMapper_EnvelopeIndexMonotonic(t *testing.T) {
	t.Parallel()

	m := Mapper{Duration: 2, FPS: 10, Speed: 1.0, Bars: 10}

	prev := 0
	for i := 0; i < m.FrameCount(); i++ {
		idx := m.EnvelopeIndex(i)
		if idx < prev {
			t.Fatalf("EnvelopeIndex(%d) = %d went backwards from %d", i, idx, prev)
		}
		prev = idx
	}

	if first := m.EnvelopeIndex(0); first != 0 {
		t.Errorf("EnvelopeIndex(0) = %d, want 0", first)
	}
	if last := m.EnvelopeIndex(m.FrameCount() - 1); last != 9 {
		t.Errorf("EnvelopeIndex(last) = %d, want 9", last)
	}
}

func TestMapper_EnvelopeIndexClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    Mapper
	}{
		{"extreme speed", Mapper{Duration: 1, FPS: 10, Speed: 100, Bars: 5}},
		{"extreme fps", Mapper{Duration: 1, FPS: 1000, Speed: 0.01, Bars: 5}},
		{"single bar", Mapper{Duration: 10, FPS: 30, Speed: 1, Bars: 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Probe well past the nominal frame range too
			for i := 0; i < tt.m.FrameCount()+100; i++ {
				idx := tt.m.EnvelopeIndex(i)
				if idx < 0 || idx >= tt.m.Bars {
					t.Fatalf("EnvelopeIndex(%d) = %d, outside [0, %d)", i, idx, tt.m.Bars)
				}
			}
		})
	}
}

func TestMapper_SpeedAdvancesEnvelope(t *testing.T) {
	t.Parallel()

	slow := Mapper{Duration: 10, FPS: 10, Speed: 1.0, Bars: 100}
	fast := Mapper{Duration: 10, FPS: 10, Speed: 2.0, Bars: 100}

	// At the same frame index, double speed sits twice as deep in the
	// envelope
	if s, f := slow.EnvelopeIndex(20), fast.EnvelopeIndex(20); f != 2*s {
		t.Errorf("EnvelopeIndex(20): slow=%d fast=%d, want fast = 2*slow", s, f)
	}
}
