package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOggReader serves canned float32 frames in place of a real decoder.
type fakeOggReader struct {
	data     []float32
	pos      int
	rate     int
	channels int
}

func (f *fakeOggReader) SampleRate() int { return f.rate }
func (f *fakeOggReader) Channels() int   { return f.channels }

func (f *fakeOggReader) Read(p []float32) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	// Never split a frame
	n -= n % f.channels
	f.pos += n
	return n / f.channels, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeOggReader{data: []float32{0.1, 0.2, 0.3, 0.4}, rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{0.1, 0.2, 0.3, 0.4}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if n, err := s.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("drained ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_RoundsDownToWholeFrames(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeOggReader{data: []float32{1, 2, 3, 4, 5, 6}, rate: 44100, channels: 2},
		sampleRate: 44100,
		channels:   2,
	}

	// An odd-sized request holds two whole stereo frames
	dst := make([]float32, 5)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() = %d, want 4", n)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode() succeeded on garbage input, want error")
	}
}
