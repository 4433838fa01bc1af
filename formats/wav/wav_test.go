package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeWavReader serves canned PCM ints in place of a real decoder.
type fakeWavReader struct {
	data []int
	pos  int
}

func (f *fakeWavReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamplesScaling(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeWavReader{data: []int{16384, -16384, 0, 32767}},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{0.5, -0.5, 0, 32767.0 / 32768.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:      &fakeWavReader{data: []int{100, 200}},
		bitDepth: 16,
	}

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	if n, err := s.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("drained ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestPCMScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{12, 32768}, // unknown depths fall back to 16-bit
	}

	for _, tt := range tests {
		if got := pcmScale(tt.bitDepth); got != tt.want {
			t.Errorf("pcmScale(%d) = %v, want %v", tt.bitDepth, got, tt.want)
		}
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not riff data")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float64{0, 0.5, -0.5, 0.25, -1, 1}
	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WritePCM16(f, 22050, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	src, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	var got []float32
	buf := make([]float32, 4)
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, want := range samples {
		if math.Abs(float64(got[i])-want) > 1e-3 {
			t.Errorf("sample %d = %v, want %v within 1e-3", i, got[i], want)
		}
	}
}

func TestDecode_NonSeekableInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WritePCM16(f, 8000, []float64{0.1, 0.2, 0.3}); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Hide the Seek method so Decode takes the buffering path
	src, err := Decoder{}.Decode(struct{ io.Reader }{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
}
