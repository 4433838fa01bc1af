// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the building blocks the visualization pipeline
// is assembled from:
//   - Source interface for decoded audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Signal and Collect for draining a Source into memory
//   - Registry for decoder registration by file extension
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and the tone generator implement this interface,
// allowing them to be chained together in processing pipelines.
//
// # Collecting a Signal
//
// Collect builds the standard pipeline (resample, then mix to mono) and
// drains it into a Signal:
//
//	sig, err := audio.Collect(source, 22050, 4096)
//	if err != nil {
//	    // Handle error (audio.ErrEmptyAudio for zero-length streams)
//	}
//	fmt.Println(sig.Duration())
//
// # Format Registry
//
// The registry allows decoder lookup by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Lookup(".wav")
package audio
