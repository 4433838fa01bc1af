// Package aiff provides AIFF audio decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Only PCM 16-bit files are supported. The decoder returns an
// audio.Source yielding float32 samples in [-1.0, 1.0].
package aiff
