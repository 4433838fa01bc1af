// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding goes through github.com/go-audio/wav and supports the PCM
// bit depths go-audio handles (8/16/24/32). The decoder returns an
// audio.Source that yields float32 samples in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// WritePCM16 writes mono float64 samples as a 16-bit PCM WAV file. It
// is used to give synthesized tones an audio track:
//
//	f, _ := os.Create("tone.wav")
//	err := wav.WritePCM16(f, 22050, samples)
package wav
