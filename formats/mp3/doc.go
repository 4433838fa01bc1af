// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding via github.com/hajimehoshi/go-mp3.
//
// The decoder returns an audio.Source yielding interleaved stereo
// float32 samples in [-1.0, 1.0]:
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(reader)
package mp3
