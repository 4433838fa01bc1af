// Package vorbis provides Ogg Vorbis audio decoding via
// github.com/jfreymuth/oggvorbis.
//
// The decoder returns an audio.Source yielding interleaved float32
// samples in [-1.0, 1.0]:
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(reader)
package vorbis
