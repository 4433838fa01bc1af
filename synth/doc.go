// SPDX-License-Identifier: EPL-2.0

// Package synth generates fixed-duration test tones.
//
// Generators are used when no input file is given: the tone is both
// analyzed for the on-screen envelope and written out as the video's
// audio track. Four shapes are available: sine, square, triangle and
// sawtooth.
//
//	gen := synth.NewGenerator(synth.Sine, 440, 1.0, 22050, 5)
//	sig, err := audio.Collect(gen, 22050, 4096)
package synth
