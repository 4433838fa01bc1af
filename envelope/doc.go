// Package envelope turns a decoded signal into per-bar display
// intensities.
//
// The envelope is the ordered sequence of RMS amplitudes over equal
// windows of the input, normalized so the loudest window maps to the
// configured y-limit. Silence maps to an all-zero envelope.
package envelope
