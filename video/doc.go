// Package video maps envelope time onto output frames and drives the
// external ffmpeg encoder.
//
// The Mapper owns the audio/video synchronization arithmetic. The
// Assembler streams rendered RGBA frames into a silent H.264 encode and
// then muxes the audio track, renaming the result into place only on
// success so a failed run leaves no partial output.
//
// Speed changes only the image playback rate relative to the fixed
// audio track; when duration*fps/speed is fractional, the truncated
// video tail means audio and video may not end at the same instant.
// This is a documented limitation, not corrected here.
package video
