// Package render rasterizes envelope intensities into RGBA video
// frames.
//
// Three styles share one coordinate system and one Params set: bars,
// line and circle. Frame is stateless, which keeps output deterministic
// frame to frame and makes the styles trivially swappable.
package render
