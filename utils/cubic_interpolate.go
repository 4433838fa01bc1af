// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four
// consecutive samples. x is the fractional position between y1 and y2
// (0 <= x <= 1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	c3 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c1 := 0.5 * (y2 - y0)

	return ((c3*x+c2)*x+c1)*x + y1
}
