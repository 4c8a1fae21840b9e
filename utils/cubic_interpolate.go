// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four
// consecutive samples at fractional position x within [y1, y2],
// where 0 <= x <= 1. The curve passes through y1 at x=0 and y2 at
// x=1; y0 and y3 shape the tangents.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	c3 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c1 := -0.5*y0 + 0.5*y2
	c0 := y1

	return c3*x*x*x + c2*x*x + c1*x + c0
}
