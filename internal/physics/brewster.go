package physics

import "math"

// BrewsterAngle returns the polarization angle in degrees for light passing
// from a medium with refractive index n1 into one with index n2.
// The indices are not validated: n1 == 0 yields atan(+Inf) = 90°.
func BrewsterAngle(n1, n2 float64) float64 {
	return radToDeg(math.Atan(n2 / n1))
}
