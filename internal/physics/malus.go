package physics

import "math"

// TransmittedIntensity applies Malus's law: the intensity passed by a
// polarizer at angleDeg degrees from the incident polarization axis.
func TransmittedIntensity(initialIntensity, angleDeg float64) float64 {
	c := math.Cos(degToRad(angleDeg))
	return initialIntensity * c * c
}
