package physics

// TotalPressure evaluates Bernoulli's equation under standard gravity:
// static pressure plus dynamic pressure (½ρv²) plus hydrostatic pressure (ρgh).
// Units are SI throughout: Pa, kg/m³, m/s, m.
func TotalPressure(staticPressure, density, velocity, height float64) float64 {
	return TotalPressureAt(staticPressure, density, velocity, height, StandardGravity)
}

// TotalPressureAt is TotalPressure with an explicit gravitational acceleration,
// for bodies other than Earth.
func TotalPressureAt(staticPressure, density, velocity, height, gravity float64) float64 {
	return staticPressure + 0.5*density*velocity*velocity + density*gravity*height
}
