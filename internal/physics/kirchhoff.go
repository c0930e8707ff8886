package physics

import "math"

// VoltageLoopSum returns the signed sum of the voltages around a loop.
// Sources are positive, drops negative. An empty loop sums to zero.
func VoltageLoopSum(voltages []float64) float64 {
	var sum float64
	for _, v := range voltages {
		sum += v
	}
	return sum
}

// VoltageLoopSatisfied reports whether the loop obeys Kirchhoff's voltage law,
// allowing |sum| up to VoltageTolerance.
func VoltageLoopSatisfied(voltages []float64) bool {
	return math.Abs(VoltageLoopSum(voltages)) < VoltageTolerance
}
