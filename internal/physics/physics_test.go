package physics

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestTotalPressure(t *testing.T) {
	// Sea-level air moving at 10 m/s, 5 m above the reference plane.
	got := TotalPressure(101325, 1.225, 10, 5)
	want := 101446.31573125
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("TotalPressure = %.8f, want %.8f", got, want)
	}

	// No motion, no elevation: total pressure is the static pressure.
	if got := TotalPressure(101325, 1.225, 0, 0); got != 101325 {
		t.Errorf("TotalPressure at rest = %g, want 101325", got)
	}

	// Velocity enters squared, so its sign cannot matter.
	fwd := TotalPressure(100000, 1000, 3, 0)
	rev := TotalPressure(100000, 1000, -3, 0)
	if fwd != rev {
		t.Errorf("TotalPressure(v=3) = %g but TotalPressure(v=-3) = %g", fwd, rev)
	}
}

func TestTotalPressureAt(t *testing.T) {
	// Martian gravity, thin CO₂ air.
	got := TotalPressureAt(610, 0.020, 2, 10, 3.71)
	want := 610 + 0.5*0.020*4 + 0.020*3.71*10
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("TotalPressureAt = %g, want %g", got, want)
	}

	// Explicit standard gravity matches the default form.
	a := TotalPressure(101325, 1.225, 10, 5)
	b := TotalPressureAt(101325, 1.225, 10, 5, StandardGravity)
	if a != b {
		t.Errorf("TotalPressure = %g, TotalPressureAt(StandardGravity) = %g", a, b)
	}
}

func TestBrewsterAngle(t *testing.T) {
	// Air to glass.
	got := BrewsterAngle(1.0, 1.5)
	if !almostEqual(got, 56.31, 0.005) {
		t.Errorf("BrewsterAngle(1.0, 1.5) = %.4f, want 56.31", got)
	}

	// Air to water.
	got = BrewsterAngle(1.0, 1.33)
	if !almostEqual(got, 53.06, 0.005) {
		t.Errorf("BrewsterAngle(1.0, 1.33) = %.4f, want 53.06", got)
	}

	// Equal indices polarize at 45°.
	if got := BrewsterAngle(1.5, 1.5); !almostEqual(got, 45, 1e-9) {
		t.Errorf("BrewsterAngle(1.5, 1.5) = %g, want 45", got)
	}

	// n1 = 0 follows IEEE division: atan(+Inf) = 90°.
	if got := BrewsterAngle(0, 1.5); got != 90 {
		t.Errorf("BrewsterAngle(0, 1.5) = %g, want 90", got)
	}
}

func TestVoltageLoopSum(t *testing.T) {
	if got := VoltageLoopSum([]float64{10, -4, -6}); got != 0 {
		t.Errorf("VoltageLoopSum = %g, want 0", got)
	}
	if got := VoltageLoopSum([]float64{12, -5, -4}); got != 3 {
		t.Errorf("VoltageLoopSum = %g, want 3", got)
	}
	if got := VoltageLoopSum(nil); got != 0 {
		t.Errorf("VoltageLoopSum(nil) = %g, want 0", got)
	}
}

func TestVoltageLoopSatisfied(t *testing.T) {
	cases := []struct {
		name     string
		voltages []float64
		want     bool
	}{
		{"balanced loop", []float64{10, -4, -6}, true},
		{"unbalanced loop", []float64{12, -5, -4}, false},
		{"within tolerance", []float64{10, -10 + 1e-9}, true},
		{"exactly at tolerance", []float64{VoltageTolerance}, false},
		{"empty loop", []float64{}, true},
		{"nil loop", nil, true},
		{"single source", []float64{5}, false},
	}

	for _, tc := range cases {
		if got := VoltageLoopSatisfied(tc.voltages); got != tc.want {
			t.Errorf("%s: VoltageLoopSatisfied(%v) = %v, want %v", tc.name, tc.voltages, got, tc.want)
		}
	}
}

func TestTransmittedIntensity(t *testing.T) {
	// Aligned polarizer passes everything.
	if got := TransmittedIntensity(100, 0); got != 100 {
		t.Errorf("TransmittedIntensity(100, 0) = %g, want 100", got)
	}

	// Crossed polarizer passes nothing, up to the float cos(π/2).
	if got := TransmittedIntensity(100, 90); !almostEqual(got, 0, 1e-12) {
		t.Errorf("TransmittedIntensity(100, 90) = %g, want ~0", got)
	}

	// 45° halves the intensity.
	if got := TransmittedIntensity(100, 45); !almostEqual(got, 50, 1e-9) {
		t.Errorf("TransmittedIntensity(100, 45) = %g, want 50", got)
	}

	// cos² keeps the result within [0, I₀] for any angle.
	for deg := -360.0; deg <= 360; deg += 7.5 {
		got := TransmittedIntensity(100, deg)
		if got < 0 || got > 100 {
			t.Errorf("TransmittedIntensity(100, %g) = %g, outside [0, 100]", deg, got)
		}
	}

	// Intensity scales linearly.
	if got := TransmittedIntensity(40, 60); !almostEqual(got, 10, 1e-9) {
		t.Errorf("TransmittedIntensity(40, 60) = %g, want 10", got)
	}
}
