package main

import (
	"fmt"
	"math"

	"github.com/formulalab/backend/internal/algebra"
	"github.com/formulalab/backend/internal/physics"
)

// Console walkthrough of the formula library. No network, no database.
func main() {
	fmt.Println("=== FormulaLab formula walkthrough ===")

	fmt.Println("\n--- Bernoulli's theorem ---")
	total := physics.TotalPressure(101325.0, 1.225, 10.0, 5.0)
	fmt.Printf("total_pressure(p=101325 Pa, rho=1.225 kg/m3, v=10 m/s, h=5 m) = %.4f Pa\n", total)
	mars := physics.TotalPressureAt(610.0, 0.020, 10.0, 5.0, 3.72076)
	fmt.Printf("total_pressure on Mars (p=610 Pa, rho=0.020 kg/m3, g=3.72076) = %.4f Pa\n", mars)

	fmt.Println("\n--- Brewster's law ---")
	fmt.Printf("brewster_angle(air 1.0 -> glass 1.5) = %.2f degrees\n", physics.BrewsterAngle(1.0, 1.5))
	fmt.Printf("brewster_angle(air 1.0 -> water 1.33) = %.2f degrees\n", physics.BrewsterAngle(1.0, 1.33))

	fmt.Println("\n--- Kirchhoff's voltage law ---")
	loops := [][]float64{
		{10.0, -4.0, -6.0},
		{12.0, -5.0, -4.0},
	}
	for _, loop := range loops {
		fmt.Printf("loop %v: sum = %g, satisfied = %t\n",
			loop, physics.VoltageLoopSum(loop), physics.VoltageLoopSatisfied(loop))
	}

	fmt.Println("\n--- Malus' law ---")
	for _, angle := range []float64{0, 30, 45, 60, 90} {
		fmt.Printf("transmitted_intensity(I0=100, theta=%g deg) = %.4f\n",
			angle, physics.TransmittedIntensity(100.0, angle))
	}

	fmt.Println("\n--- Complex arithmetic ---")
	a := algebra.NewComplex(3, 4)
	b := algebra.NewComplex(1, -2)
	fmt.Printf("a = %s, b = %s\n", a, b)
	fmt.Printf("a + b = %s\n", a.Plus(b))
	fmt.Printf("a - b = %s\n", a.Minus(b))
	fmt.Printf("a * b = %s\n", a.Times(b))
	if q, err := a.Div(b); err == nil {
		fmt.Printf("a / b = %s\n", q)
	}
	fmt.Printf("conjugate(a) = %s\n", a.Conjugate())
	fmt.Printf("|a| = %g, arg(a) = %g rad\n", a.Abs(), a.Arg())

	p := algebra.NewPolar(2, math.Pi/4)
	fmt.Printf("polar(m=2, theta=pi/4) = %s (|z| = %g)\n", p, p.Abs())

	if _, err := a.Div(algebra.NewComplex(0, 0)); err != nil {
		fmt.Printf("a / (0 + 0i) -> error: %v\n", err)
	}

	fmt.Println("\nDone.")
}
