package algebra

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByZero is returned by Div when the divisor is the zero complex number.
var ErrDivisionByZero = errors.New("division by zero complex number")

// Complex is an immutable complex number with float64 components.
// The zero value is the additive identity. All operations return new values.
type Complex struct {
	re float64
	im float64
}

// NewComplex builds a complex number from rectangular components.
func NewComplex(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// NewPolar builds a complex number from polar form: a magnitude and an
// angle in radians.
func NewPolar(magnitude, angle float64) Complex {
	return Complex{
		re: magnitude * math.Cos(angle),
		im: magnitude * math.Sin(angle),
	}
}

// Real returns the real component.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary component.
func (z Complex) Imag() float64 { return z.im }

// Abs returns the modulus sqrt(re² + im²).
func (z Complex) Abs() float64 {
	return math.Sqrt(z.re*z.re + z.im*z.im)
}

// Arg returns the argument in (-π, π], and 0 at the origin.
func (z Complex) Arg() float64 {
	return math.Atan2(z.im, z.re)
}

func (z Complex) Plus(o Complex) Complex {
	return Complex{re: z.re + o.re, im: z.im + o.im}
}

func (z Complex) Minus(o Complex) Complex {
	return Complex{re: z.re - o.re, im: z.im - o.im}
}

func (z Complex) Times(o Complex) Complex {
	return Complex{
		re: z.re*o.re - z.im*o.im,
		im: z.re*o.im + z.im*o.re,
	}
}

// Conjugate returns the complex conjugate.
func (z Complex) Conjugate() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Div returns z divided by o, computed by multiplying with the conjugate
// of o and dividing both components by |o|². It returns ErrDivisionByZero
// iff o is the zero complex number; the test is on the components, not on
// |o|², which underflows to 0.0 for subnormal-squared divisors such as
// (1e-300, 0). Quotient components follow IEEE-754 division.
func (z Complex) Div(o Complex) (Complex, error) {
	if o.IsZero() {
		return Complex{}, ErrDivisionByZero
	}
	denom := o.re*o.re + o.im*o.im
	num := z.Times(o.Conjugate())
	return Complex{re: num.re / denom, im: num.im / denom}, nil
}

func (z Complex) IsZero() bool {
	return z.re == 0 && z.im == 0
}

// IsEqualTo reports exact equality of both components, with no tolerance.
// Callers comparing computed values should test |a-b| against an epsilon
// instead.
func (z Complex) IsEqualTo(o Complex) bool {
	return z.re == o.re && z.im == o.im
}

// String renders the number as "(R + Ii)", factoring the sign out of a
// negative imaginary component: "(R - |I|i)".
func (z Complex) String() string {
	if z.im < 0 {
		return fmt.Sprintf("(%g - %gi)", z.re, -z.im)
	}
	return fmt.Sprintf("(%g + %gi)", z.re, z.im)
}
