package algebra

import (
	"math"
	"math/rand"
	"testing"
)

// closeEnough compares floats with the tolerance the algebra contract allows
// for computed (as opposed to constructed) values.
func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// randComplex returns a complex number with components in [-0.5, 0.5].
func randComplex(rng *rand.Rand) Complex {
	return NewComplex(rng.Float64()-0.5, rng.Float64()-0.5)
}

func TestAccessors(t *testing.T) {
	z := NewComplex(3.25, -7.5)
	if z.Real() != 3.25 {
		t.Errorf("Real() = %g, want 3.25", z.Real())
	}
	if z.Imag() != -7.5 {
		t.Errorf("Imag() = %g, want -7.5", z.Imag())
	}

	// Zero value is the additive identity
	var zero Complex
	if !zero.IsZero() {
		t.Error("zero value should be the zero complex number")
	}
	if sum := z.Plus(zero); !sum.IsEqualTo(z) {
		t.Errorf("z + 0 = %v, want %v", sum, z)
	}
}

func TestFieldLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		a := randComplex(rng)
		b := randComplex(rng)
		c := randComplex(rng)

		// Commutativity of addition: exact, component-wise float addition commutes
		if !a.Plus(b).IsEqualTo(b.Plus(a)) {
			t.Errorf("a+b != b+a for a=%v b=%v", a, b)
		}

		// Associativity of addition within tolerance
		left := a.Plus(b).Plus(c)
		right := a.Plus(b.Plus(c))
		if !closeEnough(left.Real(), right.Real()) || !closeEnough(left.Imag(), right.Imag()) {
			t.Errorf("(a+b)+c != a+(b+c) for a=%v b=%v c=%v", a, b, c)
		}

		// Distributivity within tolerance
		dl := a.Times(b.Plus(c))
		dr := a.Times(b).Plus(a.Times(c))
		if !closeEnough(dl.Real(), dr.Real()) || !closeEnough(dl.Imag(), dr.Imag()) {
			t.Errorf("a*(b+c) != a*b + a*c for a=%v b=%v c=%v", a, b, c)
		}
	}
}

func TestArithmeticAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		a := randComplex(rng)
		b := randComplex(rng)
		ca := complex(a.Real(), a.Imag())
		cb := complex(b.Real(), b.Imag())

		check := func(op string, got Complex, want complex128) {
			if !closeEnough(got.Real(), real(want)) || !closeEnough(got.Imag(), imag(want)) {
				t.Errorf("%s: got %v, want (%g, %g)", op, got, real(want), imag(want))
			}
		}

		check("add", a.Plus(b), ca+cb)
		check("sub", a.Minus(b), ca-cb)
		check("mul", a.Times(b), ca*cb)

		if !b.IsZero() {
			q, err := a.Div(b)
			if err != nil {
				t.Fatalf("div: unexpected error %v for b=%v", err, b)
			}
			check("div", q, ca/cb)
		}

		if !closeEnough(a.Abs(), cmplxAbs(ca)) {
			t.Errorf("abs: got %g, want %g", a.Abs(), cmplxAbs(ca))
		}
		if !closeEnough(a.Arg(), math.Atan2(imag(ca), real(ca))) {
			t.Errorf("arg: got %g, want %g", a.Arg(), math.Atan2(imag(ca), real(ca)))
		}
	}
}

// cmplxAbs mirrors the plain sqrt-of-sum-of-squares modulus, keeping the
// comparison on the same formula the implementation uses.
func cmplxAbs(c complex128) float64 {
	return math.Sqrt(real(c)*real(c) + imag(c)*imag(c))
}

func TestConjugateInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		a := randComplex(rng)
		if !a.Conjugate().Conjugate().IsEqualTo(a) {
			t.Errorf("conjugate(conjugate(a)) != a for a=%v", a)
		}
	}

	c := NewComplex(2, 3).Conjugate()
	if c.Real() != 2 || c.Imag() != -3 {
		t.Errorf("conjugate(2+3i) = %v, want (2 - 3i)", c)
	}
}

func TestDivisionInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		a := randComplex(rng)
		b := randComplex(rng)
		if b.IsZero() {
			continue
		}

		q, err := a.Div(b)
		if err != nil {
			t.Fatalf("unexpected division error: %v", err)
		}
		back := q.Times(b)
		if !closeEnough(back.Real(), a.Real()) || !closeEnough(back.Imag(), a.Imag()) {
			t.Errorf("(a/b)*b = %v, want %v (b=%v)", back, a, b)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	a := NewComplex(1, 2)

	if _, err := a.Div(NewComplex(0, 0)); err != ErrDivisionByZero {
		t.Errorf("dividing by (0,0): err = %v, want ErrDivisionByZero", err)
	}

	// The zero test is exact on the components: a divisor whose squared
	// magnitude underflows to 0.0 is still a valid divisor.
	q, err := a.Div(NewComplex(1e-300, 0))
	if err != nil {
		t.Fatalf("dividing by (1e-300,0): unexpected error %v", err)
	}
	// |1e-300|² underflows, so the quotient components overflow per IEEE-754.
	if !math.IsInf(q.Real(), 1) {
		t.Errorf("quotient real = %g, want +Inf", q.Real())
	}

	if _, err := a.Div(NewComplex(0, 1e-300)); err != nil {
		t.Errorf("dividing by (0,1e-300): unexpected error %v", err)
	}

	// Negative zero components still form the zero complex number.
	negZero := NewComplex(math.Copysign(0, -1), 0)
	if _, err := a.Div(negZero); err != ErrDivisionByZero {
		t.Errorf("dividing by (-0,0): err = %v, want ErrDivisionByZero", err)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	angles := []float64{-3, -2.5, -1, -0.1, 0, 0.25, 1, 2, 3, math.Pi}
	magnitudes := []float64{0.5, 1, 2.75, 1000}

	for _, m := range magnitudes {
		for _, theta := range angles {
			z := NewPolar(m, theta)
			if !closeEnough(z.Abs(), m) {
				t.Errorf("NewPolar(%g, %g).Abs() = %g, want %g", m, theta, z.Abs(), m)
			}

			// Compare arguments modulo 2π
			diff := math.Mod(z.Arg()-theta, 2*math.Pi)
			if diff > math.Pi {
				diff -= 2 * math.Pi
			}
			if diff < -math.Pi {
				diff += 2 * math.Pi
			}
			if math.Abs(diff) > 1e-9 {
				t.Errorf("NewPolar(%g, %g).Arg() = %g, want %g (mod 2π)", m, theta, z.Arg(), theta)
			}
		}
	}

	// Zero magnitude lands on the origin regardless of angle
	z := NewPolar(0, 1.5)
	if z.Abs() != 0 || z.Arg() != 0 {
		t.Errorf("NewPolar(0, 1.5) = %v, want the origin with Arg 0", z)
	}
}

func TestArgAtOrigin(t *testing.T) {
	if arg := NewComplex(0, 0).Arg(); arg != 0 {
		t.Errorf("Arg() at origin = %g, want 0", arg)
	}
}

func TestExactEquality(t *testing.T) {
	a := NewComplex(0.1, 0.2)
	b := NewComplex(0.1, 0.2)
	if !a.IsEqualTo(b) {
		t.Error("identical components should compare equal")
	}

	// Equality is exact: a representable difference of one ulp breaks it.
	c := NewComplex(0.1+1e-16, 0.2)
	if c.Real() != a.Real() && a.IsEqualTo(c) {
		t.Error("components differing by one ulp should not compare equal")
	}

	// 0.1 + 0.2 != 0.3 in IEEE-754; the contract deliberately preserves that.
	sum := NewComplex(0.1, 0).Plus(NewComplex(0.2, 0))
	if sum.IsEqualTo(NewComplex(0.3, 0)) {
		t.Error("exact equality should expose 0.1 + 0.2 != 0.3")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		z    Complex
		want string
	}{
		{NewComplex(1, 2), "(1 + 2i)"},
		{NewComplex(1, -2), "(1 - 2i)"},
		{NewComplex(-1.5, 0), "(-1.5 + 0i)"},
		{NewComplex(0, 0), "(0 + 0i)"},
		{NewComplex(2.5, -0.25), "(2.5 - 0.25i)"},
	}

	for _, tc := range cases {
		if got := tc.z.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
