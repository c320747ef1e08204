// Package fixture provides integrands with known closed-form integrals for checking
// the quadrature package and for the Simpson demo report.
package fixture

import (
	"fmt"
	"math"
)

// PolynomialLabel is the display form of Polynomial.
const PolynomialLabel = "f(x) = x² + 2x + 1"

// Polynomial is the demo integrand f(x) = x² + 2x + 1.
func Polynomial(x float64) float64 {
	return x*x + 2*x + 1
}

// Antiderivative is F(x) = x³/3 + x² + x, an antiderivative of Polynomial.
func Antiderivative(x float64) float64 {
	return x*x*x/3 + x*x + x
}

// Exact returns ∫[a,b] Polynomial(x)dx.
func Exact(a, b float64) float64 {
	return Antiderivative(b) - Antiderivative(a)
}

// Integral is a definite integral ∫[A,B] F(x)dx with a known Value.
type Integral struct {
	Name  string
	A, B  float64
	F     func(float64) float64
	Value float64
	// Degree is the polynomial degree of F, or -1 when F is not a polynomial.
	Degree int
}

// Demo returns the demo polynomial over [0, 4], whose value is 124/3.
func Demo() Integral {
	return Integral{
		Name:   "∫_0^4 x²+2x+1 dx",
		A:      0,
		B:      4,
		F:      Polynomial,
		Value:  Exact(0, 4),
		Degree: 2,
	}
}

// Constant returns ∫_{-1}^{2} alpha dx.
func Constant(alpha float64) Integral {
	return Integral{
		Name:   fmt.Sprintf("∫_{-1}^{2} %v dx", alpha),
		A:      -1,
		B:      2,
		F:      func(float64) float64 { return alpha },
		Value:  3 * alpha,
		Degree: 0,
	}
}

// Cubic returns ∫_{-1}^{2} 2x³ - x² + 3 dx.
func Cubic() Integral {
	return Integral{
		Name:   "∫_{-1}^{2} 2x³-x²+3 dx",
		A:      -1,
		B:      2,
		F:      func(x float64) float64 { return 2*x*x*x - x*x + 3 },
		Value:  13.5,
		Degree: 3,
	}
}

// Sin returns ∫_0^1 sin(x)dx.
func Sin() Integral {
	return Integral{
		Name:   "∫_0^1 sin(x)dx",
		A:      0,
		B:      1,
		F:      math.Sin,
		Value:  1 - math.Cos(1),
		Degree: -1,
	}
}

// Exp returns ∫_0^2 eˣdx.
func Exp() Integral {
	return Integral{
		Name:   "∫_0^2 eˣdx",
		A:      0,
		B:      2,
		F:      math.Exp,
		Value:  math.Exp(2) - 1,
		Degree: -1,
	}
}

// All returns every fixture integral.
func All() []Integral {
	return []Integral{Demo(), Constant(2.5), Cubic(), Sin(), Exp()}
}
