package poly

import (
	"fmt"
	"math"
	"strings"
)

// Polynomial is a dense univariate polynomial with real coefficients,
// stored lowest degree first. Trailing zero coefficients are trimmed at
// construction, so the last coefficient is non-zero for every
// polynomial except the zero polynomial itself.
type Polynomial struct {
	coeff []float64
}

// New builds a Polynomial from coefficients ordered lowest degree
// first: New(c0, c1, c2) represents c0 + c1·x + c2·x². Trailing zeros
// are trimmed; no arguments (or all zeros) yields the zero polynomial.
func New(coeffs ...float64) Polynomial {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	if end == 0 {
		return Polynomial{coeff: []float64{0}}
	}

	c := make([]float64, end)
	copy(c, coeffs[:end])

	return Polynomial{coeff: c}
}

// Degree returns the polynomial degree: one less than the trimmed
// coefficient count. The zero polynomial has degree 0.
func (p Polynomial) Degree() int { return len(p.coeff) - 1 }

// Coefficients returns a copy of the coefficient slice, lowest degree
// first.
func (p Polynomial) Coefficients() []float64 {
	c := make([]float64, len(p.coeff))
	copy(c, p.coeff)

	return c
}

// At evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) At(x float64) float64 {
	acc := p.coeff[len(p.coeff)-1]
	for i := len(p.coeff) - 2; i >= 0; i-- {
		acc = acc*x + p.coeff[i]
	}

	return acc
}

// Evaluate is At with a finite-result check: NaN or ±Inf yields
// ErrNonFinite.
func (p Polynomial) Evaluate(x float64) (float64, error) {
	y := p.At(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrNonFinite
	}

	return y, nil
}

// Func returns the polynomial as a plain callable, assignable to the
// objective type of the roots package.
func (p Polynomial) Func() func(float64) float64 {
	return p.At
}

// Derivative returns the first derivative. The derivative of a constant
// is the zero polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeff) == 1 {
		return New()
	}

	d := make([]float64, len(p.coeff)-1)
	for i := 1; i < len(p.coeff); i++ {
		d[i-1] = p.coeff[i] * float64(i)
	}

	return New(d...)
}

// String renders the polynomial in ascending-degree form, e.g.
// "-6 + 11x - 6x^2 + x^3".
func (p Polynomial) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%g", p.coeff[0]))

	for i := 1; i < len(p.coeff); i++ {
		c := p.coeff[i]
		if c == 0 {
			continue
		}
		if c > 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
		}
		sb.WriteString(fmt.Sprintf("%gx", math.Abs(c)))
		if i >= 2 {
			sb.WriteString(fmt.Sprintf("^%d", i))
		}
	}

	return sb.String()
}
