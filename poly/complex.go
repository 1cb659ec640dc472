package poly

import "math/cmplx"

// CPolynomial is a dense univariate polynomial with complex
// coefficients, stored lowest degree first with trailing zeros trimmed.
// The root solver works on this representation internally regardless of
// the declared coefficient type.
type CPolynomial struct {
	coeff []complex128
}

// NewC builds a CPolynomial from coefficients ordered lowest degree
// first, trimming trailing zeros.
func NewC(coeffs ...complex128) CPolynomial {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	if end == 0 {
		return CPolynomial{coeff: []complex128{0}}
	}

	c := make([]complex128, end)
	copy(c, coeffs[:end])

	return CPolynomial{coeff: c}
}

// Complex lifts a real polynomial into the complex representation.
func (p Polynomial) Complex() CPolynomial {
	c := make([]complex128, len(p.coeff))
	for i, v := range p.coeff {
		c[i] = complex(v, 0)
	}

	return CPolynomial{coeff: c}
}

// Degree returns the polynomial degree.
func (p CPolynomial) Degree() int { return len(p.coeff) - 1 }

// Coefficients returns a copy of the coefficient slice, lowest degree
// first.
func (p CPolynomial) Coefficients() []complex128 {
	c := make([]complex128, len(p.coeff))
	copy(c, p.coeff)

	return c
}

// At evaluates the polynomial at z using Horner's scheme.
func (p CPolynomial) At(z complex128) complex128 {
	acc := p.coeff[len(p.coeff)-1]
	for i := len(p.coeff) - 2; i >= 0; i-- {
		acc = acc*z + p.coeff[i]
	}

	return acc
}

// Derivative returns the first derivative. The derivative of a constant
// is the zero polynomial.
func (p CPolynomial) Derivative() CPolynomial {
	if len(p.coeff) == 1 {
		return NewC()
	}

	d := make([]complex128, len(p.coeff)-1)
	for i := 1; i < len(p.coeff); i++ {
		d[i-1] = p.coeff[i] * complex(float64(i), 0)
	}

	return NewC(d...)
}

// deflate divides out the monic linear factor (x − root) by synthetic
// division and returns the quotient as a fresh polynomial. The receiver
// is left untouched so the original stays available for polishing.
func (p CPolynomial) deflate(root complex128) CPolynomial {
	n := p.Degree()
	q := make([]complex128, n)
	q[n-1] = p.coeff[n]
	for i := n - 2; i >= 0; i-- {
		q[i] = p.coeff[i+1] + root*q[i+1]
	}

	return NewC(q...)
}

// isReal reports whether every coefficient has negligible imaginary
// part.
func (p CPolynomial) isReal() bool {
	for _, c := range p.coeff {
		if imag(c) != 0 {
			return false
		}
	}

	return true
}

// cIsFinite reports whether z is neither NaN nor ±Inf in either part.
func cIsFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
