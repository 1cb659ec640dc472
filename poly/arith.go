package poly

// Add returns a + b.
func Add(a, b Polynomial) Polynomial {
	lo, hi := a.coeff, b.coeff
	if len(lo) > len(hi) {
		lo, hi = hi, lo
	}

	sum := make([]float64, len(hi))
	copy(sum, hi)
	for i, c := range lo {
		sum[i] += c
	}

	return New(sum...)
}

// Sub returns a − b.
func Sub(a, b Polynomial) Polynomial {
	diff := make([]float64, max(len(a.coeff), len(b.coeff)))
	copy(diff, a.coeff)
	for i, c := range b.coeff {
		diff[i] -= c
	}

	return New(diff...)
}

// Mul returns a · b by coefficient convolution.
func Mul(a, b Polynomial) Polynomial {
	prod := make([]float64, len(a.coeff)+len(b.coeff)-1)
	for i, ca := range a.coeff {
		for j, cb := range b.coeff {
			prod[i+j] += ca * cb
		}
	}

	return New(prod...)
}

// Div performs polynomial long division, returning quotient and
// remainder such that a = q·b + r with Degree(r) < Degree(b).
// Dividing by the zero polynomial, or by a divisor of higher degree
// than the dividend, yields ErrInvalidDivisor.
func Div(a, b Polynomial) (q, r Polynomial, err error) {
	if b.Degree() == 0 && b.coeff[0] == 0 {
		return Polynomial{}, Polynomial{}, ErrInvalidDivisor
	}
	if b.Degree() > a.Degree() {
		return Polynomial{}, Polynomial{}, ErrInvalidDivisor
	}

	rem := make([]float64, len(a.coeff))
	copy(rem, a.coeff)
	quot := make([]float64, a.Degree()-b.Degree()+1)
	lead := b.coeff[len(b.coeff)-1]

	for i := a.Degree(); i >= b.Degree(); i-- {
		c := rem[i] / lead
		quot[i-b.Degree()] = c
		for j := 0; j <= b.Degree(); j++ {
			rem[i-j] -= c * b.coeff[b.Degree()-j]
		}
	}

	return New(quot...), New(rem...), nil
}
