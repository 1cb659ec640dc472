// Package poly: sentinel error set. All operations return these
// sentinels and tests match them via errors.Is.
package poly

import "errors"

var (
	// ErrDegreeTooLow indicates a root request on a constant polynomial.
	ErrDegreeTooLow = errors.New("poly: polynomial degree too low")

	// ErrInvalidDivisor indicates division by the zero polynomial or by
	// a divisor of higher degree than the dividend.
	ErrInvalidDivisor = errors.New("poly: invalid divisor polynomial")

	// ErrNonFinite indicates an evaluation produced NaN or ±Inf.
	ErrNonFinite = errors.New("poly: non-finite evaluation")

	// ErrIllConditioned indicates coefficients too degenerate for the
	// closed-form solver (e.g. a vanishing quadratic leading term).
	ErrIllConditioned = errors.New("poly: ill-conditioned coefficients")
)
