// Package poly provides dense univariate polynomials and a complete
// root solver.
//
// A Polynomial stores real coefficients lowest degree first, with
// trailing zeros trimmed at construction so Degree is always
// len(coefficients)−1. CPolynomial is the complex-coefficient
// counterpart, used internally by the root solver regardless of the
// declared coefficient type. Both are value types: deflation and
// arithmetic return fresh polynomials and never mutate their operands.
//
// Root finding is a state machine over the degree:
//
//   - degree 1: −c₀/c₁
//   - degree 2: quadratic formula (complex when the discriminant is
//     negative)
//   - degree 3: depressed-cubic closed form, branching on
//     R = q²/4 + p³/27 — the trigonometric three-real-root branch for
//     R ≤ 0, one real root plus a conjugate pair for R > 0
//   - degree > 3: Laguerre's method from seed 2+0i, each found root
//     polished against the original (non-deflated) polynomial and then
//     divided out by synthetic division, until the closed-form
//     quadratic finishes the last factor
//
// Roots returns real roots (imaginary magnitude below ImagTolerance),
// ComplexRoots returns everything; both orderings are ascending by real
// part.
//
// Arithmetic: Add, Sub, Mul and long division (Div) are provided, plus
// Derivative and Horner evaluation with a finite-result check.
//
// Errors (sentinel): ErrDegreeTooLow, ErrInvalidDivisor, ErrNonFinite,
// ErrIllConditioned.
package poly
