// Package multiroots solves square systems of non-linear equations
// F(x) = 0 with an undamped multi-variable Newton iteration.
//
// # Algorithm
//
// Each iteration approximates the Jacobian J of F at the current point
// by central finite differences, solves the linear correction system
//
//	J·Δx = −F(x)
//
// by Gauss-Jordan elimination with partial pivoting, and advances
// x ← x + Δx. The iteration converges when the largest correction
// component satisfies
//
//	max|Δx| ≤ ε·max|x| + ε/2
//
// and fails with ErrMaxIterations when the iteration cap is reached
// first.
//
// # Options
//
//   - WithEpsilon(eps)       — convergence tolerance (default 1e-6).
//   - WithMaxIterations(n)   — iteration cap (default 100).
//   - WithStepSize(h)        — Jacobian finite-difference step (default
//     cube root of machine epsilon, scaled per component).
//
// # Errors
//
//   - ErrNilFunction, ErrInvalidGuess, ErrBadOption — construction.
//   - ErrDimensionMismatch — F(x) length differs from len(x).
//   - ErrNumerical         — non-finite residual or correction.
//   - ErrSingular          — Jacobian has no usable pivot.
//   - ErrMaxIterations     — cap reached before convergence.
//
// Runtime failures are reported as *Error carrying the last iterate and
// the iteration count; Unwrap yields the sentinel for errors.Is.
//
// Complexity per iteration: 2·n² scalar function evaluations for the
// Jacobian plus an O(n³) linear solve.
package multiroots
