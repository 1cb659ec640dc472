// Package roots implements iterative root-finding for scalar equations:
// given a continuous f, find x such that f(x) = 0.
//
// Three solver families are provided, all sharing the same iterate/terminate
// driver protocol:
//
//   - Bracketing: Bisection, RegulaFalsi, Ridder.
//     Each holds a (lower, upper) pair with f(lower)·f(upper) < 0 and
//     narrows it every iteration while preserving the sign change.
//     Guaranteed to converge on a valid bracket, at a linear-ish rate.
//
//   - Polishing: Newton, Secant, Steffensen.
//     Each holds a single estimate and refines it with local slope
//     information. Fast (superlinear to quadratic) but only converges
//     from a guess inside the basin of attraction.
//
//   - Searching: SearchUp, SearchDown, ExpandUp, ExpandDown, ExpandOut,
//     Subdivide. Given a seed interval that need not bracket a root,
//     they slide, grow or partition it until a sign change appears —
//     producing a bracket for the bracketing family.
//
// Entry points:
//
//   - FSolve(method, f, bounds, opts...)        — bracketing solve
//   - FDFSolve(method, f, df, guess, opts...)   — polishing solve
//     (pass a nil derivative to use a finite-difference approximation
//     from the deriv package)
//   - Search(method, f, bounds, opts...)        — bracket location
//
// Bounds are an Interval value; use Bounds(lo, hi) to build one from a
// literal argument list with eager validation.
//
// Termination:
//
//	Every solve runs under a termination policy decoupled from the
//	solver: stop when the bracket width (or successive-estimate
//	difference) drops below eps·|x| + eps/2, or when the iteration
//	ceiling is reached. Both knobs are functional options
//	(WithEpsilon, WithMaxIterations); a fully custom predicate can be
//	installed with WithBracketPolicy / WithPolishPolicy.
//
// Errors (sentinel, matched with errors.Is):
//
//   - ErrNoRootInBracket — initial bounds do not straddle a sign change.
//   - ErrNumerical       — a NaN/Inf evaluation or a near-zero denominator.
//   - ErrMaxIterations   — ceiling reached before convergence.
//   - ErrInvalidBounds, ErrInvalidRatio, ErrNilFunction, ErrBadOption —
//     construction-time misuse, rejected before any iteration begins.
//
// A failed solve is still informative: the returned error is a *Error
// carrying the last-known estimate and the iteration count.
//
// The package is single-threaded and allocation-light. Solver values are
// self-contained, so concurrent solves of different problems need no
// locking; sharing one solver value across goroutines is not supported.
package roots
