// Package roots: sentinel error set and the enriched solve error.
// All drivers return these sentinels (possibly wrapped in *Error) and
// tests match them via errors.Is. No algorithm panics on user-triggered
// conditions.
package roots

import (
	"errors"
	"fmt"
)

// Runtime failure kinds — the closed taxonomy detected while iterating.
var (
	// ErrNoRootInBracket indicates the initial bounds do not straddle a
	// sign change of the objective.
	ErrNoRootInBracket = errors.New("roots: no root in bracket")

	// ErrNumerical indicates a non-finite value produced by the
	// objective, the derivative, or an internal formula (division by a
	// near-zero denominator, negative radicand where a real result was
	// required).
	ErrNumerical = errors.New("roots: numerical error")

	// ErrMaxIterations indicates the iteration ceiling was reached
	// before the termination policy's convergence criterion was met.
	ErrMaxIterations = errors.New("roots: max iterations exceeded")
)

// Construction-time misuse — rejected eagerly, before any iteration.
var (
	// ErrInvalidBounds indicates malformed bounds: a wrong-sized
	// argument list, Lower ≥ Upper, or a non-finite endpoint.
	ErrInvalidBounds = errors.New("roots: invalid bounds")

	// ErrInvalidRatio indicates a search expansion ratio below one.
	ErrInvalidRatio = errors.New("roots: invalid search ratio")

	// ErrNilFunction indicates a nil objective or (explicit) derivative.
	ErrNilFunction = errors.New("roots: nil function")

	// ErrInvalidGuess indicates a NaN or ±Inf initial guess.
	ErrInvalidGuess = errors.New("roots: invalid guess")

	// ErrBadOption indicates a non-positive epsilon or iteration ceiling.
	ErrBadOption = errors.New("roots: invalid option value")
)

// Error is the tagged failure returned by the drivers. It carries the
// specific failure kind together with the last-known estimate and the
// number of completed iterations, so a failed solve still yields a
// diagnostic value. Error unwraps to its Kind for errors.Is matching.
type Error struct {
	Kind       error   // one of the sentinels above
	Value      float64 // last-known estimate when the failure occurred
	Iterations int     // iterations completed before the failure
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%v (last estimate %g after %d iterations)", e.Kind, e.Value, e.Iterations)
}

// Unwrap exposes the sentinel kind to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Kind }

// solveError wraps a sentinel with the solve context.
func solveError(kind error, value float64, iter int) *Error {
	return &Error{Kind: kind, Value: value, Iterations: iter}
}
