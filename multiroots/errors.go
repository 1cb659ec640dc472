package multiroots

import (
	"errors"
	"fmt"
)

// Construction sentinels, reported before the first iteration.
var (
	// ErrNilFunction marks a nil system function.
	ErrNilFunction = errors.New("multiroots: function must not be nil")
	// ErrInvalidGuess marks an empty or non-finite starting point.
	ErrInvalidGuess = errors.New("multiroots: invalid initial guess")
	// ErrBadOption marks an out-of-range option value.
	ErrBadOption = errors.New("multiroots: invalid option value")
)

// Runtime sentinels, reported through *Error.
var (
	// ErrDimensionMismatch marks a system whose output length differs
	// from its input length.
	ErrDimensionMismatch = errors.New("multiroots: system is not square")
	// ErrNumerical marks a non-finite residual or correction.
	ErrNumerical = errors.New("multiroots: numerical failure")
	// ErrSingular marks a Jacobian with no usable pivot.
	ErrSingular = errors.New("multiroots: singular jacobian")
	// ErrMaxIterations marks an iteration cap reached before convergence.
	ErrMaxIterations = errors.New("multiroots: maximum iterations reached")
)

// Error carries the diagnostics of a failed solve: the failure kind,
// the last iterate, and how many iterations ran. Unwrap yields the
// kind, so errors.Is keeps matching the sentinels.
type Error struct {
	Kind       error
	At         []float64
	Iterations int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%v (at %v after %d iterations)", e.Kind, e.At, e.Iterations)
}

// Unwrap exposes the sentinel for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Kind }

// solveError builds an *Error snapshotting the current iterate.
func solveError(kind error, at []float64, iter int) *Error {
	snap := make([]float64, len(at))
	copy(snap, at)

	return &Error{Kind: kind, At: snap, Iterations: iter}
}
