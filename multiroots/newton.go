package multiroots

import (
	"errors"
	"math"

	"github.com/katalvlaran/zeroin/deriv"
	"github.com/katalvlaran/zeroin/matrix"
)

// Func evaluates a square system F: Rⁿ → Rⁿ. The returned slice must
// have the same length as x; implementations must not retain x.
type Func func(x []float64) []float64

// Default tunables for the Newton iteration.
const (
	// DefaultEpsilon is the convergence tolerance on the correction.
	DefaultEpsilon = 1e-6
	// DefaultMaxIterations caps the iteration count.
	DefaultMaxIterations = 100
)

// Options collects the tunables of a multi-variable Newton solve.
type Options struct {
	// Epsilon is the convergence tolerance; must be > 0.
	Epsilon float64
	// MaxIter caps the iteration count; must be ≥ 1.
	MaxIter int
	// StepSize is the base Jacobian finite-difference step; must be > 0.
	StepSize float64
}

// DefaultOptions returns the canonical configuration: ε = 1e-6, 100
// iterations, and the derivative package's default step.
func DefaultOptions() Options {
	return Options{
		Epsilon:  DefaultEpsilon,
		MaxIter:  DefaultMaxIterations,
		StepSize: deriv.DefaultStepSize,
	}
}

// Option mutates Options before a solve.
type Option func(*Options)

// WithEpsilon overrides the convergence tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations overrides the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithStepSize overrides the Jacobian finite-difference step.
func WithStepSize(h float64) Option {
	return func(o *Options) { o.StepSize = h }
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) {
		return o, ErrBadOption
	}
	if o.MaxIter < 1 {
		return o, ErrBadOption
	}
	if o.StepSize <= 0 || math.IsNaN(o.StepSize) {
		return o, ErrBadOption
	}

	return o, nil
}

// Newton solves F(x) = 0 from the given starting point and returns the
// final iterate.
//
// Each step approximates the Jacobian by central differences, solves
// J·Δx = −F(x) by Gauss-Jordan elimination, and advances x by Δx. The
// solve converges when max|Δx| ≤ ε·max|x| + ε/2; hitting the iteration
// cap first yields ErrMaxIterations, a pivotless Jacobian ErrSingular,
// and a non-finite residual or correction ErrNumerical. All runtime
// failures arrive as *Error carrying the last iterate.
func Newton(fn Func, guess []float64, opts ...Option) ([]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilFunction
	}
	if len(guess) == 0 {
		return nil, ErrInvalidGuess
	}
	for _, v := range guess {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidGuess
		}
	}

	n := len(guess)
	x := make([]float64, n)
	copy(x, guess)

	var (
		iter  int
		fx    []float64
		jac   *matrix.Dense
		rhs   = make([]float64, n)
		delta []float64
	)
	for iter = 0; iter < o.MaxIter; iter++ {
		fx = fn(x)
		if len(fx) != n {
			return nil, solveError(ErrDimensionMismatch, x, iter)
		}
		for i, v := range fx {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, solveError(ErrNumerical, x, iter)
			}
			rhs[i] = -v
		}

		jac, err = jacobian(fn, x, o.StepSize)
		if err != nil {
			return nil, solveError(err, x, iter)
		}

		delta, err = matrix.GaussJordan(jac, rhs)
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				return nil, solveError(ErrSingular, x, iter)
			}

			return nil, solveError(ErrNumerical, x, iter)
		}

		var maxDelta, maxX float64
		for i, d := range delta {
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, solveError(ErrNumerical, x, iter)
			}
			x[i] += d
			if a := math.Abs(d); a > maxDelta {
				maxDelta = a
			}
			if a := math.Abs(x[i]); a > maxX {
				maxX = a
			}
		}

		if maxDelta <= o.Epsilon*maxX+o.Epsilon/2 {
			return x, nil
		}
	}

	return nil, solveError(ErrMaxIterations, x, o.MaxIter)
}
