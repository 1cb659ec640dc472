// Package roots: core types, method enums and configuration options for
// the iterative root-finding drivers.
package roots

import "math"

// Func is a scalar objective: a pure mapping from x to f(x).
// It must be safe to call an unbounded number of times at arbitrary
// points within (and briefly outside) the initial bracket or guess.
type Func func(x float64) float64

// Interval is an ordered pair of bounds. For the bracketing family the
// invariant f(Lower)·f(Upper) < 0 must hold; for the search family it is
// merely the seed window.
type Interval struct {
	Lower, Upper float64
}

// Width returns Upper − Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Midpoint returns (Lower + Upper) / 2.
func (iv Interval) Midpoint() float64 { return (iv.Lower + iv.Upper) / 2 }

// Bounds builds an Interval from a literal argument list. Exactly two
// values are accepted; any other count is rejected with ErrInvalidBounds
// before a solver is constructed.
func Bounds(vals ...float64) (Interval, error) {
	if len(vals) != 2 {
		return Interval{}, ErrInvalidBounds
	}

	return Interval{Lower: vals[0], Upper: vals[1]}, nil
}

// BracketMethod selects a bracketing algorithm for FSolve.
type BracketMethod int

const (
	// MethodBisection halves the bracket around the midpoint each step.
	MethodBisection BracketMethod = iota

	// MethodRegulaFalsi replaces one end with the secant-line root.
	MethodRegulaFalsi

	// MethodRidder applies Ridder's exponential correction to the midpoint.
	MethodRidder
)

// PolishMethod selects a polishing algorithm for FDFSolve.
type PolishMethod int

const (
	// MethodNewton iterates x ← x − f(x)/f'(x).
	MethodNewton PolishMethod = iota

	// MethodSecant bootstraps with one Newton step, then uses secant updates.
	MethodSecant

	// MethodSteffensen bootstraps with one Newton step, then applies
	// Aitken-style acceleration without further derivative calls.
	MethodSteffensen
)

// SearchMethod selects a bracket-search strategy for Search.
type SearchMethod int

const (
	// SearchUp slides the whole window upward by ratio·width.
	SearchUp SearchMethod = iota

	// SearchDown slides the whole window downward by ratio·width.
	SearchDown

	// ExpandUp grows the upper end, holding the lower end fixed.
	ExpandUp

	// ExpandDown grows the lower end, holding the upper end fixed.
	ExpandDown

	// ExpandOut grows both ends symmetrically.
	ExpandOut

	// Subdivide partitions the window into ⌈ratio⌉ segments and tests
	// each for a sign change, doubling the ratio when none brackets.
	Subdivide
)

// BracketState is the iteration record handed to a bracket termination
// policy: the iteration count, the current bounds and the current
// estimate between them.
type BracketState struct {
	Iter         int
	Lower, Upper float64
	Est          float64
}

// PolishState is the iteration record handed to a polishing termination
// policy: the iteration count, the current estimate and the history of
// prior estimates (oldest first).
type PolishState struct {
	Iter     int
	Guess    float64
	Previous []float64
}

// BracketPolicy is a pure stop predicate over a BracketState.
// Returning true ends the solve successfully with the current estimate.
type BracketPolicy func(BracketState) bool

// PolishPolicy is a pure stop predicate over a PolishState.
// Returning true ends the solve successfully with the current estimate.
type PolishPolicy func(PolishState) bool

const (
	// DefaultEpsilon is the convergence tolerance used when WithEpsilon
	// is not supplied.
	DefaultEpsilon = 1e-6

	// DefaultMaxIterations is the hard iteration ceiling used when
	// WithMaxIterations is not supplied.
	DefaultMaxIterations = 100
)

// Options configures a solve or search call. Zero values are replaced by
// defaults in DefaultOptions; construct via DefaultOptions and mutate, or
// pass functional options to the entry points.
type Options struct {
	// Epsilon scales the convergence tests: a bracketing solve stops
	// when upper−lower ≤ Epsilon·|x| + Epsilon/2, a polishing solve when
	// consecutive estimates differ by less than that same quantity.
	Epsilon float64

	// MaxIter caps the number of iterations; exceeding it yields
	// ErrMaxIterations with the best estimate found so far.
	MaxIter int

	// Ratio is the expansion factor for the search family.
	// Defaults to the golden ratio.
	Ratio float64

	// BracketPolicy, when non-nil, replaces the default bracket
	// convergence test. MaxIter remains enforced.
	BracketPolicy BracketPolicy

	// PolishPolicy, when non-nil, replaces the default polishing
	// convergence test. MaxIter remains enforced.
	PolishPolicy PolishPolicy
}

// DefaultOptions returns the Options used when no functional options are
// supplied: Epsilon=1e-6, MaxIter=100, Ratio=φ.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		MaxIter: DefaultMaxIterations,
		Ratio:   math.Phi,
	}
}

// Option mutates an Options value.
type Option func(*Options)

// WithEpsilon sets the convergence tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations sets the hard iteration ceiling.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithRatio sets the expansion ratio for the search family.
func WithRatio(r float64) Option {
	return func(o *Options) { o.Ratio = r }
}

// WithBracketPolicy installs a custom termination predicate for
// bracketing solves.
func WithBracketPolicy(p BracketPolicy) Option {
	return func(o *Options) { o.BracketPolicy = p }
}

// WithPolishPolicy installs a custom termination predicate for polishing
// solves.
func WithPolishPolicy(p PolishPolicy) Option {
	return func(o *Options) { o.PolishPolicy = p }
}

// buildOptions applies opts over DefaultOptions and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) || o.MaxIter < 1 {
		return Options{}, ErrBadOption
	}
	if o.Ratio < 1 || math.IsNaN(o.Ratio) {
		return Options{}, ErrInvalidRatio
	}

	return o, nil
}
