package roots

import "math"

// FSolve finds a root of fn inside the bracket iv using the selected
// bracketing method.
//
// Preconditions and validation (in order):
//  1. Options must be well-formed (ErrBadOption / ErrInvalidRatio).
//  2. fn must be non-nil (ErrNilFunction).
//  3. iv must be finite with Lower < Upper (ErrInvalidBounds).
//  4. fn must evaluate finitely at both ends (ErrNumerical).
//  5. fn(Lower)·fn(Upper) < 0 must hold (ErrNoRootInBracket).
//
// The solve stops when the bracket width drops below eps·|x| + eps/2,
// when two consecutive estimates differ by less than that same bound
// (false position narrows its estimate long before the stalled bound
// catches up), or when a custom WithBracketPolicy predicate fires, and
// returns the current estimate. Exceeding the iteration ceiling yields
// a *Error tagged ErrMaxIterations that still carries the best
// estimate found.
func FSolve(method BracketMethod, fn Func, iv Interval, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	s, err := newBracketing(method, fn, iv)
	if err != nil {
		return 0, err
	}

	return SolveBracketing(s, o)
}

// newBracketing dispatches on the BracketMethod enum.
func newBracketing(method BracketMethod, fn Func, iv Interval) (BracketingSolver, error) {
	switch method {
	case MethodBisection:
		return NewBisection(fn, iv)
	case MethodRegulaFalsi:
		return NewRegulaFalsi(fn, iv)
	case MethodRidder:
		return NewRidder(fn, iv)
	default:
		return nil, ErrBadOption
	}
}

// SolveBracketing runs the generic bracketing loop over an
// already-constructed solver: snapshot state, consult the termination
// policy, otherwise iterate. Useful when driving a custom
// BracketingSolver implementation under the standard policy.
func SolveBracketing(s BracketingSolver, o Options) (float64, error) {
	// prev holds the estimate of the preceding iteration. The first
	// snapshot is the seed midpoint, not a solver product, so it never
	// enters the stabilization comparison.
	prev := math.NaN()

	for iter := 0; ; iter++ {
		lower, x, upper := s.Current()

		converged := false
		if o.BracketPolicy != nil {
			converged = o.BracketPolicy(BracketState{Iter: iter, Lower: lower, Upper: upper, Est: x})
		} else {
			bound := o.Epsilon*math.Abs(x) + o.Epsilon/2
			converged = upper-lower <= bound || math.Abs(x-prev) <= bound
		}
		if converged {
			return x, nil
		}
		if iter >= o.MaxIter {
			return x, solveError(ErrMaxIterations, x, iter)
		}

		if iter > 0 {
			prev = x
		}
		if err := s.Iterate(); err != nil {
			return x, solveError(err, x, iter)
		}
	}
}

// FDFSolve refines the initial guess into a root of fn using the
// selected polishing method. dfn is the derivative of fn; pass nil to
// synthesize one with a central finite-difference approximation.
//
// The solve stops when consecutive estimates differ by less than
// eps·|x| + eps/2 (or when a custom WithPolishPolicy predicate fires).
// Division by a near-zero derivative or secant denominator is reported
// as ErrNumerical rather than silently tolerated; the returned *Error
// carries the last estimate and the iteration count.
func FDFSolve(method PolishMethod, fn, dfn Func, guess float64, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	s, err := newPolishing(method, fn, dfn, guess)
	if err != nil {
		return 0, err
	}

	return SolvePolishing(s, o)
}

// newPolishing dispatches on the PolishMethod enum.
func newPolishing(method PolishMethod, fn, dfn Func, guess float64) (PolishingSolver, error) {
	switch method {
	case MethodNewton:
		return NewNewton(fn, dfn, guess)
	case MethodSecant:
		return NewSecant(fn, dfn, guess)
	case MethodSteffensen:
		return NewSteffensen(fn, dfn, guess)
	default:
		return nil, ErrBadOption
	}
}

// SolvePolishing runs the generic polishing loop over an
// already-constructed solver, retaining the estimate history consumed
// by the termination policy.
func SolvePolishing(s PolishingSolver, o Options) (float64, error) {
	previous := make([]float64, 0, o.MaxIter)

	for iter := 0; ; iter++ {
		x := s.Current()

		converged := false
		if o.PolishPolicy != nil {
			converged = o.PolishPolicy(PolishState{Iter: iter, Guess: x, Previous: previous})
		} else if n := len(previous); n > 0 {
			converged = math.Abs(x-previous[n-1]) <= o.Epsilon*math.Abs(x)+o.Epsilon/2
		}
		if converged {
			return x, nil
		}
		if iter >= o.MaxIter {
			return x, solveError(ErrMaxIterations, x, iter)
		}

		previous = append(previous, x)
		if err := s.Iterate(); err != nil {
			return x, solveError(err, x, iter)
		}
	}
}

// Search grows or subdivides the seed window iv with the selected
// strategy until it brackets a sign change of fn, returning the
// bracketing interval ready for FSolve. The expansion ratio defaults to
// the golden ratio (override with WithRatio).
//
// If the iteration ceiling is exhausted before a sign change appears,
// the returned *Error is tagged ErrMaxIterations; a non-finite
// evaluation en route is tagged ErrNumerical. In both cases the last
// window's midpoint travels in the error as the last-known value.
func Search(method SearchMethod, fn Func, iv Interval, opts ...Option) (Interval, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Interval{}, err
	}

	s, err := newSearcher(method, fn, iv, o.Ratio)
	if err != nil {
		return Interval{}, err
	}

	for iter := 0; ; iter++ {
		bounds := s.Bounds()

		ok, err := s.bracketed()
		if err != nil {
			return bounds, solveError(err, bounds.Midpoint(), iter)
		}
		if ok {
			return bounds, nil
		}
		if iter >= o.MaxIter {
			return bounds, solveError(ErrMaxIterations, bounds.Midpoint(), iter)
		}

		if err = s.Iterate(); err != nil {
			return bounds, solveError(err, bounds.Midpoint(), iter)
		}
	}
}
