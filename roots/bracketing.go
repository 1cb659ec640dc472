package roots

import "math"

// ulp is the machine epsilon for float64: the gap between 1.0 and the
// next representable value.
const ulp = 0x1p-52

// BracketingSolver is one step of a bracketing algorithm. Current
// returns the bounds and the estimate between them; Iterate computes a
// new interior point and replaces one end of the bracket, preserving
// f(lower)·f(upper) < 0.
type BracketingSolver interface {
	Iterate() error
	Current() (lower, est, upper float64)
}

// bracketBase holds the state shared by all bracketing solvers: the
// objective and the (lower, est, upper) triple.
type bracketBase struct {
	fn    Func
	lower float64
	upper float64
	est   float64
}

// newBracketBase validates the objective and the initial bracket:
// bounds must be finite with Lower < Upper (ErrInvalidBounds), the
// objective must evaluate finitely at both ends (ErrNumerical), and the
// two evaluations must differ in sign (ErrNoRootInBracket).
func newBracketBase(fn Func, iv Interval) (bracketBase, error) {
	if fn == nil {
		return bracketBase{}, ErrNilFunction
	}
	if !isFinite(iv.Lower) || !isFinite(iv.Upper) || iv.Lower >= iv.Upper {
		return bracketBase{}, ErrInvalidBounds
	}

	fLo, fHi := fn(iv.Lower), fn(iv.Upper)
	if !isFinite(fLo) || !isFinite(fHi) {
		return bracketBase{}, solveError(ErrNumerical, iv.Midpoint(), 0)
	}
	if fLo*fHi >= 0 {
		return bracketBase{}, solveError(ErrNoRootInBracket, iv.Midpoint(), 0)
	}

	return bracketBase{fn: fn, lower: iv.Lower, upper: iv.Upper, est: iv.Midpoint()}, nil
}

// Current returns the bracket bounds and the current estimate.
func (b *bracketBase) Current() (lower, est, upper float64) {
	return b.lower, b.est, b.upper
}

// evaluate applies the objective and fails on a non-finite result.
func (b *bracketBase) evaluate(x float64) (float64, error) {
	y := b.fn(x)
	if !isFinite(y) {
		return 0, ErrNumerical
	}

	return y, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Bisection narrows the bracket around its midpoint: keep (lower, m) if
// the sign change lies there, otherwise keep (m, upper). Robust, one
// binary digit of accuracy per iteration.
type Bisection struct {
	bracketBase
}

// NewBisection constructs a Bisection solver over fn on the bracket iv.
func NewBisection(fn Func, iv Interval) (*Bisection, error) {
	base, err := newBracketBase(fn, iv)
	if err != nil {
		return nil, err
	}

	return &Bisection{bracketBase: base}, nil
}

// Iterate performs one bisection step.
func (s *Bisection) Iterate() error {
	m := (s.lower + s.upper) / 2

	fLo, err := s.evaluate(s.lower)
	if err != nil {
		return err
	}
	fm, err := s.evaluate(m)
	if err != nil {
		return err
	}

	if fLo*fm < 0 {
		s.upper = m
		s.est = (s.lower + m) / 2
	} else {
		s.lower = m
		s.est = (m + s.upper) / 2
	}

	return nil
}

// RegulaFalsi (false position) replaces one end of the bracket with the
// root of the secant line through (lower, f(lower)) and (upper,
// f(upper)). Converges faster than bisection on well-behaved functions
// but may stall one endpoint.
type RegulaFalsi struct {
	bracketBase
}

// NewRegulaFalsi constructs a RegulaFalsi solver over fn on the bracket iv.
func NewRegulaFalsi(fn Func, iv Interval) (*RegulaFalsi, error) {
	base, err := newBracketBase(fn, iv)
	if err != nil {
		return nil, err
	}

	return &RegulaFalsi{bracketBase: base}, nil
}

// Iterate performs one false-position step. A collapsed bracket (the
// secant point hit the root exactly) is left untouched.
func (s *RegulaFalsi) Iterate() error {
	if s.lower == s.upper {
		return nil
	}

	fLo, err := s.evaluate(s.lower)
	if err != nil {
		return err
	}
	fHi, err := s.evaluate(s.upper)
	if err != nil {
		return err
	}

	if math.Abs(fHi-fLo) < ulp {
		return ErrNumerical
	}

	x := (s.lower*fHi - s.upper*fLo) / (fHi - fLo)
	fx, err := s.evaluate(x)
	if err != nil {
		return err
	}

	switch {
	case fx == 0:
		// Exact hit: collapse the bracket onto the root.
		s.lower, s.upper = x, x
	case fLo*fx < 0:
		s.upper = x
	default:
		s.lower = x
	}
	s.est = x

	return nil
}

// Ridder refines the bisection midpoint with an exponential correction
// factor, giving superlinear convergence while keeping the bracket
// guarantee. If the correction has no real value (non-positive
// radicand), the step leaves the bracket unchanged.
type Ridder struct {
	bracketBase
}

// NewRidder constructs a Ridder solver over fn on the bracket iv.
func NewRidder(fn Func, iv Interval) (*Ridder, error) {
	base, err := newBracketBase(fn, iv)
	if err != nil {
		return nil, err
	}

	return &Ridder{bracketBase: base}, nil
}

// Iterate performs one step of Ridder's method.
func (s *Ridder) Iterate() error {
	fLo, err := s.evaluate(s.lower)
	if err != nil {
		return err
	}
	fHi, err := s.evaluate(s.upper)
	if err != nil {
		return err
	}

	m := (s.lower + s.upper) / 2
	fm, err := s.evaluate(m)
	if err != nil {
		return err
	}

	radicand := fm*fm - fLo*fHi
	if radicand <= 0 {
		// No real correction this step; keep the bracket as-is.
		return nil
	}

	sign := 1.0
	if fLo-fHi < 0 {
		sign = -1.0
	}
	xNew := m + (m-s.lower)*sign*fm/math.Sqrt(radicand)

	fNew, err := s.evaluate(xNew)
	if err != nil {
		return err
	}
	if fNew == 0 {
		// Exact hit: collapse the bracket onto the root.
		s.lower, s.upper, s.est = xNew, xNew, xNew

		return nil
	}

	// Keep the tightest pair that still straddles the sign change.
	switch {
	case fm*fNew < 0:
		s.lower, s.upper = ordered(m, xNew)
	case fLo*fNew < 0:
		s.lower, s.upper = ordered(s.lower, xNew)
	case fHi*fNew < 0:
		s.lower, s.upper = ordered(s.upper, xNew)
	default:
		// Rounding pushed xNew past a bound; fall back to the
		// bisected half that keeps the sign change.
		if fLo*fm < 0 {
			s.upper = m
		} else {
			s.lower = m
		}
		s.est = m

		return nil
	}
	s.est = xNew

	return nil
}

// ordered returns (min(a,b), max(a,b)).
func ordered(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}

	return b, a
}
