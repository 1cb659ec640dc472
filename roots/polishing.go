package roots

import (
	"math"

	"github.com/katalvlaran/zeroin/deriv"
)

// PolishingSolver is one step of a derivative-based refinement
// algorithm. Current returns the single current estimate; Iterate
// replaces it using local slope information.
type PolishingSolver interface {
	Iterate() error
	Current() float64
}

// polishBase holds the state shared by all polishing solvers: the
// objective, its derivative (explicit or synthesized) and the current
// estimate.
type polishBase struct {
	fn    Func
	dfn   Func
	guess float64
}

// newPolishBase validates the objective and guess. A nil derivative is
// replaced by a central finite-difference approximation of fn.
func newPolishBase(fn, dfn Func, guess float64) (polishBase, error) {
	if fn == nil {
		return polishBase{}, ErrNilFunction
	}
	if !isFinite(guess) {
		return polishBase{}, ErrInvalidGuess
	}
	if dfn == nil {
		dfn = Func(deriv.Of(deriv.Func(fn)))
	}

	return polishBase{fn: fn, dfn: dfn, guess: guess}, nil
}

// Current returns the current estimate.
func (b *polishBase) Current() float64 { return b.guess }

// evaluate applies the objective and fails on a non-finite result.
func (b *polishBase) evaluate(x float64) (float64, error) {
	y := b.fn(x)
	if !isFinite(y) {
		return 0, ErrNumerical
	}

	return y, nil
}

// derivative applies the derivative and fails on a non-finite result.
func (b *polishBase) derivative(x float64) (float64, error) {
	y := b.dfn(x)
	if !isFinite(y) {
		return 0, ErrNumerical
	}

	return y, nil
}

// newtonStep advances the estimate by −f(x)/f'(x). A derivative within
// machine epsilon of zero is a numerical failure, not a tolerated stall.
func (b *polishBase) newtonStep() error {
	fx, err := b.evaluate(b.guess)
	if err != nil {
		return err
	}
	d, err := b.derivative(b.guess)
	if err != nil {
		return err
	}

	if math.Abs(d) < ulp {
		return ErrNumerical
	}

	next := b.guess - fx/d
	if !isFinite(next) {
		return ErrNumerical
	}
	b.guess = next

	return nil
}

// Newton iterates x ← x − f(x)/f'(x). Quadratic convergence near a
// simple root; requires a derivative (explicit or synthesized).
type Newton struct {
	polishBase
}

// NewNewton constructs a Newton solver over fn with derivative dfn and
// the given initial guess. Pass dfn == nil to approximate the derivative
// numerically.
func NewNewton(fn, dfn Func, guess float64) (*Newton, error) {
	base, err := newPolishBase(fn, dfn, guess)
	if err != nil {
		return nil, err
	}

	return &Newton{polishBase: base}, nil
}

// Iterate performs one Newton-Raphson step.
func (s *Newton) Iterate() error { return s.newtonStep() }

// Secant bootstraps a second point with one Newton step, then iterates
// x ← x − f(x)·(x − x_prev)/(f(x) − f(x_prev)), retaining exactly one
// previous estimate. Derivative-free after the first step.
type Secant struct {
	polishBase

	prev      float64
	firstStep bool
}

// NewSecant constructs a Secant solver over fn with derivative dfn
// (used only for the bootstrap step) and the given initial guess. Pass
// dfn == nil to approximate the derivative numerically.
func NewSecant(fn, dfn Func, guess float64) (*Secant, error) {
	base, err := newPolishBase(fn, dfn, guess)
	if err != nil {
		return nil, err
	}

	return &Secant{polishBase: base, firstStep: true}, nil
}

// Iterate performs one secant step (a Newton step on the first call).
func (s *Secant) Iterate() error {
	if s.firstStep {
		s.prev = s.guess
		if err := s.newtonStep(); err != nil {
			return err
		}
		s.firstStep = false

		return nil
	}

	fx, err := s.evaluate(s.guess)
	if err != nil {
		return err
	}
	fPrev, err := s.evaluate(s.prev)
	if err != nil {
		return err
	}

	if math.Abs(fx-fPrev) < ulp {
		return ErrNumerical
	}

	next := s.guess - fx*(s.guess-s.prev)/(fx-fPrev)
	if !isFinite(next) {
		return ErrNumerical
	}
	s.prev, s.guess = s.guess, next

	return nil
}

// Steffensen bootstraps with one Newton step, then applies Aitken-style
// acceleration: with x1 = x + f(x), the update is
// x ← x − f(x)² / (f(x1) − f(x)). Quadratic convergence without
// derivative calls after the bootstrap.
type Steffensen struct {
	polishBase

	firstStep bool
}

// NewSteffensen constructs a Steffensen solver over fn with derivative
// dfn (used only for the bootstrap step) and the given initial guess.
// Pass dfn == nil to approximate the derivative numerically.
func NewSteffensen(fn, dfn Func, guess float64) (*Steffensen, error) {
	base, err := newPolishBase(fn, dfn, guess)
	if err != nil {
		return nil, err
	}

	return &Steffensen{polishBase: base, firstStep: true}, nil
}

// Iterate performs one Steffensen step (a Newton step on the first call).
func (s *Steffensen) Iterate() error {
	if s.firstStep {
		if err := s.newtonStep(); err != nil {
			return err
		}
		s.firstStep = false

		return nil
	}

	x := s.guess
	fx, err := s.evaluate(x)
	if err != nil {
		return err
	}
	fx1, err := s.evaluate(x + fx)
	if err != nil {
		return err
	}

	denom := fx1 - fx
	if math.Abs(denom) < ulp {
		return ErrNumerical
	}

	next := x - fx*fx/denom
	if !isFinite(next) {
		return ErrNumerical
	}
	s.guess = next

	return nil
}
