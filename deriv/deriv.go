package deriv

import (
	"errors"
	"math"
)

// Func is a scalar function of one real variable.
type Func func(x float64) float64

// Stencil combines function evaluations around x with step h into a
// derivative estimate.
type Stencil func(fn Func, x, h float64) float64

// machEps is the float64 machine epsilon.
const machEps = 0x1p-52

var (
	// DefaultStepSize is ∛ε, the step minimizing the combined truncation
	// and rounding error of a central difference.
	DefaultStepSize = math.Cbrt(machEps)

	// MinStepSize is √ε, the floor below which differencing returns
	// rounding noise.
	MinStepSize = math.Sqrt(machEps)
)

// Sentinel errors returned by Diff.
var (
	// ErrNilFunction indicates a nil function was supplied.
	ErrNilFunction = errors.New("deriv: nil function")

	// ErrStepTooSmall indicates a step size below MinStepSize.
	ErrStepTooSmall = errors.New("deriv: step size below minimum")

	// ErrNonFinite indicates the stencil produced NaN or ±Inf.
	ErrNonFinite = errors.New("deriv: non-finite result")
)

// Central3Point is the classic symmetric first-derivative stencil,
// O(h²) accurate.
func Central3Point(fn Func, x, h float64) float64 {
	return (fn(x+h) - fn(x-h)) / (2 * h)
}

// Central5Point is the five-point symmetric first-derivative stencil,
// O(h⁴) accurate.
func Central5Point(fn Func, x, h float64) float64 {
	return (-fn(x+2*h) + 8*fn(x+h) - 8*fn(x-h) + fn(x-2*h)) / (12 * h)
}

// CentralRichardson is the Richardson-extrapolated central stencil: two
// central differences at h and 2h combined to cancel the leading error
// term.
func CentralRichardson(fn Func, x, h float64) float64 {
	return (8*(fn(x+h)-fn(x-h)) - (fn(x+2*h) - fn(x-2*h))) / (12 * h)
}

// Forward2Point is the one-sided two-point stencil, O(h) accurate.
func Forward2Point(fn Func, x, h float64) float64 {
	return (fn(x+h) - fn(x)) / h
}

// Forward3Point is the one-sided three-point stencil, O(h²) accurate.
func Forward3Point(fn Func, x, h float64) float64 {
	return (-fn(x+2*h) + 4*fn(x+h) - 3*fn(x)) / (2 * h)
}

// ForwardRichardson extrapolates four forward samples.
func ForwardRichardson(fn Func, x, h float64) float64 {
	d1 := fn(x + h)
	d2 := fn(x + 2*h)
	d3 := fn(x + 3*h)
	d4 := fn(x + 4*h)

	return (22*(d4-d3) - 62*(d3-d2) + 52*(d2-d1)) / (12 * h)
}

// Backward2Point is the one-sided two-point stencil below x.
func Backward2Point(fn Func, x, h float64) float64 {
	return (fn(x) - fn(x-h)) / h
}

// Backward3Point is the one-sided three-point stencil below x.
func Backward3Point(fn Func, x, h float64) float64 {
	return (3*fn(x) - 4*fn(x-h) + fn(x-2*h)) / (2 * h)
}

// BackwardRichardson extrapolates four backward samples.
func BackwardRichardson(fn Func, x, h float64) float64 {
	d1 := fn(x - h)
	d2 := fn(x - 2*h)
	d3 := fn(x - 3*h)
	d4 := fn(x - 4*h)

	return (22*(d4-d3) - 62*(d3-d2) + 52*(d2-d1)) / -(12 * h)
}

// SecondCentral3Point approximates the second derivative, O(h²).
func SecondCentral3Point(fn Func, x, h float64) float64 {
	return (fn(x+h) - 2*fn(x) + fn(x-h)) / (h * h)
}

// SecondCentral5Point approximates the second derivative, O(h⁴).
func SecondCentral5Point(fn Func, x, h float64) float64 {
	return (-fn(x+2*h) + 16*fn(x+h) - 30*fn(x) + 16*fn(x-h) - fn(x-2*h)) / (12 * h * h)
}

// Options configures Diff and Of.
type Options struct {
	// Stencil is the difference formula to apply.
	Stencil Stencil

	// StepSize is the base step h; it is additionally scaled by |x|
	// away from the origin. Must be at least MinStepSize.
	StepSize float64
}

// DefaultOptions returns CentralRichardson with the default step size.
func DefaultOptions() Options {
	return Options{Stencil: CentralRichardson, StepSize: DefaultStepSize}
}

// Option mutates an Options value.
type Option func(*Options)

// WithStencil selects the difference formula.
func WithStencil(s Stencil) Option {
	return func(o *Options) { o.Stencil = s }
}

// WithStepSize sets the base step size.
func WithStepSize(h float64) Option {
	return func(o *Options) { o.StepSize = h }
}

// Diff approximates the derivative of fn at x.
//
// Validation (in order):
//  1. fn and the stencil must be non-nil (ErrNilFunction).
//  2. The step size must be at least MinStepSize (ErrStepTooSmall).
//  3. The stencil result must be finite (ErrNonFinite).
//
// The effective step is max(h, h·|x|) so that the relative step stays
// stable far from the origin.
func Diff(fn Func, x float64, opts ...Option) (float64, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	if fn == nil || o.Stencil == nil {
		return 0, ErrNilFunction
	}
	if o.StepSize < MinStepSize || math.IsNaN(o.StepSize) {
		return 0, ErrStepTooSmall
	}

	h := math.Max(o.StepSize, o.StepSize*math.Abs(x))
	d := o.Stencil(fn, x, h)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, ErrNonFinite
	}

	return d, nil
}

// Of adapts fn into its approximate derivative function. Points where
// the approximation fails evaluate to NaN, which downstream consumers
// detect as a non-finite result.
func Of(fn Func, opts ...Option) Func {
	return func(x float64) float64 {
		d, err := Diff(fn, x, opts...)
		if err != nil {
			return math.NaN()
		}

		return d
	}
}
