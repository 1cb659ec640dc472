package poly

import (
	"math"
	"math/cmplx"
	"sort"
)

const (
	// ImagTolerance is the imaginary-part magnitude below which a
	// complex root is reported as real.
	ImagTolerance = 1e-6

	// LaguerreTolerance is the step magnitude at which Laguerre's
	// iteration is considered converged.
	LaguerreTolerance = 1e-12

	// LaguerreMaxIterations caps a single Laguerre run.
	LaguerreMaxIterations = 100
)

// DefaultSeed is the starting point for Laguerre's method when the
// caller does not supply a better one.
var DefaultSeed = complex(2, 0)

// rootConfig carries the tunables of a root solve.
type rootConfig struct {
	seed complex128
}

// RootOption mutates a root solve configuration.
type RootOption func(*rootConfig)

// WithSeed overrides the Laguerre starting point.
func WithSeed(z complex128) RootOption {
	return func(c *rootConfig) { c.seed = z }
}

// Roots returns the real roots of p, ordered ascending. Complex root
// pairs (imaginary magnitude ≥ ImagTolerance) are filtered out; use
// ComplexRoots to obtain every root. A constant polynomial yields
// ErrDegreeTooLow.
func (p Polynomial) Roots(opts ...RootOption) ([]float64, error) {
	all, err := p.Complex().Roots(opts...)
	if err != nil {
		return nil, err
	}

	reals := make([]float64, 0, len(all))
	for _, z := range all {
		if math.Abs(imag(z)) < ImagTolerance {
			reals = append(reals, real(z))
		}
	}

	return reals, nil
}

// ComplexRoots returns every root of p, ordered ascending by real part.
func (p Polynomial) ComplexRoots(opts ...RootOption) ([]complex128, error) {
	return p.Complex().Roots(opts...)
}

// Roots returns every root of p, ordered ascending by real part.
//
// The solve is a state machine over the degree: closed forms up to
// degree 3, Laguerre's method with synthetic-division deflation above.
// Each Laguerre root is polished against the original (non-deflated)
// polynomial to counter error accumulation from prior deflations.
func (p CPolynomial) Roots(opts ...RootOption) ([]complex128, error) {
	cfg := rootConfig{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	if p.Degree() < 1 {
		return nil, ErrDegreeTooLow
	}

	var roots []complex128
	switch {
	case p.Degree() == 1:
		roots = []complex128{-p.coeff[0] / p.coeff[1]}

	case p.Degree() == 2:
		qr, err := quadraticRoots(p)
		if err != nil {
			return nil, err
		}
		roots = qr

	case p.Degree() == 3 && p.isReal():
		roots = cubicRealRoots(p)

	default:
		dr, err := deflationRoots(p, cfg.seed)
		if err != nil {
			return nil, err
		}
		roots = dr
	}

	sortRoots(roots)

	return roots, nil
}

// quadraticRoots solves a·x² + b·x + c = 0 with the numerically stable
// variant of the quadratic formula: the half-sum q = −(b + sign·√disc)/2
// avoids cancellation, and the two roots follow as q/a and c/q.
func quadraticRoots(p CPolynomial) ([]complex128, error) {
	a, b, c := p.coeff[2], p.coeff[1], p.coeff[0]

	disc := cmplx.Sqrt(b*b - 4*a*c)
	if real(cmplx.Conj(b)*disc) < 0 {
		disc = -disc
	}

	q := -0.5 * (b + disc)
	if !cIsFinite(q) {
		return nil, ErrIllConditioned
	}
	if q == 0 {
		// b and the discriminant vanish together only when c does too.
		return []complex128{0, 0}, nil
	}

	return []complex128{q / a, c / q}, nil
}

// cubicRealRoots solves a real-coefficient cubic through the depressed
// form x³ + p·x + q, branching on R = q²/4 + p³/27: the trigonometric
// branch yields three real roots for R ≤ 0, the cube-root branch one
// real root plus a complex-conjugate pair for R > 0.
func cubicRealRoots(cp CPolynomial) []complex128 {
	// Normalize to monic x³ + a2·x² + a1·x + a0.
	lead := real(cp.coeff[3])
	a0 := real(cp.coeff[0]) / lead
	a1 := real(cp.coeff[1]) / lead
	a2 := real(cp.coeff[2]) / lead

	p := (3*a1 - a2*a2) / 3
	q := (2*a2*a2*a2 - 9*a2*a1 + 27*a0) / 27
	r := q*q/4 + p*p*p/27

	shift := a2 / 3

	if r <= 0 {
		m := 2 * math.Sqrt(-p/3)
		if m == 0 {
			// Triple root at −a2/3.
			z := complex(-shift, 0)

			return []complex128{z, z, z}
		}

		theta := math.Acos(3*q/(p*m)) / 3

		return []complex128{
			complex(m*math.Cos(theta)-shift, 0),
			complex(m*math.Cos(theta+2*math.Pi/3)-shift, 0),
			complex(m*math.Cos(theta+4*math.Pi/3)-shift, 0),
		}
	}

	bigP := math.Cbrt(-q/2 + math.Sqrt(r))
	bigQ := math.Cbrt(-q/2 - math.Sqrt(r))

	re := -(bigP+bigQ)/2 - shift
	im := math.Sqrt(3) / 2 * (bigP - bigQ)

	return []complex128{
		complex(bigP+bigQ-shift, 0),
		complex(re, im),
		complex(re, -im),
	}
}

// deflationRoots extracts roots of a degree > 3 (or complex-coefficient
// cubic) polynomial one at a time: Laguerre on the working copy, polish
// against the original, synthetic division, repeat until the closed-form
// quadratic finishes the last factor.
func deflationRoots(p CPolynomial, seed complex128) ([]complex128, error) {
	roots := make([]complex128, 0, p.Degree())
	work := p

	for work.Degree() > 2 {
		root, err := Laguerre(work, seed)
		if err != nil {
			return nil, err
		}

		// Polish against the original polynomial: deflation errors
		// accumulate, the original does not drift.
		root, err = Laguerre(p, root)
		if err != nil {
			return nil, err
		}

		roots = append(roots, root)
		work = work.deflate(root)
	}

	qr, err := quadraticRoots(work)
	if err != nil {
		return nil, err
	}

	return append(roots, qr...), nil
}

// Laguerre iterates Laguerre's method on p from the given starting
// point and returns the root it settles on.
//
// Each step computes G = p′(x)/p(x) and H = G² − p″(x)/p(x), then
// advances by n / (G ± sqrt((n−1)(nH − G²))), choosing the sign that
// maximizes the denominator's magnitude. The iteration stops when the
// step magnitude drops below LaguerreTolerance or after
// LaguerreMaxIterations steps; a non-finite step falls back to a small
// fixed one instead of derailing the iteration.
func Laguerre(p CPolynomial, guess complex128) (complex128, error) {
	if p.Degree() < 1 {
		return 0, ErrDegreeTooLow
	}

	n := complex(float64(p.Degree()), 0)
	d1 := p.Derivative()
	d2 := d1.Derivative()

	x := guess
	for i := 0; i < LaguerreMaxIterations; i++ {
		px := p.At(x)
		if px == 0 {
			return x, nil
		}

		g := d1.At(x) / px
		h := g*g - d2.At(x)/px

		rad := cmplx.Sqrt((n - 1) * (n*h - g*g))
		den := g + rad
		if cmplx.Abs(g-rad) > cmplx.Abs(den) {
			den = g - rad
		}

		step := n / den
		if !cIsFinite(step) {
			step = complex(0.1, 0)
		}
		if cmplx.Abs(step) < LaguerreTolerance {
			break
		}

		x -= step
		if !cIsFinite(x) {
			return 0, ErrNonFinite
		}
	}

	return x, nil
}

// sortRoots orders roots ascending by real part; real parts within
// √ImagTolerance of each other tie-break on the imaginary part, so
// conjugate pairs come out in a deterministic order.
func sortRoots(roots []complex128) {
	tie := math.Sqrt(ImagTolerance)
	sort.Slice(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if math.Abs(real(a)-real(b)) < tie {
			return imag(a) < imag(b)
		}

		return real(a) < real(b)
	})
}
