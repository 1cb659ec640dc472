package roots_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/zeroin/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFSolve_BisectionCosine verifies that bisection of cos on [0, 3]
// converges to π/2 within the default tolerance.
func TestFSolve_BisectionCosine(t *testing.T) {
	x, err := roots.FSolve(roots.MethodBisection, math.Cos, roots.Interval{Lower: 0, Upper: 3})

	require.NoError(t, err, "cos brackets a root on [0, 3]")
	assert.InDelta(t, math.Pi/2, x, 2e-6, "bisection must land on π/2")
}

// TestFSolve_RegulaFalsiIrrationalRoot drives false position onto a
// root it can only approach: the stalled upper bound keeps the bracket
// wide, so the solve must finish on estimate stabilization instead.
func TestFSolve_RegulaFalsiIrrationalRoot(t *testing.T) {
	fn := func(x float64) float64 { return x*x - 2 }

	x, err := roots.FSolve(roots.MethodRegulaFalsi, fn, roots.Interval{Lower: 0, Upper: 2})

	require.NoError(t, err, "a converged estimate must not be reported as exhaustion")
	assert.InDelta(t, math.Sqrt2, x, 1e-6, "false position must settle on √2")
}

// TestFSolve_QuadraticAllMethods checks that every bracketing method
// finds the positive root of x²−4 on [0, 5].
func TestFSolve_QuadraticAllMethods(t *testing.T) {
	fn := func(x float64) float64 { return x*x - 4 }
	iv := roots.Interval{Lower: 0, Upper: 5}

	for name, method := range map[string]roots.BracketMethod{
		"bisection":    roots.MethodBisection,
		"regula-falsi": roots.MethodRegulaFalsi,
		"ridder":       roots.MethodRidder,
	} {
		x, err := roots.FSolve(method, fn, iv)
		require.NoError(t, err, "%s should converge on a clean bracket", name)
		assert.InDelta(t, 2.0, x, 1e-6, "%s must find the positive root", name)
	}
}

// TestFSolve_NoRootInBracket ensures that a sign-preserving bracket is
// rejected before any iteration runs.
func TestFSolve_NoRootInBracket(t *testing.T) {
	fn := func(x float64) float64 { return x*x + 1 } // strictly positive

	_, err := roots.FSolve(roots.MethodBisection, fn, roots.Interval{Lower: -1, Upper: 1})
	assert.ErrorIs(t, err, roots.ErrNoRootInBracket, "same-sign endpoints must error")
}

// TestFSolve_InvalidBounds covers degenerate and non-finite intervals.
func TestFSolve_InvalidBounds(t *testing.T) {
	fn := func(x float64) float64 { return x }

	cases := map[string]roots.Interval{
		"equal endpoints": {Lower: 1, Upper: 1},
		"reversed":        {Lower: 2, Upper: 1},
		"nan lower":       {Lower: math.NaN(), Upper: 1},
		"inf upper":       {Lower: 0, Upper: math.Inf(1)},
	}
	for name, iv := range cases {
		_, err := roots.FSolve(roots.MethodBisection, fn, iv)
		assert.ErrorIs(t, err, roots.ErrInvalidBounds, "%s must be rejected", name)
	}
}

// TestFSolve_NilFunction ensures a nil objective is rejected eagerly.
func TestFSolve_NilFunction(t *testing.T) {
	_, err := roots.FSolve(roots.MethodBisection, nil, roots.Interval{Lower: 0, Upper: 1})
	assert.ErrorIs(t, err, roots.ErrNilFunction, "nil objective must be rejected")
}

// TestBounds_ArityGuard verifies that the literal-bounds helper accepts
// exactly two values.
func TestBounds_ArityGuard(t *testing.T) {
	iv, err := roots.Bounds(1, 2)
	require.NoError(t, err, "two values form a valid interval")
	assert.Equal(t, roots.Interval{Lower: 1, Upper: 2}, iv)

	_, err = roots.Bounds(1)
	assert.ErrorIs(t, err, roots.ErrInvalidBounds, "one value must be rejected")

	_, err = roots.Bounds(1, 2, 3)
	assert.ErrorIs(t, err, roots.ErrInvalidBounds, "three values must be rejected")
}

// TestBracketing_InvariantAndNarrowing drives each solver by hand and
// checks that the sign-change invariant holds and the bracket width
// never grows across iterations.
func TestBracketing_InvariantAndNarrowing(t *testing.T) {
	fn := func(x float64) float64 { return x*x*x - x - 2 } // root ≈ 1.5214
	iv := roots.Interval{Lower: 1, Upper: 2}

	bisect, err := roots.NewBisection(fn, iv)
	require.NoError(t, err)
	falsi, err := roots.NewRegulaFalsi(fn, iv)
	require.NoError(t, err)
	ridder, err := roots.NewRidder(fn, iv)
	require.NoError(t, err)

	for name, s := range map[string]roots.BracketingSolver{
		"bisection":    bisect,
		"regula-falsi": falsi,
		"ridder":       ridder,
	} {
		lower, _, upper := s.Current()
		width := upper - lower

		for i := 0; i < 30; i++ {
			require.NoError(t, s.Iterate(), "%s iteration %d", name, i)

			lower, _, upper = s.Current()
			assert.LessOrEqual(t, fn(lower)*fn(upper), 0.0,
				"%s must keep a sign change inside the bracket", name)
			assert.LessOrEqual(t, upper-lower, width,
				"%s bracket width must never grow", name)
			width = upper - lower
		}

		_, est, _ := s.Current()
		assert.InDelta(t, 1.5213797068045676, est, 1e-4, "%s estimate drifts toward the root", name)
	}
}

// TestFSolve_MaxIterations checks that an exhausted iteration budget is
// reported as ErrMaxIterations carrying the diagnostics struct.
func TestFSolve_MaxIterations(t *testing.T) {
	fn := func(x float64) float64 { return x*x - 4 }

	_, err := roots.FSolve(roots.MethodBisection, fn, roots.Interval{Lower: 0, Upper: 5},
		roots.WithEpsilon(1e-12), roots.WithMaxIterations(1))
	require.ErrorIs(t, err, roots.ErrMaxIterations, "one iteration cannot hit 1e-12")

	var solveErr *roots.Error
	require.True(t, errors.As(err, &solveErr), "error must carry solve diagnostics")
	assert.Equal(t, 1, solveErr.Iterations, "cap of 1 iteration must be recorded")
	assert.False(t, math.IsNaN(solveErr.Value), "last estimate must travel with the error")
}

// TestRidder_ExactHitCollapsesBracket verifies that a step landing
// exactly on the root collapses the bracket to zero width instead of
// discarding the sign change and stalling the remaining iterations.
func TestRidder_ExactHitCollapsesBracket(t *testing.T) {
	ident := func(x float64) float64 { return x }

	// On [−2, 1] the first correction lands on x = 0 exactly.
	s, err := roots.NewRidder(ident, roots.Interval{Lower: -2, Upper: 1})
	require.NoError(t, err)
	require.NoError(t, s.Iterate())

	lower, est, upper := s.Current()
	assert.Equal(t, 0.0, est, "the exact root becomes the estimate")
	assert.Equal(t, lower, upper, "bracket must collapse onto the root")

	// A collapsed bracket satisfies the width criterion immediately.
	x, err := roots.FSolve(roots.MethodRidder, ident, roots.Interval{Lower: -2, Upper: 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	// ln 2 is reached exactly as well; the solve must not burn the
	// remaining budget iterating on a zero-width bracket.
	x, err = roots.FSolve(roots.MethodRidder, func(x float64) float64 { return math.Exp(x) - 2 },
		roots.Interval{Lower: 0, Upper: 2})
	require.NoError(t, err, "an exact hit must terminate the solve")
	assert.InDelta(t, math.Ln2, x, 1e-9)
}

// TestBracketing_RandomizedInvariant repeats the sign-change and
// narrowing checks over a family of random cubics with a single real
// root, so the properties do not hinge on one hand-picked objective.
func TestBracketing_RandomizedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // deterministic seed for reproducibility

	for trial := 0; trial < 25; trial++ {
		root := -2 + 4*rng.Float64()
		lift := 1 + 3*rng.Float64() // keeps the quadratic factor positive

		// (x − root)·(x² + lift) changes sign only at root.
		fn := func(x float64) float64 { return (x - root) * (x*x + lift) }
		iv := roots.Interval{
			Lower: root - 1 - 2*rng.Float64(),
			Upper: root + 1 + 2*rng.Float64(),
		}

		bisect, err := roots.NewBisection(fn, iv)
		require.NoError(t, err, "trial %d", trial)
		falsi, err := roots.NewRegulaFalsi(fn, iv)
		require.NoError(t, err, "trial %d", trial)
		ridder, err := roots.NewRidder(fn, iv)
		require.NoError(t, err, "trial %d", trial)

		for name, s := range map[string]roots.BracketingSolver{
			"bisection":    bisect,
			"regula-falsi": falsi,
			"ridder":       ridder,
		} {
			lower, _, upper := s.Current()
			width := upper - lower

			for i := 0; i < 25; i++ {
				require.NoError(t, s.Iterate(), "%s trial %d iteration %d", name, trial, i)

				lower, _, upper = s.Current()
				assert.LessOrEqual(t, fn(lower)*fn(upper), 0.0,
					"%s trial %d must keep a sign change inside the bracket", name, trial)
				assert.LessOrEqual(t, upper-lower, width,
					"%s trial %d bracket width must never grow", name, trial)
				width = upper - lower
			}
		}
	}
}

// TestRidder_UsesExponentialCorrection confirms Ridder outpaces
// bisection on a smooth objective: far fewer iterations to the same
// tolerance.
func TestRidder_UsesExponentialCorrection(t *testing.T) {
	fn := func(x float64) float64 { return math.Exp(x) - 2 } // root = ln 2
	iv := roots.Interval{Lower: 0, Upper: 2}

	count := func(method roots.BracketMethod) int {
		iters := 0
		policy := func(st roots.BracketState) bool {
			iters = st.Iter

			return st.Upper-st.Lower <= 1e-9
		}
		_, err := roots.FSolve(method, fn, iv, roots.WithBracketPolicy(policy))
		require.NoError(t, err)

		return iters
	}

	assert.Less(t, count(roots.MethodRidder), count(roots.MethodBisection),
		"ridder must need fewer iterations than bisection")
}
