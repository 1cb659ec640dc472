package roots_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/zeroin/roots"
)

// ExampleFSolve demonstrates bracketing the first positive root of
// cos(x): the bracket [0, 3] straddles π/2, and bisection narrows it to
// the default 1e-6 tolerance.
func ExampleFSolve() {
	x, err := roots.FSolve(roots.MethodBisection, math.Cos, roots.Interval{Lower: 0, Upper: 3})
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	fmt.Printf("cos(x) = 0 at x ≈ %.4f\n", x)
	// Output:
	// cos(x) = 0 at x ≈ 1.5708
}

// ExampleFDFSolve refines a rough guess into √2 with Newton-Raphson,
// supplying the analytic derivative.
func ExampleFDFSolve() {
	fn := func(x float64) float64 { return x*x - 2 }
	dfn := func(x float64) float64 { return 2 * x }

	x, err := roots.FDFSolve(roots.MethodNewton, fn, dfn, 1.0)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	fmt.Printf("x² = 2 at x ≈ %.4f\n", x)
	// Output:
	// x² = 2 at x ≈ 1.4142
}

// ExampleSearch grows a seed window that misses every root until it
// brackets a sign change, then hands the bracket to FSolve.
func ExampleSearch() {
	fn := func(x float64) float64 { return x*x - 4 }

	iv, err := roots.Search(roots.ExpandUp, fn, roots.Interval{Lower: 0, Upper: 1})
	if err != nil {
		fmt.Println("search failed:", err)

		return
	}

	x, err := roots.FSolve(roots.MethodRidder, fn, iv)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	fmt.Printf("root ≈ %.4f\n", x)
	// Output:
	// root ≈ 2.0000
}
