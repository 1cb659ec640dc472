package poly_test

import (
	"fmt"

	"github.com/katalvlaran/zeroin/poly"
	"github.com/katalvlaran/zeroin/roots"
)

// ExamplePolynomial_Roots factors a cubic with three real roots.
// Coefficients are listed lowest degree first, so x³ − 6x² + 11x − 6
// is written backwards from its usual textbook form.
func ExamplePolynomial_Roots() {
	p := poly.New(-6, 11, -6, 1)

	rs, err := p.Roots()
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	for _, r := range rs {
		fmt.Printf("%.4f\n", r)
	}
	// Output:
	// 1.0000
	// 2.0000
	// 3.0000
}

// ExampleDiv splits a cubic into quotient and remainder.
func ExampleDiv() {
	a := poly.New(4, 0, -2, 1) // x³ − 2x² + 4
	b := poly.New(-1, 1)       // x − 1

	q, r, err := poly.Div(a, b)
	if err != nil {
		fmt.Println("division failed:", err)

		return
	}
	fmt.Println("quotient: ", q)
	fmt.Println("remainder:", r)
	// Output:
	// quotient:  -1 - 1x + 1x^2
	// remainder: 3
}

// ExamplePolynomial_Func hands a polynomial to the single-variable
// bracketing driver as a plain objective.
func ExamplePolynomial_Func() {
	p := poly.New(-2, 0, 1) // x² − 2

	x, err := roots.FSolve(roots.MethodBisection, p.Func(), roots.Interval{Lower: 0, Upper: 2})
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	fmt.Printf("positive root ≈ %.4f\n", x)
	// Output:
	// positive root ≈ 1.4142
}
