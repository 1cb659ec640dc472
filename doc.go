// Package zeroin is your in-memory toolkit for finding where functions
// vanish — from bracketed scalar roots to polynomial factorizations and
// small non-linear systems.
//
// 🚀 What is zeroin?
//
//	A pure-Go numerical library that brings together:
//		• Bracketing solvers: Bisection, Regula Falsi, Ridder
//		• Polishing solvers: Newton-Raphson, Secant, Steffensen
//		• Bracket search: slide, expand and subdivide strategies
//		• Polynomial roots: closed forms through degree 3, Laguerre + deflation above
//		• Numerical differentiation: central/forward/backward stencils with Richardson extrapolation
//		• Multi-variable Newton over a small dense linear-algebra kernel
//
// ✨ Why choose zeroin?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit failure taxonomy – sentinel errors plus last-estimate diagnostics, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – functional options for tolerance, budgets and custom stop policies
//
// Everything is organized under five subpackages:
//
//	roots/      — scalar solvers: bracketing, polishing and bracket search drivers
//	poly/       — real and complex polynomials, arithmetic and the root engine
//	deriv/      — finite-difference first and second derivatives
//	matrix/     — strided dense matrices and Gauss-Jordan elimination
//	multiroots/ — multi-variable Newton for square non-linear systems
//
// Start with roots.FSolve when you can bracket a sign change, reach for
// roots.Search when you cannot, and refine with roots.FDFSolve once you
// are close. Polynomial work goes through poly.New(...).Roots().
package zeroin
