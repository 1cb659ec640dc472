// Package deriv approximates derivatives of scalar functions with
// finite-difference stencils.
//
// A stencil is a pure formula combining a handful of function
// evaluations around the point of interest:
//
//   - Central stencils (Central3Point, Central5Point, CentralRichardson)
//     sample symmetrically on both sides — the most accurate choice when
//     the function is defined on both sides of x.
//   - Forward stencils (Forward2Point, Forward3Point, ForwardRichardson)
//     sample only at x and above — for one-sided domains.
//   - Backward stencils mirror the forward ones below x.
//   - SecondCentral3Point / SecondCentral5Point approximate the second
//     derivative.
//
// Diff evaluates a stencil with validation (step-size floor, finite
// result); Of adapts a function into its approximate derivative, which
// is how the roots package synthesizes a derivative when the caller does
// not supply one.
//
// The default stencil is CentralRichardson with step size ∛ε scaled by
// |x|, where ε is the float64 machine epsilon. Steps below √ε are
// rejected: differencing that close to machine precision returns noise.
//
// Errors (sentinel): ErrNilFunction, ErrStepTooSmall, ErrNonFinite.
package deriv
