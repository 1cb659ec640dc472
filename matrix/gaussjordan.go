// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ZeroPivot is the sentinel value for detecting an unusable pivot column.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec      = "MatVec"
	opGaussJordan = "GaussJordan"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order, flat strided indexing.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrInvalidDimensions)
	}
	if len(x) != m.cols {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	y := make([]float64, m.rows)
	var i, j, base int
	var acc float64
	for i = 0; i < m.rows; i++ {
		acc = 0
		base = i * m.stride
		for j = 0; j < m.cols; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// GaussJordan solves the linear system a·x = b by Gauss-Jordan
// elimination with partial pivoting and returns x.
//
// Implementation:
//   - Stage 1 (Validate): a non-nil and square, len(b) == a.Rows().
//   - Stage 2 (Prepare): clone a and copy b; elimination works on the
//     copies, the inputs are never mutated.
//   - Stage 3 (Eliminate): for each column, swap up the row with the
//     largest |pivot|, scale it to a unit pivot, and clear the column
//     in every other row. A zero pivot column aborts with ErrSingular.
//
// Determinism:
//   - Fixed column order and a deterministic max-|pivot| scan; identical
//     inputs produce bit-identical solutions.
//
// Errors:
//   - ErrInvalidDimensions (nil matrix), ErrDimensionMismatch (non-square
//     a or wrong len(b)), ErrSingular (no usable pivot).
//
// Complexity: Time O(n³), Space O(n²) for the working copy.
func GaussJordan(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf(opGaussJordan, ErrInvalidDimensions)
	}
	if a.rows != a.cols {
		return nil, matrixErrorf(opGaussJordan, ErrDimensionMismatch)
	}
	if len(b) != a.rows {
		return nil, matrixErrorf(opGaussJordan, ErrDimensionMismatch)
	}

	// Work on copies; the caller's matrix and vector stay intact.
	n := a.rows
	w := a.Clone()
	x := make([]float64, n)
	copy(x, b)

	var (
		col, row, k  int     // loop iterators
		pivotRow     int     // row carrying the largest |pivot| for col
		pivot, best  float64 // pivot candidates during the scan
		scale, coeff float64 // normalization and elimination factors
		baseP, baseR int     // flat row offsets
	)
	for col = 0; col < n; col++ {
		// Partial pivoting: pick the row with the largest |value| in col.
		pivotRow, best = col, math.Abs(w.data[col*w.stride+col])
		for row = col + 1; row < n; row++ {
			pivot = math.Abs(w.data[row*w.stride+col])
			if pivot > best {
				pivotRow, best = row, pivot
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opGaussJordan, ErrSingular)
		}

		// Swap the pivot row up.
		if pivotRow != col {
			baseP, baseR = pivotRow*w.stride, col*w.stride
			for k = 0; k < n; k++ {
				w.data[baseP+k], w.data[baseR+k] = w.data[baseR+k], w.data[baseP+k]
			}
			x[pivotRow], x[col] = x[col], x[pivotRow]
		}

		// Normalize the pivot row to a unit pivot.
		baseP = col * w.stride
		scale = 1.0 / w.data[baseP+col]
		for k = col; k < n; k++ {
			w.data[baseP+k] *= scale
		}
		x[col] *= scale

		// Clear the pivot column in every other row.
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			baseR = row * w.stride
			coeff = w.data[baseR+col]
			if coeff == 0 {
				continue
			}
			for k = col; k < n; k++ {
				w.data[baseR+k] -= coeff * w.data[baseP+k]
			}
			x[row] -= coeff * x[col]
		}
	}

	return x, nil
}
