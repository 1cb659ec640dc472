// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel backing
// the multi-variable solvers: a row-major strided matrix descriptor with
// bounds-checked access, lightweight views, and a Gauss-Jordan linear
// solve with partial pivoting.
//
// # Layout
//
// Dense stores float64 elements in a flat row-major slice described by
// (rows, cols, stride). A freshly allocated Dense has stride == cols;
// views produced by Submatrix share the parent's backing slice with the
// parent's stride, so writes through a view are visible in the parent.
//
// # Operations
//
//   - NewDense / NewDenseFrom — allocation and adoption of backing data.
//   - At / Set               — bounds-checked element access.
//   - Row / Submatrix        — views into the backing storage.
//   - Clone                  — deep, contiguous copy (stride == cols).
//   - MatVec                 — y = A·x.
//   - GaussJordan            — solve A·x = b by full elimination.
//
// # Errors
//
//   - ErrInvalidDimensions — non-positive rows or cols at construction.
//   - ErrBackingSize       — adopted slice length does not match rows*cols.
//   - ErrIndexOutOfBounds  — row/col outside the matrix.
//   - ErrDimensionMismatch — operand shapes are not conformable.
//   - ErrSingular          — no usable pivot during elimination.
//
// All errors are package-level sentinels matched with errors.Is.
//
// Complexity: element access O(1); MatVec O(r·c); GaussJordan O(n³).
package matrix
