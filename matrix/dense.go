// Dense is a row-major strided matrix of float64 values. The stride
// decouples logical width from physical row length, which lets views
// share a parent's backing slice without copying.

package matrix

import "fmt"

// Dense describes a rows×cols block of float64 values inside a flat
// row-major slice. Element (i, j) lives at data[i*stride + j].
// A freshly allocated Dense is contiguous (stride == cols); a view
// keeps its parent's stride and aliases its storage.
type Dense struct {
	rows, cols int       // logical dimensions
	stride     int       // physical row length of the backing slice
	data       []float64 // backing storage, aliased by views
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols Dense initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate contiguous backing slice.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		rows:   rows,
		cols:   cols,
		stride: cols,
		data:   make([]float64, rows*cols),
	}, nil
}

// NewDenseFrom adopts data as the backing slice of a rows×cols Dense.
// The slice is aliased, not copied: writes through the matrix are
// visible to the caller. len(data) must equal rows*cols.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrBackingSize
	}

	return &Dense{rows: rows, cols: cols, stride: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.stride + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i of the matrix as a slice aliasing the backing
// storage. Writes through the slice mutate the matrix.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	base := i * m.stride

	return m.data[base : base+m.cols : base+m.cols], nil
}

// Submatrix returns a rows×cols view anchored at (row, col). The view
// aliases the receiver's backing slice and keeps its stride, so writes
// through the view are visible in the parent.
// Stage 1 (Validate): anchor and extent must lie inside the receiver.
// Stage 2 (Finalize): re-describe the shared storage, no copying.
func (m *Dense) Submatrix(row, col, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if row < 0 || col < 0 || row+rows > m.rows || col+cols > m.cols {
		return nil, denseErrorf("Submatrix", row, col, ErrIndexOutOfBounds)
	}

	return &Dense{
		rows:   rows,
		cols:   cols,
		stride: m.stride,
		data:   m.data[row*m.stride+col:],
	}, nil
}

// Clone returns a deep, contiguous copy of the matrix. Views become
// independent matrices with stride == cols.
// Complexity: O(rows*cols) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]float64, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		copy(data[i*m.cols:(i+1)*m.cols], m.data[i*m.stride:i*m.stride+m.cols])
	}

	return &Dense{rows: m.rows, cols: m.cols, stride: m.cols, data: data}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.rows; i++ {
		s += "["
		for j = 0; j < m.cols; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.stride+j])
			if j < m.cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
