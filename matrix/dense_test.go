package matrix_test

import (
	"testing"

	"github.com/katalvlaran/zeroin/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Validation rejects non-positive dimensions.
func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must be rejected")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must be rejected")

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

// TestNewDenseFrom_AdoptsBacking verifies slice adoption, aliasing and
// the length guard.
func TestNewDenseFrom_AdoptsBacking(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	m, err := matrix.NewDenseFrom(2, 2, data)
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "row-major layout: (1,0) is the third element")

	require.NoError(t, m.Set(0, 1, 9))
	assert.Equal(t, 9.0, data[1], "the backing slice is aliased, not copied")

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrBackingSize, "short backing slice must be rejected")
}

// TestDense_BoundsChecks covers out-of-range indices on At and Set.
func TestDense_BoundsChecks(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "row past the end must be rejected")

	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "negative column must be rejected")

	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "negative row must be rejected")
}

// TestDense_SubmatrixView checks that a view shares storage with its
// parent and enforces its own bounds.
func TestDense_SubmatrixView(t *testing.T) {
	m, err := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)

	v, err := m.Submatrix(1, 1, 2, 2)
	require.NoError(t, err)

	got, err := v.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got, "view is anchored at (1,1) of the parent")

	require.NoError(t, v.Set(1, 1, 99))
	got, err = m.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 99.0, got, "writes through the view must reach the parent")

	_, err = v.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "the view enforces its own shape")

	_, err = m.Submatrix(2, 2, 2, 2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "extent past the parent must be rejected")
}

// TestDense_RowAliasing verifies Row hands out a live window into the
// backing storage.
func TestDense_RowAliasing(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	row[0] = 30
	got, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got, "row slice writes must reach the matrix")

	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestDense_CloneDetachesViews checks Clone yields independent,
// contiguous storage even when taken from a strided view.
func TestDense_CloneDetachesViews(t *testing.T) {
	m, err := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)

	v, err := m.Submatrix(0, 1, 2, 2)
	require.NoError(t, err)

	c := v.Clone()
	require.NoError(t, c.Set(0, 0, -1))

	got, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "clone writes must not reach the original")

	got, err = c.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got, "clone preserves the view's contents")
}
