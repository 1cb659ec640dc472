package multiroots

import (
	"math"

	"github.com/katalvlaran/zeroin/matrix"
)

// jacobian approximates the n×n Jacobian of fn at x by column-wise
// central differences: J[i][j] ≈ (F(x+h·e_j)[i] − F(x−h·e_j)[i]) / 2h.
// The base step h is scaled per component by |x_j| so that large
// coordinates keep a comparable relative perturbation. x is restored
// after every column; fn must not retain the slice it receives.
func jacobian(fn Func, x []float64, h float64) (*matrix.Dense, error) {
	n := len(x)
	jac, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		col          int
		step, backup float64
		fPlus        []float64
		fMinus       []float64
	)
	for col = 0; col < n; col++ {
		step = h
		if s := h * math.Abs(x[col]); s > step {
			step = s
		}

		backup = x[col]
		x[col] = backup + step
		fPlus = fn(x)
		x[col] = backup - step
		fMinus = fn(x)
		x[col] = backup

		if len(fPlus) != n || len(fMinus) != n {
			return nil, ErrDimensionMismatch
		}

		for row := 0; row < n; row++ {
			d := (fPlus[row] - fMinus[row]) / (2 * step)
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, ErrNumerical
			}
			if err = jac.Set(row, col, d); err != nil {
				return nil, err
			}
		}
	}

	return jac, nil
}
