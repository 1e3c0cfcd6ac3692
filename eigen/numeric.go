// Package eigen: tolerance-guarded complex elimination.
// Exact rational nullspaces cover rational eigenvalues; this file covers
// the rest (irrational and complex λ), where A − λI only exists as a
// floating approximation and rank questions need a tolerance.

package eigen

import (
	"math"
	"math/cmplx"

	"github.com/Cheezcuits/EigenCalculator/matrix"
)

// rankTolerance scales the pivot threshold for the complex elimination.
const rankTolerance = 1e-8

// complexShifted builds A − λI as a dense complex grid from the exact
// matrix's float64 views.
func complexShifted(m *matrix.Dense, lambda complex128) ([][]complex128, error) {
	n := m.Rows()
	grid := make([][]complex128, n)
	var i, j int
	for i = 0; i < n; i++ {
		grid[i] = make([]complex128, n)
		for j = 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			f, _ := v.Float64()
			grid[i][j] = complex(f, 0)
		}
		grid[i][i] -= lambda
	}

	return grid, nil
}

// complexNullspace computes a basis of the numeric nullspace of the grid by
// Gauss–Jordan elimination with partial (max-modulus) pivoting. Pivots below
// rankTolerance·maxEntry count as zero, which is what turns the numerically
// rank-deficient A − λI into an actual eigenspace.
//
// Determinism: fixed scan order; ties in the pivot search resolve to the
// first row.
func complexNullspace(grid [][]complex128) [][]complex128 {
	n := len(grid)

	// Tolerance anchored to the largest entry magnitude.
	maxAbs := 0.0
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a := cmplx.Abs(grid[i][j]); a > maxAbs {
				maxAbs = a
			}
		}
	}
	tol := rankTolerance
	if maxAbs > 1 {
		tol *= maxAbs
	}

	pivotColOf := make([]int, n)
	for i = range pivotColOf {
		pivotColOf[i] = -1
	}
	isPivotCol := make([]bool, n)

	var row, col, r, best int
	var bestAbs float64
	row = 0
	for col = 0; col < n && row < n; col++ {
		// Max-modulus pivot at or below `row`.
		best, bestAbs = -1, tol
		for r = row; r < n; r++ {
			if a := cmplx.Abs(grid[r][col]); a > bestAbs {
				best, bestAbs = r, a
			}
		}
		if best < 0 {
			continue // numerically free column
		}
		grid[row], grid[best] = grid[best], grid[row]

		pivot := grid[row][col]
		for j = col; j < n; j++ {
			grid[row][j] /= pivot
		}
		for r = 0; r < n; r++ {
			if r == row {
				continue
			}
			lead := grid[r][col]
			if cmplx.Abs(lead) == 0 {
				continue
			}
			for j = col; j < n; j++ {
				grid[r][j] -= lead * grid[row][j]
			}
		}

		pivotColOf[row] = col
		isPivotCol[col] = true
		row++
	}

	var basis [][]complex128
	for col = 0; col < n; col++ {
		if isPivotCol[col] {
			continue
		}
		vec := make([]complex128, n)
		vec[col] = 1
		for r = 0; r < n; r++ {
			if pivotColOf[r] < 0 {
				break
			}
			vec[pivotColOf[r]] = -grid[r][col]
		}
		basis = append(basis, cleanVector(vec))
	}

	return basis
}

// cleanVector snaps numeric dust to exact zero so display vectors do not
// carry 1e-17 artifacts.
func cleanVector(vec []complex128) []complex128 {
	for i, z := range vec {
		re, im := real(z), imag(z)
		if math.Abs(re) < rankTolerance {
			re = 0
		}
		if math.Abs(im) < rankTolerance {
			im = 0
		}
		vec[i] = complex(re, im)
	}

	return vec
}
