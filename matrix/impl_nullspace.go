// SPDX-License-Identifier: MIT
// Package matrix: exact nullspace kernel.

package matrix

import "math/big"

// Nullspace computes an exact basis of {v : M·v = 0} by reduced row echelon
// form over ℚ. The basis follows the standard free-column construction: one
// vector per free column f, with 1 in position f and the negated reduced
// column entries in the pivot positions. For the zero matrix this yields the
// standard basis e₁..e_n in order.
//
// Stage 1 (Validate): non-nil.
// Stage 2 (RREF): exact Gauss–Jordan with first-non-zero pivoting.
// Stage 3 (Build): assemble one basis vector per free column.
//
// The returned slice is empty (nil) when the matrix has full column rank —
// the geometric "zero nullspace" case.
//
// Errors: ErrNilMatrix.
// Determinism: fixed elimination and assembly order.
// Complexity: O(r·c²) rational operations.
func Nullspace(m *Dense) ([][]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}

	rows, cols := m.r, m.c
	work := m.Clone()

	// pivotColOf[r] records which column row r pivots on; -1 when none.
	pivotColOf := make([]int, rows)
	for i := range pivotColOf {
		pivotColOf[i] = -1
	}
	// isPivotCol marks columns containing a pivot.
	isPivotCol := make([]bool, cols)

	var row, col, r, j, pivotRow int
	var factor, term big.Rat
	row = 0
	for col = 0; col < cols && row < rows; col++ {
		// Locate the first non-zero entry at or below `row`.
		pivotRow = -1
		for r = row; r < rows; r++ {
			if work.data[r*cols+col].Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			continue // free column
		}
		if pivotRow != row {
			swapRows(work, pivotRow, row)
		}

		// Normalize the pivot row to a unit pivot.
		pivot := new(big.Rat).Set(work.data[row*cols+col])
		for j = col; j < cols; j++ {
			work.data[row*cols+j].Quo(work.data[row*cols+j], pivot)
		}

		// Eliminate the column everywhere else (Gauss–Jordan).
		for r = 0; r < rows; r++ {
			if r == row {
				continue
			}
			lead := work.data[r*cols+col]
			if lead.Sign() == 0 {
				continue
			}
			factor.Set(lead)
			for j = col; j < cols; j++ {
				term.Mul(&factor, work.data[row*cols+j])
				work.data[r*cols+j].Sub(work.data[r*cols+j], &term)
			}
		}

		pivotColOf[row] = col
		isPivotCol[col] = true
		row++
	}

	// Assemble basis vectors, one per free column, in column order.
	var basis [][]*big.Rat
	for col = 0; col < cols; col++ {
		if isPivotCol[col] {
			continue
		}
		vec := make([]*big.Rat, cols)
		for j = 0; j < cols; j++ {
			vec[j] = new(big.Rat)
		}
		vec[col].SetInt64(1)
		for r = 0; r < rows; r++ {
			if pivotColOf[r] < 0 {
				break // rows below the rank are all zero
			}
			vec[pivotColOf[r]].Neg(work.data[r*cols+col])
		}
		basis = append(basis, vec)
	}

	return basis, nil
}
