// SPDX-License-Identifier: MIT
// Package matrix: exact determinant kernel.

package matrix

import "math/big"

// Determinant computes det(A) by fraction Gaussian elimination over ℚ.
// Exact rational arithmetic makes pivoting a correctness question only:
// the first non-zero entry of each column is the pivot, rows are swapped
// deterministically, and the sign flips per swap.
//
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Eliminate): for each column, locate pivot, swap, eliminate below.
// Stage 3 (Finalize): determinant = sign · Π diagonal.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Determinism: fixed pivot scan order; identical input ⇒ identical output.
// Complexity: O(n³) rational operations, exact (no tolerance anywhere).
func Determinant(m *Dense) (*big.Rat, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	n := m.r
	work := m.Clone() // elimination scratch; the input stays untouched
	sign := 1

	var col, row, pivotRow, i int
	var factor, term big.Rat
	for col = 0; col < n; col++ {
		// Locate the first non-zero pivot in this column.
		pivotRow = -1
		for row = col; row < n; row++ {
			if work.data[row*n+col].Sign() != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow < 0 {
			return new(big.Rat), nil // a zero column ⇒ det is exactly 0
		}
		if pivotRow != col {
			swapRows(work, pivotRow, col)
			sign = -sign
		}

		pivot := work.data[col*n+col]
		// Eliminate everything below the pivot.
		for row = col + 1; row < n; row++ {
			lead := work.data[row*n+col]
			if lead.Sign() == 0 {
				continue
			}
			factor.Quo(lead, pivot)
			for i = col; i < n; i++ {
				term.Mul(&factor, work.data[col*n+i])
				work.data[row*n+i].Sub(work.data[row*n+i], &term)
			}
		}
	}

	det := big.NewRat(int64(sign), 1)
	for i = 0; i < n; i++ {
		det.Mul(det, work.data[i*n+i])
	}

	return det, nil
}

// swapRows exchanges two rows of the scratch matrix in place.
func swapRows(m *Dense, a, b int) {
	base1, base2 := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[base1+j], m.data[base2+j] = m.data[base2+j], m.data[base1+j]
	}
}
