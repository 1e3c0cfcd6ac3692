// SPDX-License-Identifier: MIT
// Package matrix: exact structural operations shared by the kernels.
// All functions perform strict fail-fast validation, never mutate their
// operands, and traverse in fixed i→j order for determinism.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTrace       = "Trace"
	opShiftDiag   = "ShiftDiagonal"
	opDeterminant = "Determinant"
	opCharPoly    = "CharPoly"
	opNullspace   = "Nullspace"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs exact matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): operands non-nil, inner dimensions agree.
// Stage 2 (Execute): fixed i→j→k triple loop with a reusable product
// temporary; zero entries of A are skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·n·c) rational multiplications.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int // loop iterators (deterministic order)
	var term big.Rat
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc := res.data[i*b.c+j] // starts at exact zero
			for k = 0; k < a.c; k++ {
				av := a.data[i*a.c+k]
				if av.Sign() == 0 {
					continue // skip zero for performance
				}
				term.Mul(av, b.data[k*b.c+j])
				acc.Add(acc, &term)
			}
		}
	}

	return res, nil
}

// Trace returns the exact sum of the diagonal entries.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m *Dense) (*big.Rat, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opTrace, err)
	}
	sum := new(big.Rat)
	for i := 0; i < m.r; i++ {
		sum.Add(sum, m.data[i*m.c+i])
	}

	return sum, nil
}

// ShiftDiagonal returns A − λI as a fresh matrix; A is not mutated.
// This is the eigenspace matrix for a candidate eigenvalue λ.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²) for the clone, O(n) for the shift.
func ShiftDiagonal(m *Dense, lambda *big.Rat) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opShiftDiag, err)
	}
	if lambda == nil {
		return nil, matrixErrorf(opShiftDiag, ErrNilMatrix)
	}
	out := m.Clone()
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+i].Sub(out.data[i*out.c+i], lambda)
	}

	return out, nil
}
