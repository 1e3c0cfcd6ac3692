// SPDX-License-Identifier: MIT
// Package matrix: exact characteristic polynomial kernel.

package matrix

import (
	"math/big"

	"github.com/Cheezcuits/EigenCalculator/polynomial"
)

// CharPoly computes the monic characteristic polynomial det(λI − A) via the
// Faddeev–LeVerrier recurrence, entirely over ℚ.
//
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Recur): M₀ = I, c_n = 1; for k = 1..n:
// c_{n-k} = −tr(A·M_{k-1})/k, then M_k = A·M_{k-1} + c_{n-k}·I.
// Stage 3 (Finalize): wrap the coefficient vector as a polynomial.Poly.
//
// The monic det(λI − A) convention matches what a symbolic engine prints
// for charpoly; det(A) relates to it as (−1)ⁿ · c₀.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Determinism: exact arithmetic, fixed iteration order.
// Complexity: O(n⁴) rational operations (n matrix products of size n).
func CharPoly(m *Dense) (polynomial.Poly, error) {
	if err := ValidateSquare(m); err != nil {
		return polynomial.Poly{}, matrixErrorf(opCharPoly, err)
	}

	n := m.r
	coeffs := make([]*big.Rat, n+1)
	coeffs[n] = big.NewRat(1, 1) // monic

	acc, err := Identity(n)
	if err != nil {
		return polynomial.Poly{}, matrixErrorf(opCharPoly, err)
	}

	var k, i int
	var kRat big.Rat
	for k = 1; k <= n; k++ {
		am, merr := Mul(m, acc)
		if merr != nil {
			return polynomial.Poly{}, matrixErrorf(opCharPoly, merr)
		}
		tr, terr := Trace(am)
		if terr != nil {
			return polynomial.Poly{}, matrixErrorf(opCharPoly, terr)
		}
		// c_{n-k} = -tr(A·M)/k
		kRat.SetInt64(int64(k))
		c := new(big.Rat).Quo(tr, &kRat)
		c.Neg(c)
		coeffs[n-k] = c

		// M ← A·M + c·I (only the diagonal shifts).
		for i = 0; i < n; i++ {
			am.data[i*n+i].Add(am.data[i*n+i], c)
		}
		acc = am
	}

	return polynomial.New(coeffs...), nil
}
