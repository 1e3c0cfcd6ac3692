// Package matrix offers exact dense matrices over the rationals and the
// linear-algebra kernels the eigen pipeline is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of *big.Rat entries, built losslessly from
//     float64 input (FromFloats) so 0.1 is exactly 1/10, never a binary
//     approximation.
//   - Exact kernels: Determinant (fraction Gaussian elimination),
//     CharPoly (Faddeev–LeVerrier, monic det(λI − A)), Nullspace (reduced
//     row echelon with free-column basis construction), and ShiftDiagonal
//     for forming A − λI.
//
// Matrices here are small by contract (eigen enforces 2 ≤ n ≤ 5); the
// kernels favor exactness and determinism over asymptotic cleverness.
//
// See the examples in this package and eigen for usage patterns.
package matrix
