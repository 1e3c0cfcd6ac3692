// Package eigen runs the full eigendecomposition pipeline for small square
// matrices and normalizes the outcome for display.
//
// The eigen package provides:
//
//   - Decompose, the single entry point and the single error boundary:
//     float input → exact matrix → determinant, characteristic polynomial
//     (expanded + factored), eigenvalues with algebraic multiplicities,
//     eigenspace bases — all wrapped into one read-only Result.
//   - Scalar, a tagged real-or-complex value. Complex eigenvalues and
//     basis entries stay complex, carried as canonical "a+bi" text; they
//     are never forced through a float conversion.
//   - A deterministic result order: exact rational eigenvalues ascending,
//     then real irrational ascending, then complex by (re, im) — so the
//     same matrix always yields byte-identical output.
//
// Exactness policy: rational eigenvalues get exact rational eigenspace
// bases (nullspace over ℚ); irrational and complex eigenvalues fall back
// to a tolerance-guarded complex elimination. Algebraic multiplicities are
// always exact (square-free decomposition of the characteristic
// polynomial), so Σ multiplicities = n holds unconditionally.
//
// See example_test.go for usage patterns.
package eigen
