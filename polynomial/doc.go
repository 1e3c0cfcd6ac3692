// Package polynomial implements exact univariate polynomial algebra over the
// rationals, sized for characteristic polynomials of small matrices.
//
// The polynomial package provides:
//
//   - Poly, an immutable dense polynomial with *big.Rat coefficients and
//     exact Add/Sub/Mul/Div/Derivative/Eval arithmetic.
//   - Euclidean GCD and Yun square-free decomposition, the exact backbone
//     for root multiplicities.
//   - Root extraction: closed forms for degree ≤ 2, deterministic
//     Durand–Kerner iteration above, with exact rational refinement of
//     numeric roots via continued-fraction reconstruction.
//   - Factorization over ℚ (linear factors from verified rational roots,
//     irreducible quadratics recovered from conjugate pairs) and
//     deterministic rendering of expanded and factored forms.
//
// All operations are pure: inputs are never mutated, and identical inputs
// produce identical outputs, including textual rendering order.
//
// See the examples in this package and eigen for usage patterns.
package polynomial
