// Package eigencalculator is an exact-arithmetic eigendecomposition toolkit
// for small square matrices — from lossless rational ingestion to factored
// characteristic polynomials, eigenspace bases and projection diagrams.
//
// 🚀 What is EigenCalculator?
//
//	A deterministic, exact-first library (2×2 up to 5×5) that brings together:
//		• Exact matrices: *big.Rat entries built losslessly from float input
//		• Exact kernels: determinant, characteristic polynomial, nullspace
//		• Polynomial machinery: GCD, Yun square-free decomposition, rational
//		  roots, quadratic-factor reconstruction, complex root solving
//		• Eigen pipeline: eigenvalues with algebraic multiplicities and
//		  eigenspace bases, real and complex alike
//		• Projection diagrams: deterministic 2D SVG of real eigenvectors
//
// ✨ Why choose EigenCalculator?
//
//   - Exact where it matters – rational arithmetic end to end, so a zero is
//     a zero and a repeated root is genuinely repeated
//   - Deterministic – identical input always yields identical output, from
//     term ordering in polynomial text down to the SVG bytes
//   - Honest about complex results – complex eigenvalues stay complex,
//     carried as tagged scalars, never collapsed into floats
//   - Small surface – one call (eigen.Decompose) runs the whole pipeline
//
// Under the hood, everything is organized under four subpackages plus a CLI:
//
//	matrix/       — exact dense matrices & linear-algebra kernels
//	polynomial/   — rational-coefficient polynomial algebra & root finding
//	eigen/        — the decomposition pipeline & normalized result model
//	diagram/      — deterministic 2D eigenvector projection as SVG
//	cmd/eigencalc — terminal front end over the pipeline
//
// Quick ASCII example:
//
//	    ⎡2 0⎤        λ=2 (mult 2), eigenspace = span{e₁, e₂}
//	    ⎣0 2⎦
//
// Start with eigen.Decompose; feed its Result to diagram.Render when you
// want the picture.
//
//	go get github.com/Cheezcuits/EigenCalculator/eigen
package eigencalculator
