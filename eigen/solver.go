// Package eigen: the decomposition pipeline.
// Decompose is the sole error boundary of the system: everything below it
// returns plain sentinel errors, everything above it receives either a
// complete Result or a single tagged failure — never a panic, never a
// partial result.

package eigen

import (
	"fmt"
	"math/big"

	"github.com/Cheezcuits/EigenCalculator/matrix"
	"github.com/Cheezcuits/EigenCalculator/polynomial"
)

// Supported matrix dimensions.
const (
	// MinSize is the smallest supported matrix dimension.
	MinSize = 2

	// MaxSize is the largest supported matrix dimension.
	MaxSize = 5
)

// solveErrorf converts an internal kernel failure into the boundary's
// tagged failure: errors.Is(err, ErrSolveFailed) holds, and the message
// keeps the human-readable cause.
func solveErrorf(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSolveFailed, stage, err)
}

// Decompose runs the full pipeline on an n×n grid of numbers.
//
// Stage 1 (Validate): n×n with MinSize ≤ n ≤ MaxSize; entries finite.
// Stage 2 (Exact): build the rational matrix; determinant and monic
// characteristic polynomial det(λI − A) over ℚ; factored rendering.
// Stage 3 (Roots): exact multiplicities via square-free structure; rational
// roots exact, the rest numeric with conjugate pairs preserved.
// Stage 4 (Eigenspaces): rational λ ⇒ exact nullspace of A − λI over ℚ;
// other λ ⇒ tolerance-guarded complex elimination.
// Stage 5 (Normalize): tagged scalars, rounded basis entries, flattened
// spectrum, canonical entry order.
//
// Errors:
//   - ErrNonSquare, ErrBadSize (precondition violations).
//   - matrix.ErrNaNInf (non-finite entries, wrapped).
//   - ErrSolveFailed (any internal kernel failure, with cause text).
//
// Determinism: identical input produces an identical Result, field by field.
// Complexity: O(n⁴) rational work; n ≤ 5 keeps everything instant.
func Decompose(rows [][]float64) (*Result, error) {
	// Stage 1: shape preconditions.
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	if n < MinSize || n > MaxSize {
		return nil, ErrBadSize
	}

	// Stage 2: exact ingestion and symbolic kernels.
	m, err := matrix.FromFloats(rows)
	if err != nil {
		return nil, fmt.Errorf("eigen: %w", err)
	}

	detRat, err := matrix.Determinant(m)
	if err != nil {
		return nil, solveErrorf("determinant", err)
	}
	det, _ := detRat.Float64()

	charPoly, err := matrix.CharPoly(m)
	if err != nil {
		return nil, solveErrorf("characteristic polynomial", err)
	}
	factored, err := polynomial.FactoredString(charPoly)
	if err != nil {
		return nil, solveErrorf("factorization", err)
	}

	// Stage 3: eigenvalues with exact algebraic multiplicities.
	roots, err := charPoly.Roots()
	if err != nil {
		return nil, solveErrorf("eigenvalues", err)
	}

	// Stage 4+5: one Entry per distinct eigenvalue, canonical root order.
	entries := make([]Entry, 0, len(roots))
	for _, root := range roots {
		entry, eerr := buildEntry(m, root)
		if eerr != nil {
			return nil, solveErrorf("eigenspace", eerr)
		}
		entries = append(entries, entry)
	}

	spectrum := make([]Scalar, 0, n)
	for _, e := range entries {
		for i := 0; i < e.Multiplicity; i++ {
			spectrum = append(spectrum, e.Value)
		}
	}

	return &Result{
		Size:         n,
		Determinant:  det,
		CharPoly:     charPoly.String(),
		FactoredPoly: factored,
		Entries:      entries,
		Spectrum:     spectrum,
	}, nil
}

// buildEntry computes the eigenspace basis for one distinct root and
// normalizes value and basis into tagged scalars.
func buildEntry(m *matrix.Dense, root polynomial.Root) (Entry, error) {
	if root.Exact != nil {
		return buildExactEntry(m, root)
	}

	return buildNumericEntry(m, root)
}

// buildExactEntry handles rational eigenvalues with the exact ℚ nullspace.
func buildExactEntry(m *matrix.Dense, root polynomial.Root) (Entry, error) {
	shifted, err := matrix.ShiftDiagonal(m, root.Exact)
	if err != nil {
		return Entry{}, err
	}
	nullBasis, err := matrix.Nullspace(shifted)
	if err != nil {
		return Entry{}, err
	}

	basis := make([][]Scalar, 0, len(nullBasis))
	for _, vec := range nullBasis {
		basis = append(basis, ratVector(vec))
	}
	value, _ := root.Exact.Float64()

	return Entry{
		Value:        NewReal(value),
		Multiplicity: root.Multiplicity,
		Basis:        basis,
	}, nil
}

// buildNumericEntry handles irrational and complex eigenvalues with the
// complex elimination. The eigenvalue keeps full precision when real; a
// complex one becomes tagged text and the basis inherits the same realness
// classification component-wise.
func buildNumericEntry(m *matrix.Dense, root polynomial.Root) (Entry, error) {
	grid, err := complexShifted(m, root.Value)
	if err != nil {
		return Entry{}, err
	}
	nullBasis := complexNullspace(grid)

	basis := make([][]Scalar, 0, len(nullBasis))
	for _, vec := range nullBasis {
		scalars := make([]Scalar, len(vec))
		for i, z := range vec {
			scalars[i] = normalizeComponent(z)
		}
		basis = append(basis, scalars)
	}

	var value Scalar
	if root.IsReal() {
		value = NewReal(real(root.Value)) // full precision; render rounds
	} else {
		value = NewComplex(root.Value)
	}

	return Entry{
		Value:        value,
		Multiplicity: root.Multiplicity,
		Basis:        basis,
	}, nil
}

// ratVector converts an exact basis vector into display scalars (4-decimal
// rounding, exactness ends at the presentation edge).
func ratVector(vec []*big.Rat) []Scalar {
	out := make([]Scalar, len(vec))
	for i, r := range vec {
		v, _ := r.Float64()
		out[i] = NewReal(round4(v))
	}

	return out
}
