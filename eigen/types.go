// Package eigen: result model.
// Scalar is the tagged real-or-complex variant carried through every
// downstream stage, replacing ad-hoc "is this a float or a string?"
// type-checks at each consumption point.

package eigen

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the two Scalar variants.
type Kind int

const (
	// Real marks a scalar with a meaningful float64 value.
	Real Kind = iota

	// Complex marks a scalar carried as canonical "a+bi" text; it has no
	// float64 value and must never be coerced into one.
	Complex
)

// Scalar is a real-or-complex numeric value in display-normalized form.
// The zero value is the real number 0.
type Scalar struct {
	kind Kind
	val  float64
	text string
}

// NewReal wraps a float64 as a real Scalar.
func NewReal(v float64) Scalar { return Scalar{kind: Real, val: v} }

// NewComplex wraps a complex value as a complex Scalar with canonical
// "a+bi" text (full-precision parts, pure-imaginary shortforms i / -i).
func NewComplex(z complex128) Scalar {
	return Scalar{kind: Complex, text: formatComplex(z)}
}

// IsComplex reports whether s carries a complex value.
func (s Scalar) IsComplex() bool { return s.kind == Complex }

// Real returns the float64 value and true for real scalars; (0, false) for
// complex ones.
func (s Scalar) Real() (float64, bool) {
	if s.kind == Complex {
		return 0, false
	}

	return s.val, true
}

// String renders the scalar: shortest float form for real values, the
// stored "a+bi" text for complex ones.
func (s Scalar) String() string {
	if s.kind == Complex {
		return s.text
	}

	return strconv.FormatFloat(s.val, 'g', -1, 64)
}

// MarshalJSON emits real scalars as JSON numbers and complex scalars as
// JSON strings, mirroring the number-or-string output contract.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.kind == Complex {
		return json.Marshal(s.text)
	}

	return json.Marshal(s.val)
}

// Entry describes one distinct eigenvalue: the value itself, its algebraic
// multiplicity, and an ordered eigenspace basis. The basis length is the
// geometric multiplicity, which may be smaller than the algebraic one (and
// zero only in the defective numeric edge case).
type Entry struct {
	Value        Scalar     `json:"eigenvalue"`
	Multiplicity int        `json:"multiplicity"`
	Basis        [][]Scalar `json:"basis"`
}

// IsComplex reports whether the entry's eigenvalue is complex.
func (e Entry) IsComplex() bool { return e.Value.IsComplex() }

// Result aggregates everything the pipeline produces for one matrix.
// It is read-only by convention: derived once, consumed, discarded.
type Result struct {
	// Size is the matrix dimension n.
	Size int `json:"size"`

	// Determinant is det(A) evaluated from its exact rational value.
	Determinant float64 `json:"determinant"`

	// CharPoly is the expanded monic characteristic polynomial det(λI − A).
	CharPoly string `json:"characteristic_polynomial"`

	// FactoredPoly is the fully factored form of CharPoly.
	FactoredPoly string `json:"factored_polynomial"`

	// Entries lists the distinct eigenvalues in canonical order.
	Entries []Entry `json:"eigenspaces"`

	// Spectrum flattens Entries: each eigenvalue repeated per its algebraic
	// multiplicity, preserving Entry order.
	Spectrum []Scalar `json:"spectrum"`
}
