// SPDX-License-Identifier: MIT
// Package matrix: central validators shared by every kernel.
// Kernels call these before touching data so error behavior stays uniform:
// plain sentinels out of validators, fmt.Errorf("%s: %w", op, err) wrapping
// at the kernel facade.

package matrix

// ValidateNotNil rejects a nil *Dense.
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare rejects non-square matrices (nil included).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateMulCompatible rejects operand pairs whose inner dimensions do not
// agree for multiplication.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}
