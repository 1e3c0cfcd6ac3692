// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0, c<=0)
	// or when row-of-rows input is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (FromFloats ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (Mul inner mismatch, vector length mismatch).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
