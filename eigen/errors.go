// Package eigen: sentinel error set.
// Decompose is the only boundary that reports errors; downstream consumers
// (normalization, rendering) assume a validated Result and have no error
// paths of their own. Tests match these with errors.Is.

package eigen

import "errors"

var (
	// ErrNonSquare is returned when the input grid is ragged or not n×n.
	ErrNonSquare = errors.New("eigen: input matrix is not square")

	// ErrBadSize is returned when n is outside the supported 2..5 range.
	ErrBadSize = errors.New("eigen: matrix size must be between 2 and 5")

	// ErrSolveFailed tags any internal kernel failure (ingestion, symbolic
	// computation, root finding). The wrapped message carries the cause;
	// callers branch on the sentinel, humans read the text.
	ErrSolveFailed = errors.New("eigen: decomposition failed")
)
