// Package diagram: sentinel error set.

package diagram

import "errors"

var (
	// ErrNilResult indicates that a nil *eigen.Result was passed to Render.
	ErrNilResult = errors.New("diagram: nil result")

	// ErrBadGeometry indicates that the padding consumed the whole canvas,
	// leaving a non-positive drawing scale.
	ErrBadGeometry = errors.New("diagram: padding leaves no drawing area")

	// ErrNothingToDraw signals that no real, non-degenerate eigenvector was
	// available — the diagram is absent, not empty. Callers distinguish
	// this from an error and from a valid document.
	ErrNothingToDraw = errors.New("diagram: no real eigenvectors to draw")
)
