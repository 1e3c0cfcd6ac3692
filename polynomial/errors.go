// Package polynomial: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// polynomial package. All routines return these sentinels and tests check
// them via errors.Is. No routine panics on user-triggered error conditions.

package polynomial

import "errors"

var (
	// ErrZeroPolynomial is returned when an operation is undefined for the
	// zero polynomial (division, monicization, root extraction).
	ErrZeroPolynomial = errors.New("polynomial: zero polynomial")

	// ErrConstantPolynomial is returned when roots are requested from a
	// polynomial of degree zero.
	ErrConstantPolynomial = errors.New("polynomial: constant has no roots")

	// ErrRootsFailed indicates that the numeric root iteration did not
	// converge under the configured tolerance and iteration cap.
	ErrRootsFailed = errors.New("polynomial: root finding failed to converge")
)
