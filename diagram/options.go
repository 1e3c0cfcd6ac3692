// Package diagram: functional configuration for the renderer.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer errors, not runtime conditions),
//   - gatherOptions helper (internal) that applies defaults first.

package diagram

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultCanvasSize is the side length of the square canvas, in pixels.
	DefaultCanvasSize = 400

	// DefaultPadding is the margin between the unit circle and the canvas
	// edge; the projection scale is canvas/2 − padding.
	DefaultPadding = 40

	// DefaultLabelFontSize is the font size of eigenvalue labels.
	DefaultLabelFontSize = 14
)

// Default palette, matching the classic presentation.
const (
	// DefaultAxisColor draws the two axis lines through the origin.
	DefaultAxisColor = "#555"

	// DefaultGridColor draws the background grid.
	DefaultGridColor = "#eee"

	// DefaultBasisColor draws the dashed per-vector arrows.
	DefaultBasisColor = "#FFA500"

	// DefaultEigenvalueColor draws the solid labeled arrow per eigenspace.
	DefaultEigenvalueColor = "#3B5BDB"

	// DefaultCircleColor draws the dashed unit circle.
	DefaultCircleColor = "#aaa"
)

// Dash patterns are fixed visual conventions, not options.
const (
	arrowDashArray  = "10,5"
	circleDashArray = "5,5"
)

// options carries the resolved render configuration.
type options struct {
	canvasSize      int
	padding         int
	labelFontSize   int
	axisColor       string
	gridColor       string
	basisColor      string
	eigenvalueColor string
	circleColor     string
}

// Option mutates the render configuration.
type Option func(*options)

// gatherOptions applies defaults, then user options, in order.
func gatherOptions(opts []Option) options {
	o := options{
		canvasSize:      DefaultCanvasSize,
		padding:         DefaultPadding,
		labelFontSize:   DefaultLabelFontSize,
		axisColor:       DefaultAxisColor,
		gridColor:       DefaultGridColor,
		basisColor:      DefaultBasisColor,
		eigenvalueColor: DefaultEigenvalueColor,
		circleColor:     DefaultCircleColor,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCanvasSize sets the square canvas side length in pixels.
// Panics when px is not positive (programmer error).
func WithCanvasSize(px int) Option {
	if px <= 0 {
		panic("diagram: WithCanvasSize requires px > 0")
	}

	return func(o *options) { o.canvasSize = px }
}

// WithPadding sets the canvas margin in pixels.
// Panics when px is negative or leaves no drawing area (programmer error;
// the check against the final canvas size happens at render time).
func WithPadding(px int) Option {
	if px < 0 {
		panic("diagram: WithPadding requires px >= 0")
	}

	return func(o *options) { o.padding = px }
}

// WithBasisColor overrides the dashed basis-arrow color.
func WithBasisColor(c string) Option {
	if c == "" {
		panic("diagram: WithBasisColor requires a color")
	}

	return func(o *options) { o.basisColor = c }
}

// WithEigenvalueColor overrides the solid eigenvalue-arrow color.
func WithEigenvalueColor(c string) Option {
	if c == "" {
		panic("diagram: WithEigenvalueColor requires a color")
	}

	return func(o *options) { o.eigenvalueColor = c }
}
