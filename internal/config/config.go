// Package config defines process configuration for the eigencalc CLI.
//
// Conventions:
//   - New() builds a Config with documented defaults.
//   - Load(ctx) layers defaults, an optional YAML file, and env vars.
//   - External errors are wrapped with this package's sentinels.
package config

import "github.com/Cheezcuits/EigenCalculator/diagram"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CanvasSize is the side length of the square SVG canvas, in pixels.
	CanvasSize int `koanf:"canvas_size"`

	// Padding is the margin between the unit circle and the canvas edge.
	Padding int `koanf:"padding"`

	// BasisColor draws the dashed per-vector arrows.
	BasisColor string `koanf:"basis_color"`

	// EigenvalueColor draws the solid labeled arrow per eigenspace.
	EigenvalueColor string `koanf:"eigenvalue_color"`

	// SVGOut, when non-empty, is the file path the diagram is written to.
	// The -svg flag overrides it.
	SVGOut string `koanf:"svg_out"`
}

// New creates a Config with defaults. The rendering defaults mirror the
// diagram package so a zero configuration and a zero-option Render agree.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		CanvasSize:      diagram.DefaultCanvasSize,
		Padding:         diagram.DefaultPadding,
		BasisColor:      diagram.DefaultBasisColor,
		EigenvalueColor: diagram.DefaultEigenvalueColor,
	}
}
