// Package diagram: the projection renderer.
// Render is a pure function of its inputs: a fixed traversal order over
// the eigen entries and integer pixel emission make the SVG byte-stable
// across runs.

package diagram

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/Cheezcuits/EigenCalculator/eigen"
)

// arrowStrokeWidth is the stroke width of every arrow line.
const arrowStrokeWidth = 2

// drawable is one eigenspace prepared for projection: a real eigenvalue
// and its basis as plain float vectors.
type drawable struct {
	value float64
	basis [][]float64
}

// Render produces the SVG projection of the real eigenvectors in res.
//
// Stage 1 (Collect): keep real, non-degenerate entries; extract float
// vectors; bail out with ErrNothingToDraw when nothing survives.
// Stage 2 (Geometry): scale = canvas/2 − padding, origin at center.
// Stage 3 (Emit): defs → grid → axes → unit circle → dashed basis arrows →
// solid labeled eigenvalue arrows, in fixed order.
//
// Errors:
//   - ErrNilResult      (res is nil).
//   - ErrBadGeometry    (padding leaves no drawing area).
//   - ErrNothingToDraw  (complex-only or degenerate spectrum; explicit
//     absence of a diagram rather than an empty one).
func Render(res *eigen.Result, opts ...Option) (string, error) {
	if res == nil {
		return "", ErrNilResult
	}
	o := gatherOptions(opts)

	scale := float64(o.canvasSize)/2 - float64(o.padding)
	if scale <= 0 {
		return "", ErrBadGeometry
	}

	draws := collectDrawables(res)
	if len(draws) == 0 {
		return "", ErrNothingToDraw
	}

	size := o.canvasSize
	ox, oy := size/2, size/2

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size, `style="background-color:white"`)

	// Arrowhead markers, one per arrow color.
	canvas.Def()
	emitMarker(canvas, o.basisColor)
	emitMarker(canvas, o.eigenvalueColor)
	canvas.DefEnd()

	emitGrid(canvas, size, int(scale/2), o.gridColor)

	// Axis lines through the origin.
	axisStyle := "stroke:" + o.axisColor + ";stroke-width:2"
	canvas.Line(0, oy, size, oy, axisStyle)
	canvas.Line(ox, 0, ox, size, axisStyle)

	// Unit circle of radius = scale, purely visual reference.
	canvas.Circle(ox, oy, int(scale),
		"fill:none;stroke:"+o.circleColor+";stroke-width:2;stroke-dasharray:"+circleDashArray)

	// Arrows first, labels last, matching the layering order.
	type label struct {
		x, y int
		text string
	}
	var labels []label
	for _, d := range draws {
		var firstX, firstY int
		for idx, vec := range d.basis {
			signed := signedVector(vec, d.value)
			unit := normalizeVector(signed)
			x2, y2 := project(unit, scale, ox, oy)
			emitArrow(canvas, ox, oy, x2, y2, o.basisColor, true)
			if idx == 0 {
				firstX, firstY = x2, y2
			}
		}
		// Solid arrow over the first basis vector, labeled with λ.
		emitArrow(canvas, ox, oy, firstX, firstY, o.eigenvalueColor, false)
		labels = append(labels, label{
			x:    firstX,
			y:    firstY - 10,
			text: fmt.Sprintf("λ=%.1f", d.value),
		})
	}
	for _, l := range labels {
		canvas.Text(l.x, l.y, l.text,
			fmt.Sprintf("font-size:%dpx;fill:%s;font-weight:bold;text-anchor:middle",
				o.labelFontSize, o.eigenvalueColor))
	}

	canvas.End()

	return buf.String(), nil
}

// collectDrawables filters res down to real eigenvalues whose basis
// vectors are fully real. Complex entries and empty bases are skipped
// silently — renderer edge cases, not errors.
func collectDrawables(res *eigen.Result) []drawable {
	var out []drawable
	for _, entry := range res.Entries {
		if entry.IsComplex() || len(entry.Basis) == 0 {
			continue
		}
		value, ok := entry.Value.Real()
		if !ok {
			continue
		}
		basis := make([][]float64, 0, len(entry.Basis))
		for _, vec := range entry.Basis {
			floats, realOK := realVector(vec)
			if !realOK {
				basis = nil
				break
			}
			basis = append(basis, floats)
		}
		if len(basis) == 0 {
			continue
		}
		out = append(out, drawable{value: value, basis: basis})
	}

	return out
}

// realVector extracts float components; reports false when any component
// is complex.
func realVector(vec []eigen.Scalar) ([]float64, bool) {
	out := make([]float64, len(vec))
	for i, s := range vec {
		v, ok := s.Real()
		if !ok {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

// signedVector flips every component when the eigenvalue is negative.
// Purely a visual convention: the arrow then points along the direction
// the map sends it, not mathematically required.
func signedVector(vec []float64, eigenvalue float64) []float64 {
	if eigenvalue >= 0 {
		return vec
	}
	out := make([]float64, len(vec))
	for i, c := range vec {
		out[i] = -c
	}

	return out
}

// normalizeVector scales to unit Euclidean length; a zero vector passes
// through unmodified (degenerate case).
func normalizeVector(vec []float64) []float64 {
	var sum float64
	for _, c := range vec {
		sum += c * c
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return vec
	}
	out := make([]float64, len(vec))
	for i, c := range vec {
		out[i] = c / norm
	}

	return out
}

// project maps the first two coordinates onto the canvas with the y-axis
// inverted for screen coordinates. Vectors of dimension < 2 collapse to
// the origin.
func project(vec []float64, scale float64, ox, oy int) (int, int) {
	if len(vec) < 2 {
		return ox, oy
	}
	x := int(math.Round(float64(ox) + vec[0]*scale))
	y := int(math.Round(float64(oy) - vec[1]*scale))

	return x, y
}

// markerID derives a stable marker id from a color string.
func markerID(color string) string {
	return strings.TrimPrefix(color, "#") + "_arrow"
}

// emitMarker writes one arrowhead marker definition.
func emitMarker(canvas *svg.SVG, color string) {
	canvas.Marker(markerID(color), 0, 3, 10, 10, `orient="auto"`, `markerUnits="strokeWidth"`)
	canvas.Path("M0,0 L0,6 L9,3 z", "fill:"+color)
	canvas.MarkerEnd()
}

// emitGrid draws the background grid across the full canvas.
func emitGrid(canvas *svg.SVG, size, spacing int, color string) {
	if spacing < 1 {
		spacing = 1
	}
	style := "stroke:" + color + ";stroke-width:1"
	for x := 0; x <= size; x += spacing {
		canvas.Line(x, 0, x, size, style)
	}
	for y := 0; y <= size; y += spacing {
		canvas.Line(0, y, size, y, style)
	}
}

// emitArrow draws one arrow line with its color-matched head.
func emitArrow(canvas *svg.SVG, x1, y1, x2, y2 int, color string, dashed bool) {
	style := fmt.Sprintf("stroke:%s;stroke-width:%d", color, arrowStrokeWidth)
	if dashed {
		style += ";stroke-dasharray:" + arrowDashArray
	}
	canvas.Line(x1, y1, x2, y2, style, fmt.Sprintf(`marker-end="url(#%s)"`, markerID(color)))
}
