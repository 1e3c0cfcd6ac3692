// Package eigen: display normalization helpers.
// Real basis entries are rounded to 4 decimals for clean display; the
// eigenvalue itself keeps full float64 precision (rounding is a render-time
// concern). Complex values are formatted exactly once, here, at full
// precision — never approximated — and travel as text from then on.

package eigen

import (
	"math"
	"strconv"
	"strings"
)

// displayDecimals is the rounding applied to basis vector entries.
const displayDecimals = 4

// imagTolerance decides when a numerically computed imaginary part is
// noise rather than signal.
const imagTolerance = 1e-9

// round4 rounds to displayDecimals decimals and normalizes negative zero.
func round4(v float64) float64 {
	const shift = 1e4 // 10^displayDecimals
	r := math.Round(v*shift) / shift
	if r == 0 {
		return 0 // collapse -0
	}

	return r
}

// formatPart renders one component of a complex value in its shortest
// round-tripping form. Complex values are preserved at full precision;
// the 4-decimal treatment applies to real display entries only.
func formatPart(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatComplex produces the canonical "a+bi" text: real part omitted when
// zero (sub-tolerance dust included), unit imaginary coefficients collapse
// to "i" / "-i". Parts keep full float64 precision, so tiny conjugate
// pairs stay distinct and sign-carrying.
func formatComplex(z complex128) string {
	re, im := real(z), imag(z)
	if math.Abs(re) <= imagTolerance {
		re = 0
	}

	var b strings.Builder
	if re != 0 {
		b.WriteString(formatPart(re))
		if im >= 0 {
			b.WriteString("+")
		} else {
			b.WriteString("-")
		}
		im = math.Abs(im)
	} else if im < 0 {
		b.WriteString("-")
		im = math.Abs(im)
	}
	if im == 1 {
		b.WriteString("i")
	} else {
		b.WriteString(formatPart(im))
		b.WriteString("i")
	}

	return b.String()
}

// normalizeComponent converts one numeric vector component into a Scalar:
// near-real values become rounded real scalars, the rest stay complex.
func normalizeComponent(z complex128) Scalar {
	if math.Abs(imag(z)) <= imagTolerance {
		return NewReal(round4(real(z)))
	}

	return NewComplex(z)
}
