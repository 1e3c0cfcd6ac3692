// Package polynomial: factorization over ℚ for presentation.
// The factored form is exact: linear factors come from verified rational
// roots, quadratic factors from exact-divisibility-checked conjugate-pair
// reconstruction. Whatever resists both stays as one expanded block, so the
// rendered product always multiplies back to the input.

package polynomial

import (
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Factor is one component of a factorization: Base^Power.
type Factor struct {
	Base  Poly
	Power int
}

// Factorize splits p into lead·Π Baseᵢ^Powerᵢ with every Base monic and
// irreducible over ℚ whenever the reconstruction succeeds.
//
// Stage 1 (Structure): Yun square-free decomposition fixes the powers.
// Stage 2 (Linear): verified rational roots peel off exact linear factors.
// Stage 3 (Quadratic): conjugate pairs and real-root pairs propose rational
// quadratics, kept only when they divide exactly.
// Stage 4 (Order): by degree ascending, then by coefficient comparison from
// the constant term up — a fixed total order.
//
// Errors: ErrZeroPolynomial; numeric failures from the root iteration.
func Factorize(p Poly) (lead *big.Rat, factors []Factor, err error) {
	if p.IsZero() {
		return nil, nil, ErrZeroPolynomial
	}
	lead = p.Lead()
	if p.Degree() == 0 {
		return lead, nil, nil
	}

	sqf, err := SquareFree(p)
	if err != nil {
		return nil, nil, err
	}

	for _, sf := range sqf {
		parts, perr := splitSquareFree(sf.Factor)
		if perr != nil {
			return nil, nil, perr
		}
		for _, base := range parts {
			factors = append(factors, Factor{Base: base, Power: sf.Multiplicity})
		}
	}

	sortFactors(factors)

	return lead, factors, nil
}

// FactoredString renders p in fully factored form, e.g.
// "(λ - 2)*(λ - 1)" or "3*(λ + 1)*(λ^2 + 1)".
// Single-factor full-degree results render without parentheses.
func FactoredString(p Poly) (string, error) {
	lead, factors, err := Factorize(p)
	if err != nil {
		return "", err
	}
	if len(factors) == 0 {
		return lead.RatString(), nil
	}
	// A single factor to the first power is just the polynomial itself.
	if len(factors) == 1 && factors[0].Power == 1 && lead.Cmp(ratOne) == 0 {
		return factors[0].Base.String(), nil
	}

	var b strings.Builder
	if lead.Cmp(ratOne) != 0 {
		b.WriteString(lead.RatString())
		b.WriteString("*")
	}
	for i, f := range factors {
		if i > 0 {
			b.WriteString("*")
		}
		// A single-term base (bare λ) needs no parentheses: λ^2, not (λ)^2.
		if isMonomial(f.Base) {
			b.WriteString(f.Base.String())
		} else {
			b.WriteString("(")
			b.WriteString(f.Base.String())
			b.WriteString(")")
		}
		if f.Power > 1 {
			b.WriteString("^")
			b.WriteString(strconv.Itoa(f.Power))
		}
	}

	return b.String(), nil
}

// isMonomial reports whether p has exactly one non-zero coefficient. Bases
// here are monic and square-free, so a monomial base is always the bare λ.
func isMonomial(p Poly) bool {
	nonZero := 0
	for _, c := range p.coeffs {
		if c.Sign() != 0 {
			nonZero++
		}
	}

	return nonZero == 1
}

// splitSquareFree breaks one monic square-free polynomial into monic
// irreducible-over-ℚ parts where recoverable.
func splitSquareFree(f Poly) ([]Poly, error) {
	var parts []Poly
	work := f

	// Stage 2: exact linear factors from verified rational roots.
	roots, err := solveSquareFree(work)
	if err != nil {
		return nil, err
	}
	for _, r := range roots {
		if r.Exact == nil {
			continue
		}
		linear := New(new(big.Rat).Neg(r.Exact), big.NewRat(1, 1)) // λ - r
		quo, rem, derr := work.Div(linear)
		if derr != nil || !rem.IsZero() {
			continue // a verified root always divides; this branch is unreachable
		}
		parts = append(parts, linear)
		work = quo
	}

	// Stage 3: rational quadratics from the remaining numeric roots.
	for work.Degree() >= 2 {
		quad := findRationalQuadratic(work)
		if quad.IsZero() {
			break
		}
		quo, rem, derr := work.Div(quad)
		if derr != nil || !rem.IsZero() {
			break
		}
		parts = append(parts, quad)
		work = quo
	}

	if work.Degree() >= 1 {
		parts = append(parts, work)
	}

	return parts, nil
}

// findRationalQuadratic proposes a monic rational quadratic divisor of f
// from its numeric roots: conjugate pairs yield λ² − 2aλ + (a²+b²), real
// pairs yield λ² − (r₁+r₂)λ + r₁r₂. Candidates are verified by exact
// division before being accepted. Returns the zero polynomial when no
// candidate divides exactly.
func findRationalQuadratic(f Poly) Poly {
	numeric := numericRoots(f)
	n := len(numeric)
	if n < 2 {
		return Poly{}
	}

	// Conjugate pairs first: they are the common case (rotation blocks).
	var i, j int
	for i = 0; i < n; i++ {
		if imag(numeric[i]) <= rootTolerance {
			continue
		}
		a, bb := real(numeric[i]), imag(numeric[i])
		if quad := verifiedQuadratic(f, 2*a, a*a+bb*bb); !quad.IsZero() {
			return quad
		}
	}

	// Real pairings (catches λ² − 2 style irrational twins).
	for i = 0; i < n; i++ {
		if math.Abs(imag(numeric[i])) > rootTolerance {
			continue
		}
		for j = i + 1; j < n; j++ {
			if math.Abs(imag(numeric[j])) > rootTolerance {
				continue
			}
			r1, r2 := real(numeric[i]), real(numeric[j])
			if quad := verifiedQuadratic(f, r1+r2, r1*r2); !quad.IsZero() {
				return quad
			}
		}
	}

	return Poly{}
}

// verifiedQuadratic rationalizes the candidate λ² − sumλ + prod and accepts
// it only on exact divisibility.
func verifiedQuadratic(f Poly, sum, prod float64) Poly {
	rs := reconstructRational(sum)
	rp := reconstructRational(prod)
	if rs == nil || rp == nil {
		return Poly{}
	}
	quad := New(rp, new(big.Rat).Neg(rs), big.NewRat(1, 1))
	if f.DividesExactly(quad) {
		return quad
	}

	return Poly{}
}

// numericRoots returns the numeric roots of a monic square-free polynomial,
// ignoring convergence failure (an empty slice just disables splitting).
func numericRoots(f Poly) []complex128 {
	switch f.Degree() {
	case 1:
		v, _ := f.Coeff(0).Float64()
		return []complex128{complex(-v, 0)}
	case 2:
		rs := solveQuadratic(f)
		out := make([]complex128, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.Value)
		}
		return out
	default:
		zs, err := durandKerner(f)
		if err != nil {
			return nil
		}
		return zs
	}
}

// sortFactors fixes the rendering order: by degree ascending, then by
// coefficient sequence from the constant term up.
func sortFactors(fs []Factor) {
	sort.SliceStable(fs, func(i, j int) bool {
		di, dj := fs[i].Base.Degree(), fs[j].Base.Degree()
		if di != dj {
			return di < dj
		}
		for d := 0; d <= di; d++ {
			if c := fs[i].Base.Coeff(d).Cmp(fs[j].Base.Coeff(d)); c != 0 {
				return c < 0
			}
		}

		return fs[i].Power < fs[j].Power
	})
}
