// Package polynomial: core Poly type and exact arithmetic kernels.
// Poly is immutable: every operation allocates a fresh result and never
// mutates an operand. Coefficients are stored dense, ascending by degree,
// with the invariant that the leading coefficient is non-zero (the zero
// polynomial is represented by an empty coefficient slice).

package polynomial

import (
	"math/big"
	"strconv"
	"strings"
)

// DefaultVariable is the formal variable used by String().
const DefaultVariable = "λ"

// ratOne is a shared read-only constant; never mutate it.
var ratOne = big.NewRat(1, 1)

// Poly is a dense univariate polynomial over ℚ.
// coeffs[i] is the coefficient of degree i; leading coefficient is non-zero.
type Poly struct {
	coeffs []*big.Rat
}

// New builds a Poly from ascending-degree coefficients.
// Stage 1 (Copy): coefficients are deep-copied; nil entries are treated as zero.
// Stage 2 (Normalize): trailing zero coefficients are trimmed.
// Complexity: O(len(coeffs)).
func New(coeffs ...*big.Rat) Poly {
	cp := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			cp[i] = new(big.Rat)
		} else {
			cp[i] = new(big.Rat).Set(c)
		}
	}

	return Poly{coeffs: trim(cp)}
}

// NewFromInt64 builds a Poly from ascending-degree int64 coefficients.
// Convenience constructor for literals and tests.
func NewFromInt64(coeffs ...int64) Poly {
	cp := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		cp[i] = big.NewRat(c, 1)
	}

	return Poly{coeffs: trim(cp)}
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// trim drops trailing zero coefficients; the slice is owned by the caller.
func trim(cs []*big.Rat) []*big.Rat {
	n := len(cs)
	for n > 0 && cs[n-1].Sign() == 0 {
		n--
	}

	return cs[:n]
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.coeffs) == 0 }

// Degree returns the degree of p; the zero polynomial has degree -1.
func (p Poly) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns a copy of the coefficient of degree i.
// Degrees beyond Degree() (or negative) yield zero.
func (p Poly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.coeffs[i])
}

// Lead returns a copy of the leading coefficient (zero for the zero polynomial).
func (p Poly) Lead() *big.Rat { return p.Coeff(p.Degree()) }

// Equal reports exact coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + q.
// Complexity: O(max(deg p, deg q)).
func (p Poly) Add(q Poly) Poly { return p.addScaled(q, ratOne) }

// Sub returns p - q.
// Complexity: O(max(deg p, deg q)).
func (p Poly) Sub(q Poly) Poly {
	minusOne := big.NewRat(-1, 1)

	return p.addScaled(q, minusOne)
}

// addScaled computes p + s*q with a single fresh allocation.
func (p Poly) addScaled(q Poly, s *big.Rat) Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]*big.Rat, n)
	var term big.Rat // reusable temporary for s*q[i]
	for i := 0; i < n; i++ {
		out[i] = new(big.Rat)
		if i < len(p.coeffs) {
			out[i].Set(p.coeffs[i])
		}
		if i < len(q.coeffs) {
			term.Mul(s, q.coeffs[i])
			out[i].Add(out[i], &term)
		}
	}

	return Poly{coeffs: trim(out)}
}

// Mul returns the product p*q via the schoolbook convolution.
// Complexity: O(deg p · deg q) — degrees here never exceed 5.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	out := make([]*big.Rat, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	var term big.Rat
	for i, pc := range p.coeffs {
		if pc.Sign() == 0 {
			continue // skip zero for performance
		}
		for j, qc := range q.coeffs {
			term.Mul(pc, qc)
			out[i+j].Add(out[i+j], &term)
		}
	}

	return Poly{coeffs: trim(out)}
}

// Scale returns a*p.
func (p Poly) Scale(a *big.Rat) Poly {
	if a.Sign() == 0 {
		return Poly{}
	}
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Mul(c, a)
	}

	return Poly{coeffs: trim(out)}
}

// Monic returns p divided by its leading coefficient.
// Errors: ErrZeroPolynomial when p is zero.
func (p Poly) Monic() (Poly, error) {
	if p.IsZero() {
		return Poly{}, ErrZeroPolynomial
	}
	inv := new(big.Rat).Inv(p.coeffs[len(p.coeffs)-1])

	return p.Scale(inv), nil
}

// Derivative returns dp/dλ.
// Complexity: O(deg p).
func (p Poly) Derivative() Poly {
	if len(p.coeffs) <= 1 {
		return Poly{}
	}
	out := make([]*big.Rat, len(p.coeffs)-1)
	var k big.Rat
	for i := 1; i < len(p.coeffs); i++ {
		k.SetInt64(int64(i))
		out[i-1] = new(big.Rat).Mul(p.coeffs[i], &k)
	}

	return Poly{coeffs: trim(out)}
}

// Div performs exact Euclidean division p = q·quo + rem with deg rem < deg q.
// Stage 1 (Validate): q must be non-zero.
// Stage 2 (Execute): long division with exact rational arithmetic.
// Errors: ErrZeroPolynomial when q is zero.
// Complexity: O(deg p · deg q).
func (p Poly) Div(q Poly) (quo, rem Poly, err error) {
	if q.IsZero() {
		return Poly{}, Poly{}, ErrZeroPolynomial
	}
	if p.Degree() < q.Degree() {
		return Poly{}, New(p.coeffs...), nil
	}

	// Working copy of the dividend.
	work := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		work[i] = new(big.Rat).Set(c)
	}
	qd := q.Degree()
	leadInv := new(big.Rat).Inv(q.coeffs[qd])

	out := make([]*big.Rat, p.Degree()-qd+1)
	var factor, term big.Rat
	for d := p.Degree(); d >= qd; d-- {
		factor.Mul(work[d], leadInv) // coefficient of λ^(d-qd) in the quotient
		out[d-qd] = new(big.Rat).Set(&factor)
		if factor.Sign() == 0 {
			continue
		}
		// work -= factor * q shifted by (d-qd)
		for j := 0; j <= qd; j++ {
			term.Mul(&factor, q.coeffs[j])
			work[d-qd+j].Sub(work[d-qd+j], &term)
		}
	}

	return Poly{coeffs: trim(out)}, Poly{coeffs: trim(work[:qd])}, nil
}

// DividesExactly reports whether q divides p with zero remainder.
func (p Poly) DividesExactly(q Poly) bool {
	_, rem, err := p.Div(q)

	return err == nil && rem.IsZero()
}

// EvalRat evaluates p at a rational point using Horner's scheme; exact.
// Complexity: O(deg p).
func (p Poly) EvalRat(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeffs[i])
	}

	return acc
}

// EvalComplex evaluates p at a complex point using Horner's scheme.
// Coefficients are converted to float64 once per call; precision follows
// float64 semantics.
func (p Poly) EvalComplex(z complex128) complex128 {
	var acc complex128
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c, _ := p.coeffs[i].Float64()
		acc = acc*z + complex(c, 0)
	}

	return acc
}

// String renders p with the default formal variable (λ), descending powers.
func (p Poly) String() string { return p.Render(DefaultVariable) }

// Render produces the canonical textual form of p in the given variable:
// descending powers, "^" exponents, "*" between coefficient and variable,
// rationals as "a/b". The zero polynomial renders as "0".
// Determinism: purely positional; identical polynomials render identically.
func (p Poly) Render(variable string) string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	first := true
	var abs big.Rat
	for d := p.Degree(); d >= 0; d-- {
		c := p.coeffs[d]
		if c.Sign() == 0 {
			continue
		}
		// Sign / separator.
		if first {
			if c.Sign() < 0 {
				b.WriteString("-")
			}
			first = false
		} else if c.Sign() < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		abs.Abs(c)

		// Coefficient (omit a unit coefficient next to the variable).
		unit := abs.Cmp(ratOne) == 0
		switch {
		case d == 0:
			b.WriteString(abs.RatString())
		case unit:
			// bare variable term
		default:
			b.WriteString(abs.RatString())
			b.WriteString("*")
		}

		// Variable and power.
		if d >= 1 {
			b.WriteString(variable)
			if d > 1 {
				b.WriteString("^")
				b.WriteString(strconv.Itoa(d))
			}
		}
	}

	return b.String()
}
