// Package polynomial: exact GCD and Yun square-free decomposition.
// These two kernels carry the multiplicity structure of characteristic
// polynomials, so repeated eigenvalues are identified exactly instead of
// by numeric clustering.

package polynomial

// SquareFreeFactor is one component of a square-free decomposition:
// Factor^Multiplicity divides the input, and Factor itself has no
// repeated roots.
type SquareFreeFactor struct {
	Factor       Poly
	Multiplicity int
}

// GCD returns the monic greatest common divisor of p and q via the
// Euclidean algorithm over ℚ, with monic normalization at every step to
// keep coefficient growth bounded.
//
// Stage 1 (Degenerate): gcd(0, q) = monic q; gcd(p, 0) = monic p;
// gcd(0, 0) = 0.
// Stage 2 (Iterate): (p, q) ← (q, p mod q) until the remainder vanishes.
// Stage 3 (Finalize): return the monic survivor.
//
// Determinism: fixed iteration order, exact arithmetic.
// Complexity: O(deg² ) rational operations for the degrees in play.
func GCD(p, q Poly) Poly {
	a, b := p, q
	for !b.IsZero() {
		_, rem, err := a.Div(b)
		if err != nil {
			// b non-zero by loop condition; Div cannot fail here.
			return Poly{}
		}
		a = b
		b = rem
		if !b.IsZero() {
			b, _ = b.Monic()
		}
	}
	if a.IsZero() {
		return Poly{}
	}
	monic, _ := a.Monic()

	return monic
}

// SquareFree decomposes p into square-free factors via Yun's algorithm:
// p = lead(p) · Π Factorᵢ^Multiplicityᵢ with each Factorᵢ monic and
// square-free, multiplicities strictly increasing.
//
// Stage 1 (Validate): the zero polynomial is rejected; constants decompose
// into nothing.
// Stage 2 (Yun): a₀ = gcd(f, f′); b = f/a₀; d = f′/a₀ − b′; then repeatedly
// split aᵢ = gcd(b, d) off until b is constant.
//
// Errors: ErrZeroPolynomial.
// Determinism: exact arithmetic, fixed iteration order.
func SquareFree(p Poly) ([]SquareFreeFactor, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	f, err := p.Monic()
	if err != nil {
		return nil, err
	}
	if f.Degree() == 0 {
		return nil, nil
	}

	deriv := f.Derivative()
	a := GCD(f, deriv)
	if a.Degree() == 0 {
		// Already square-free: single factor with multiplicity 1.
		return []SquareFreeFactor{{Factor: f, Multiplicity: 1}}, nil
	}

	b, _, err := f.Div(a)
	if err != nil {
		return nil, err
	}
	c, _, err := deriv.Div(a)
	if err != nil {
		return nil, err
	}
	d := c.Sub(b.Derivative())

	var out []SquareFreeFactor
	mult := 1
	for b.Degree() > 0 {
		ai := GCD(b, d)
		if ai.Degree() > 0 {
			monic, merr := ai.Monic()
			if merr != nil {
				return nil, merr
			}
			out = append(out, SquareFreeFactor{Factor: monic, Multiplicity: mult})
		}
		b, _, err = b.Div(ai)
		if err != nil {
			return nil, err
		}
		c, _, err = d.Div(ai)
		if err != nil {
			return nil, err
		}
		d = c.Sub(b.Derivative())
		mult++
	}

	return out, nil
}
