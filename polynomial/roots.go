// Package polynomial: root extraction for small exact polynomials.
//
// Strategy (exactness first, numerics second):
//  1. Yun square-free decomposition carries the exact multiplicity of every
//     root, so the numeric stages only ever see simple roots.
//  2. Each square-free factor is solved by closed form (degree ≤ 2) or by
//     deterministic Durand–Kerner iteration (degree 3..5).
//  3. Real numeric roots are refined back to exact rationals via
//     continued-fraction reconstruction and verified by exact evaluation;
//     verification failure simply leaves the root numeric.
//  4. Complex roots of real polynomials are symmetrized into exact
//     conjugate pairs before being reported.

package polynomial

import (
	"math"
	"math/big"
	"math/cmplx"
	"sort"
)

// Numeric policy for the root iteration and classification.
const (
	// rootTolerance is the convergence/classification threshold: an
	// imaginary part below it is treated as zero.
	rootTolerance = 1e-9

	// durandKernerMaxIter caps the simultaneous iteration. Square-free
	// inputs of degree ≤ 5 converge in far fewer sweeps.
	durandKernerMaxIter = 500

	// durandKernerStep is the convergence threshold on the largest
	// per-root update of one sweep.
	durandKernerStep = 1e-13

	// reconstructMaxDenominator bounds continued-fraction reconstruction;
	// beyond it a float64 cannot pin the rational down reliably anyway.
	reconstructMaxDenominator = 1 << 26
)

// Root is one distinct root of a polynomial.
// Exact is non-nil only when the root was verified rational by exact
// evaluation; Value is always populated (from Exact when available).
type Root struct {
	Value        complex128
	Exact        *big.Rat
	Multiplicity int
}

// IsReal reports whether the root lies on the real axis (exactly for
// rational roots, within rootTolerance otherwise).
func (r Root) IsReal() bool {
	if r.Exact != nil {
		return true
	}

	return math.Abs(imag(r.Value)) <= rootTolerance
}

// Roots returns the distinct roots of p with exact algebraic multiplicities,
// in the canonical order: exact rational roots ascending, then real
// irrational roots ascending, then complex roots by (real, imaginary) part.
// The multiplicities sum to deg p.
//
// Errors:
//   - ErrZeroPolynomial     (p is the zero polynomial).
//   - ErrConstantPolynomial (deg p == 0).
//   - ErrRootsFailed        (numeric iteration did not converge).
func (p Poly) Roots() ([]Root, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	if p.Degree() == 0 {
		return nil, ErrConstantPolynomial
	}

	factors, err := SquareFree(p)
	if err != nil {
		return nil, err
	}

	var out []Root
	for _, sf := range factors {
		roots, ferr := solveSquareFree(sf.Factor)
		if ferr != nil {
			return nil, ferr
		}
		for _, r := range roots {
			r.Multiplicity = sf.Multiplicity
			out = append(out, r)
		}
	}

	sortRoots(out)

	return out, nil
}

// solveSquareFree finds all (simple) roots of a monic square-free factor.
func solveSquareFree(f Poly) ([]Root, error) {
	var out []Root

	// Exact rational roots first: strip λ^k, then refine numeric candidates.
	work := f
	if work.Coeff(0).Sign() == 0 {
		// Square-free ⇒ λ divides exactly once.
		out = append(out, Root{Value: 0, Exact: new(big.Rat)})
		var err error
		work, _, err = work.Div(NewFromInt64(0, 1)) // divide by λ
		if err != nil {
			return nil, err
		}
	}

	switch work.Degree() {
	case 0:
		return out, nil
	case 1:
		// λ + c ⇒ root is exactly -c (work is monic).
		r := new(big.Rat).Neg(work.Coeff(0))
		v, _ := r.Float64()
		out = append(out, Root{Value: complex(v, 0), Exact: r})

		return out, nil
	case 2:
		out = append(out, solveQuadratic(work)...)

		return out, nil
	default:
		numeric, err := durandKerner(work)
		if err != nil {
			return nil, err
		}
		out = append(out, classify(work, numeric)...)

		return out, nil
	}
}

// solveQuadratic solves a monic square-free quadratic λ² + bλ + c in closed
// form. A non-negative discriminant yields two real roots (refined to exact
// rationals when possible); a negative one yields an exact conjugate pair.
func solveQuadratic(f Poly) []Root {
	b, _ := f.Coeff(1).Float64()
	c, _ := f.Coeff(0).Float64()
	disc := b*b - 4*c
	if disc >= 0 {
		sq := math.Sqrt(disc)
		// Stable split: compute the larger-magnitude root first.
		var r1 float64
		if b >= 0 {
			r1 = (-b - sq) / 2
		} else {
			r1 = (-b + sq) / 2
		}
		var r2 float64
		if r1 != 0 {
			r2 = c / r1 // product of the roots equals c for a monic quadratic
		} else {
			r2 = -b - r1
		}

		return classify(f, []complex128{complex(r1, 0), complex(r2, 0)})
	}
	re := -b / 2
	im := math.Sqrt(-disc) / 2

	return []Root{
		{Value: complex(re, -im)},
		{Value: complex(re, im)},
	}
}

// durandKerner runs the simultaneous (Weierstrass) iteration on a monic
// square-free polynomial. Deterministic: fixed initial configuration, fixed
// update order, fixed convergence rule.
func durandKerner(f Poly) ([]complex128, error) {
	n := f.Degree()

	// Initial guesses on a spiral that is neither real nor symmetric, the
	// standard (0.4+0.9i)^k configuration.
	seed := complex(0.4, 0.9)
	zs := make([]complex128, n)
	zs[0] = seed
	for k := 1; k < n; k++ {
		zs[k] = zs[k-1] * seed
	}

	var i, j, iter int
	var num, den, delta complex128
	var step float64
	for iter = 0; iter < durandKernerMaxIter; iter++ {
		step = 0
		for i = 0; i < n; i++ {
			num = f.EvalComplex(zs[i])
			den = complex(1, 0)
			for j = 0; j < n; j++ {
				if j != i {
					den *= zs[i] - zs[j]
				}
			}
			if den == 0 {
				// Perturb deterministically to break the collision.
				zs[i] += complex(rootTolerance, rootTolerance)
				continue
			}
			delta = num / den
			zs[i] -= delta
			if d := cmplx.Abs(delta); d > step {
				step = d
			}
		}
		if step < durandKernerStep {
			return zs, nil
		}
	}
	// Accept a slightly looser convergence before failing outright.
	if step < rootTolerance {
		return zs, nil
	}

	return nil, ErrRootsFailed
}

// classify post-processes numeric roots of a real monic polynomial:
// near-real roots are refined to exact rationals when verification succeeds,
// and genuinely complex roots are symmetrized into conjugate pairs.
func classify(f Poly, numeric []complex128) []Root {
	var out []Root
	used := make([]bool, len(numeric))

	var i, j int
	for i = 0; i < len(numeric); i++ {
		if used[i] {
			continue
		}
		z := numeric[i]
		if math.Abs(imag(z)) <= rootTolerance {
			re := real(z)
			if exact := reconstructRational(re); exact != nil && f.EvalRat(exact).Sign() == 0 {
				v, _ := exact.Float64()
				out = append(out, Root{Value: complex(v, 0), Exact: exact})
			} else {
				out = append(out, Root{Value: complex(re, 0)})
			}
			used[i] = true
			continue
		}

		// Pair z with its closest conjugate partner and symmetrize.
		best := -1
		bestDist := math.Inf(1)
		for j = i + 1; j < len(numeric); j++ {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(numeric[j] - cmplx.Conj(z)); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 {
			// No partner left; report as-is (should not happen for real input).
			out = append(out, Root{Value: z})
			used[i] = true
			continue
		}
		partner := numeric[best]
		re := (real(z) + real(partner)) / 2
		im := (math.Abs(imag(z)) + math.Abs(imag(partner))) / 2
		out = append(out, Root{Value: complex(re, -im)})
		out = append(out, Root{Value: complex(re, im)})
		used[i], used[best] = true, true
	}

	return out
}

// reconstructRational recovers the rational p/q best explaining v via the
// continued-fraction expansion, bounded by reconstructMaxDenominator.
// Returns nil when v is not finite or no convergent reproduces v closely;
// callers must still verify the candidate exactly.
func reconstructRational(v float64) *big.Rat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	// Continued-fraction convergents: h-2/h-1 bookkeeping in int64 space.
	var (
		h0, h1 = int64(0), int64(1) // numerators
		k0, k1 = int64(1), int64(0) // denominators
		x      = v
	)
	for iter := 0; iter < 64; iter++ {
		a := math.Floor(x)
		if a > math.MaxInt32 || a < math.MinInt32 {
			return nil
		}
		ai := int64(a)
		h2 := ai*h1 + h0
		k2 := ai*k1 + k0
		if k2 > reconstructMaxDenominator || k2 < 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2

		cand := float64(h1) / float64(k1)
		if math.Abs(cand-v) <= math.Abs(v)*1e-12+1e-12 {
			return big.NewRat(h1, k1)
		}
		frac := x - a
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 {
		return nil
	}
	if math.Abs(float64(h1)/float64(k1)-v) <= math.Abs(v)*1e-9+1e-9 {
		return big.NewRat(h1, k1)
	}

	return nil
}

// sortRoots orders roots canonically: exact rationals ascending, then real
// irrational ascending, then complex by (real, imaginary).
func sortRoots(rs []Root) {
	class := func(r Root) int {
		switch {
		case r.Exact != nil:
			return 0
		case r.IsReal():
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		ci, cj := class(rs[i]), class(rs[j])
		if ci != cj {
			return ci < cj
		}
		if ci == 0 {
			return rs[i].Exact.Cmp(rs[j].Exact) < 0
		}
		if real(rs[i].Value) != real(rs[j].Value) {
			return real(rs[i].Value) < real(rs[j].Value)
		}

		return imag(rs[i].Value) < imag(rs[j].Value)
	})
}
