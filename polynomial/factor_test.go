package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cheezcuits/EigenCalculator/polynomial"
)

func TestFactorize_Linear(t *testing.T) {
	// λ² - 3λ + 2 = (λ-2)(λ-1), factors ordered by constant term.
	p := polynomial.NewFromInt64(2, -3, 1)
	lead, factors, err := polynomial.Factorize(p)
	require.NoError(t, err)
	require.Equal(t, 0, lead.Cmp(big.NewRat(1, 1)))
	require.Len(t, factors, 2)
	require.True(t, factors[0].Base.Equal(polynomial.NewFromInt64(-2, 1)))
	require.True(t, factors[1].Base.Equal(polynomial.NewFromInt64(-1, 1)))

	// Factors multiply back to the input.
	prod := polynomial.NewFromInt64(1)
	for _, f := range factors {
		for k := 0; k < f.Power; k++ {
			prod = prod.Mul(f.Base)
		}
	}
	require.True(t, prod.Scale(lead).Equal(p))
}

func TestFactorize_NonMonicLead(t *testing.T) {
	// 2λ² - 2 = 2(λ-1)(λ+1): the lead coefficient is pulled out front.
	p := polynomial.NewFromInt64(-2, 0, 2)
	lead, factors, err := polynomial.Factorize(p)
	require.NoError(t, err)
	require.Equal(t, 0, lead.Cmp(big.NewRat(2, 1)))
	require.Len(t, factors, 2)
}

func TestFactoredString(t *testing.T) {
	tests := []struct {
		name string
		p    polynomial.Poly
		want string
	}{
		{
			"distinct linear",
			polynomial.NewFromInt64(2, -3, 1), // (λ-2)(λ-1)
			"(λ - 2)*(λ - 1)",
		},
		{
			"repeated root",
			polynomial.NewFromInt64(2, -3, 0, 1), // (λ-1)²(λ+2)
			"(λ - 1)^2*(λ + 2)",
		},
		{
			"irreducible quadratic stays whole",
			polynomial.NewFromInt64(1, 0, 1),
			"λ^2 + 1",
		},
		{
			"pure power",
			polynomial.NewFromInt64(0, 0, 1), // λ²
			"λ^2",
		},
		{
			"monomial beside a linear factor",
			polynomial.NewFromInt64(0, -3, 1), // λ(λ-3)
			"(λ - 3)*λ",
		},
		{
			"mixed linear and quadratic",
			polynomial.NewFromInt64(-1, 1).Mul(polynomial.NewFromInt64(1, 0, 1)),
			"(λ - 1)*(λ^2 + 1)",
		},
		{
			"triple identity root",
			polynomial.NewFromInt64(-1, 3, -3, 1), // (λ-1)³
			"(λ - 1)^3",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := polynomial.FactoredString(tc.p)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFactoredString_IrrationalQuadratic(t *testing.T) {
	// λ² - 2 has no rational roots and is already irreducible over ℚ: the
	// factored form is the polynomial itself.
	got, err := polynomial.FactoredString(polynomial.NewFromInt64(-2, 0, 1))
	require.NoError(t, err)
	require.Equal(t, "λ^2 - 2", got)
}

func TestFactorize_Degenerate(t *testing.T) {
	_, _, err := polynomial.Factorize(polynomial.Zero())
	require.ErrorIs(t, err, polynomial.ErrZeroPolynomial)

	// Constants factor into a bare lead.
	lead, factors, err := polynomial.Factorize(polynomial.NewFromInt64(3))
	require.NoError(t, err)
	require.Empty(t, factors)
	require.Equal(t, "3", lead.RatString())
}
