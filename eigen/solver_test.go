package eigen_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheezcuits/EigenCalculator/eigen"
)

// requireRealValue asserts that a scalar is real and equals want.
func requireRealValue(t *testing.T, s eigen.Scalar, want float64) {
	t.Helper()
	v, ok := s.Real()
	require.True(t, ok, "expected a real scalar, got %s", s)
	require.InDelta(t, want, v, 1e-9)
}

func TestDecompose_Identity(t *testing.T) {
	res, err := eigen.Decompose([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Size)
	assert.Equal(t, 1.0, res.Determinant)
	assert.Equal(t, "λ^3 - 3*λ^2 + 3*λ - 1", res.CharPoly)
	assert.Equal(t, "(λ - 1)^3", res.FactoredPoly)

	require.Len(t, res.Entries, 1)
	entry := res.Entries[0]
	requireRealValue(t, entry.Value, 1)
	assert.Equal(t, 3, entry.Multiplicity)

	// The whole space is the eigenspace: standard basis in order.
	require.Len(t, entry.Basis, 3)
	for i, vec := range entry.Basis {
		require.Len(t, vec, 3)
		for j, c := range vec {
			if i == j {
				requireRealValue(t, c, 1)
			} else {
				requireRealValue(t, c, 0)
			}
		}
	}

	require.Len(t, res.Spectrum, 3)
}

func TestDecompose_RepeatedAndSimple(t *testing.T) {
	// diag(2,2,3): eigenvalue 2 twice, 3 once, ascending entry order.
	res, err := eigen.Decompose([][]float64{
		{2, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 12.0, res.Determinant)
	assert.Equal(t, "(λ - 3)*(λ - 2)^2", res.FactoredPoly)

	require.Len(t, res.Entries, 2)
	requireRealValue(t, res.Entries[0].Value, 2)
	assert.Equal(t, 2, res.Entries[0].Multiplicity)
	assert.Len(t, res.Entries[0].Basis, 2)
	requireRealValue(t, res.Entries[1].Value, 3)
	assert.Equal(t, 1, res.Entries[1].Multiplicity)
	assert.Len(t, res.Entries[1].Basis, 1)

	// Spectrum repeats per algebraic multiplicity: {2, 2, 3}.
	require.Len(t, res.Spectrum, 3)
	requireRealValue(t, res.Spectrum[0], 2)
	requireRealValue(t, res.Spectrum[1], 2)
	requireRealValue(t, res.Spectrum[2], 3)
}

func TestDecompose_RotationKeepsComplex(t *testing.T) {
	// The 90° rotation has eigenvalues ±i; they must stay complex, never
	// collapse to a float.
	res, err := eigen.Decompose([][]float64{
		{0, -1},
		{1, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Determinant)
	assert.Equal(t, "λ^2 + 1", res.CharPoly)
	require.Len(t, res.Entries, 2)

	for _, entry := range res.Entries {
		require.True(t, entry.IsComplex())
		_, ok := entry.Value.Real()
		require.False(t, ok)
		require.Len(t, entry.Basis, 1)
	}
	assert.Equal(t, "-i", res.Entries[0].Value.String())
	assert.Equal(t, "i", res.Entries[1].Value.String())

	// Eigenvector components for a real rotation are genuinely complex.
	basis := res.Entries[1].Basis[0] // eigenvector for +i
	sawComplex := false
	for _, c := range basis {
		if c.IsComplex() {
			sawComplex = true
		}
	}
	assert.True(t, sawComplex)
}

func TestDecompose_TinyConjugatePair(t *testing.T) {
	// Slow rotation with eigenvalues ±1e-5·i: the two conjugates must stay
	// distinct in the Result, with sign and magnitude intact.
	res, err := eigen.Decompose([][]float64{
		{0, -0.00001},
		{0.00001, 0},
	})
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	for _, entry := range res.Entries {
		require.True(t, entry.IsComplex())
	}
	assert.Equal(t, "-1e-05i", res.Entries[0].Value.String())
	assert.Equal(t, "1e-05i", res.Entries[1].Value.String())
	require.NotEqual(t, res.Entries[0].Value.String(), res.Entries[1].Value.String())
}

func TestDecompose_DefectiveShear(t *testing.T) {
	// [[1,1],[0,1]]: algebraic multiplicity 2, geometric multiplicity 1.
	res, err := eigen.Decompose([][]float64{
		{1, 1},
		{0, 1},
	})
	require.NoError(t, err)

	require.Len(t, res.Entries, 1)
	entry := res.Entries[0]
	requireRealValue(t, entry.Value, 1)
	assert.Equal(t, 2, entry.Multiplicity)
	require.Len(t, entry.Basis, 1)
	requireRealValue(t, entry.Basis[0][0], 1)
	requireRealValue(t, entry.Basis[0][1], 0)
}

func TestDecompose_ZeroMatrix(t *testing.T) {
	res, err := eigen.Decompose([][]float64{
		{0, 0},
		{0, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Determinant)
	assert.Equal(t, "λ^2", res.CharPoly)
	assert.Equal(t, "λ^2", res.FactoredPoly)
	require.Len(t, res.Entries, 1)
	entry := res.Entries[0]
	requireRealValue(t, entry.Value, 0)
	assert.Equal(t, 2, entry.Multiplicity)
	assert.Len(t, entry.Basis, 2)
}

func TestDecompose_FractionalEntries(t *testing.T) {
	// [[0.5, 0], [0, 0.25]]: decimal inputs are honored exactly, so the
	// eigenvalues come back as clean rationals.
	res, err := eigen.Decompose([][]float64{
		{0.5, 0},
		{0, 0.25},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.125, res.Determinant, 0)
	require.Len(t, res.Entries, 2)
	requireRealValue(t, res.Entries[0].Value, 0.25)
	requireRealValue(t, res.Entries[1].Value, 0.5)
}

func TestDecompose_IrrationalEigenvalues(t *testing.T) {
	// [[0,2],[1,0]]: eigenvalues ±√2, real but irrational.
	res, err := eigen.Decompose([][]float64{
		{0, 2},
		{1, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, "λ^2 - 2", res.CharPoly)
	require.Len(t, res.Entries, 2)
	requireRealValue(t, res.Entries[0].Value, -math.Sqrt2)
	requireRealValue(t, res.Entries[1].Value, math.Sqrt2)
	require.Len(t, res.Entries[0].Basis, 1)
	require.Len(t, res.Entries[1].Basis, 1)
}

func TestDecompose_DeterminantMatchesEigenvalueProduct(t *testing.T) {
	res, err := eigen.Decompose([][]float64{
		{2, 1, 0},
		{0, 3, 0},
		{0, 0, -1},
	})
	require.NoError(t, err)

	prod := 1.0
	for _, s := range res.Spectrum {
		v, ok := s.Real()
		require.True(t, ok)
		prod *= v
	}
	assert.InDelta(t, res.Determinant, prod, 1e-9)
}

func TestDecompose_Deterministic(t *testing.T) {
	rows := [][]float64{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 2},
	}
	first, err := eigen.Decompose(rows)
	require.NoError(t, err)
	second, err := eigen.Decompose(rows)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDecompose_Validation(t *testing.T) {
	// Ragged input.
	_, err := eigen.Decompose([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, eigen.ErrNonSquare)

	// Rectangular input.
	_, err = eigen.Decompose([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, eigen.ErrNonSquare)

	// Too small / too large.
	_, err = eigen.Decompose([][]float64{{1}})
	require.ErrorIs(t, err, eigen.ErrBadSize)
	six := make([][]float64, 6)
	for i := range six {
		six[i] = make([]float64, 6)
	}
	_, err = eigen.Decompose(six)
	require.ErrorIs(t, err, eigen.ErrBadSize)

	// Non-finite entries.
	_, err = eigen.Decompose([][]float64{{math.NaN(), 0}, {0, 1}})
	require.Error(t, err)
}

func TestResult_JSON(t *testing.T) {
	// Real eigenvalues serialize as numbers, complex ones as strings.
	res, err := eigen.Decompose([][]float64{{0, -1}, {1, 0}})
	require.NoError(t, err)
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"spectrum":["-i","i"]`)

	res, err = eigen.Decompose([][]float64{{2, 0}, {0, 3}})
	require.NoError(t, err)
	raw, err = json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"spectrum":[2,3]`)
	assert.Contains(t, string(raw), `"determinant":6`)
}
