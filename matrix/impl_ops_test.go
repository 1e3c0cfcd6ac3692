// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cheezcuits/EigenCalculator/matrix"
)

// mustFromInts builds a Dense from int64 rows; helper for test fixtures.
func mustFromInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	rats := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rats[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rats[i][j] = big.NewRat(v, 1)
		}
	}
	m, err := matrix.FromRats(rats)
	require.NoError(t, err)

	return m
}

// requireEntry asserts an exact entry value.
func requireEntry(t *testing.T, m *matrix.Dense, row, col int, want *big.Rat) {
	t.Helper()
	got, err := m.At(row, col)
	require.NoError(t, err)
	require.Equal(t, 0, got.Cmp(want), "entry (%d,%d): got %s want %s", row, col, got, want)
}

func TestMul(t *testing.T) {
	a := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	b := mustFromInts(t, [][]int64{{5, 6}, {7, 8}})

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireEntry(t, prod, 0, 0, big.NewRat(19, 1))
	requireEntry(t, prod, 0, 1, big.NewRat(22, 1))
	requireEntry(t, prod, 1, 0, big.NewRat(43, 1))
	requireEntry(t, prod, 1, 1, big.NewRat(50, 1))

	// Multiplying by the identity is a no-op.
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	same, err := matrix.Mul(a, id)
	require.NoError(t, err)
	requireEntry(t, same, 1, 0, big.NewRat(3, 1))
}

func TestMul_Errors(t *testing.T) {
	a := mustFromInts(t, [][]int64{{1, 2}})         // 1×2
	b := mustFromInts(t, [][]int64{{1, 2}, {3, 4}}) // 2×2

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)

	_, err = matrix.Mul(b, a) // inner dimensions 2 vs 1
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTrace(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 9}, {9, 4}})
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 0, tr.Cmp(big.NewRat(5, 1)))

	rect := mustFromInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	_, err = matrix.Trace(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestShiftDiagonal(t *testing.T) {
	m := mustFromInts(t, [][]int64{{2, 1}, {0, 3}})
	shifted, err := matrix.ShiftDiagonal(m, big.NewRat(2, 1))
	require.NoError(t, err)
	requireEntry(t, shifted, 0, 0, new(big.Rat)) // 2 - 2
	requireEntry(t, shifted, 0, 1, big.NewRat(1, 1))
	requireEntry(t, shifted, 1, 1, big.NewRat(1, 1)) // 3 - 2

	// The input is untouched.
	requireEntry(t, m, 0, 0, big.NewRat(2, 1))

	_, err = matrix.ShiftDiagonal(m, nil)
	require.Error(t, err)
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want *big.Rat
	}{
		{"2x2", [][]int64{{1, 2}, {3, 4}}, big.NewRat(-2, 1)},
		{"singular", [][]int64{{1, 2}, {2, 4}}, new(big.Rat)},
		{"identity 3x3", [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, big.NewRat(1, 1)},
		{"needs pivot swap", [][]int64{{0, 1}, {1, 0}}, big.NewRat(-1, 1)},
		{
			"4x4 block",
			[][]int64{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 0, -1}, {0, 0, 1, 0}},
			big.NewRat(6, 1),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustFromInts(t, tc.rows)
			det, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.Equal(t, 0, det.Cmp(tc.want), "got %s want %s", det, tc.want)

			// The input survives elimination untouched.
			requireEntry(t, m, 0, 0, big.NewRat(tc.rows[0][0], 1))
		})
	}
}

func TestDeterminant_ExactFractions(t *testing.T) {
	// [[1/10, 0], [0, 10]] has determinant exactly 1.
	m, err := matrix.FromFloats([][]float64{{0.1, 0}, {0, 10}})
	require.NoError(t, err)
	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 0, det.Cmp(big.NewRat(1, 1)))
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustFromInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	_, err = matrix.Determinant(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
