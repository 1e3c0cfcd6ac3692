package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatrix(t *testing.T) {
	rows, err := parseMatrix("2,0;0,3")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, 3}}, rows)

	// Whitespace around entries is tolerated.
	rows, err = parseMatrix(" 1 , -0.5 ; 0.25 , 4 ")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, -0.5}, {0.25, 4}}, rows)

	// Malformed entries name their position.
	_, err = parseMatrix("1,2;x,4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2, entry 1")
}

func TestParseMatrix_ShapeIsNotChecked(t *testing.T) {
	// Ragged input parses; shape validation belongs to eigen.Decompose.
	rows, err := parseMatrix("1,2;3")
	require.NoError(t, err)
	require.Len(t, rows[0], 2)
	require.Len(t, rows[1], 1)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "6", formatFloat(6))
	assert.Equal(t, "0.125", formatFloat(0.125))
	assert.Equal(t, "-2.5", formatFloat(-2.5))
}
