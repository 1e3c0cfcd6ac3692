// SPDX-License-Identifier: MIT
// Package matrix: Dense is a concrete, row-major matrix of exact rational
// values, storing entries in a flat slice for locality and deterministic
// traversal. All accessors copy: a *big.Rat handed out or taken in is never
// shared with internal storage, which keeps Dense effectively immutable
// through the public API.

package matrix

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rational values.
// r is rows, c is columns, and data holds r*c entries in row-major order.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, entries non-nil
}

// NewDense creates an r×c Dense matrix initialized to exact zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice with fresh zero entries.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice; every entry gets its own zero value.
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromFloats builds an exact matrix from float64 input. Each entry is
// converted through its shortest round-tripping decimal representation, so
// the rational mirrors the number the user typed (0.1 ⇒ 1/10), not the
// binary float underneath.
//
// Stage 1 (Validate): non-empty, rectangular, all entries finite.
// Stage 2 (Convert): strconv.FormatFloat(v, 'f', -1, 64) → big.Rat.SetString.
// Stage 3 (Finalize): return the populated Dense.
//
// Errors: ErrBadShape (empty or ragged input), ErrNaNInf (non-finite entry).
// Complexity: O(r*c).
func FromFloats(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < len(rows); i++ {
		for j = 0; j < cols; j++ {
			v := rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("FromFloats", i, j, ErrNaNInf)
			}
			// Decimal-string route keeps user intent exact.
			if _, ok := m.data[i*cols+j].SetString(strconv.FormatFloat(v, 'f', -1, 64)); !ok {
				return nil, denseErrorf("FromFloats", i, j, ErrNaNInf)
			}
		}
	}

	return m, nil
}

// FromRats builds a Dense from a row-of-rows of rationals, copying every
// entry. Nil entries are treated as zero.
// Errors: ErrBadShape (empty or ragged input).
func FromRats(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if v != nil {
				m.data[i*cols+j].Set(v)
			}
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape (n <= 0).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): copy out of the data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf("At", row, col, err)
	}

	// Return a copy so callers cannot alias internal storage.
	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf; v must be non-nil.
// Stage 2 (Execute): copy into the data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilMatrix)
	}
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	// Assign a copy of the value
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice and copy every entry value-wise.
	copyData := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		copyData[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[")
		for j = 0; j < m.c; j++ { // iterate over columns
			b.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
