// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Table is an explicit transition matrix over integer symbols:
// row i is the transmitted symbol, column j the received symbol and
// At(i, j) = P(j | i). Codewords are plain ints (row/column indices).
//
// Rows are not required to sum to 1: a received set may cover only part of
// the output alphabet. Entries must be finite and lie in [0,1].
type Table struct {
	m *mat.Dense
}

// NewTable copies rows into a validated Table.
//
// Errors:
//   - ErrBadShape       — no rows, an empty row, or ragged rows.
//   - ErrBadProbability — NaN, ±Inf or a value outside [0,1].
//
// Complexity: O(r·c).
func NewTable(rows [][]float64) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewTable: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewTable: row %d has %d cols, want %d: %w", i, len(row), c, ErrBadShape)
		}
		data = append(data, row...)
	}

	return tableFromData(r, c, data)
}

// TableFromDense wraps a copy of m as a Table after validating it.
func TableFromDense(m *mat.Dense) (*Table, error) {
	if m == nil || m.IsEmpty() {
		return nil, fmt.Errorf("TableFromDense: %w", ErrBadShape)
	}
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}

	return tableFromData(r, c, data)
}

// tableFromData validates a row-major buffer and takes ownership of it.
func tableFromData(r, c int, data []float64) (*Table, error) {
	for k, v := range data {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, fmt.Errorf("table(%d,%d)=%v: %w", k/c, k%c, v, ErrBadProbability)
		}
	}

	return &Table{m: mat.NewDense(r, c, data)}, nil
}

// Prob implements Provider[int]: P(received | transmitted) = At(transmitted, received).
// Symbols outside the table have probability 0.
func (t *Table) Prob(transmitted, received int) float64 {
	r, c := t.m.Dims()
	if transmitted < 0 || transmitted >= r || received < 0 || received >= c {
		return 0
	}

	return t.m.At(transmitted, received)
}

// Dims returns (transmitted alphabet size, received alphabet size).
func (t *Table) Dims() (int, int) {
	return t.m.Dims()
}

// Transmitted returns the transmitted symbols 0..r-1 in order.
func (t *Table) Transmitted() []int {
	r, _ := t.m.Dims()
	return Symbols(r)
}

// Received returns the received symbols 0..c-1 in order.
func (t *Table) Received() []int {
	_, c := t.m.Dims()
	return Symbols(c)
}

// Symbols returns the integer symbols 0..n-1.
func Symbols(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}
