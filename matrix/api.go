// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented constructors and converters around Dense.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - NewFromRows is the natural bridge from YAML/JSON [][]float64 payloads.
//   - Diagonal feeds ValidateNonZeroDiagonal, the O(n) pre-check of the iterative solvers.

package matrix

import "fmt"

const (
	opFromRows = "NewFromRows"
	opToRows   = "ToRows"
	opDiagonal = "Diagonal"
)

// NewFromRows builds a *Dense from a row-major [][]float64 (deep copy).
// All rows must be non-empty and of equal length.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, cellErrorf(opDiagonal, ctxAt, i, i, err)
		}
	}

	return out, nil
}

// ToRows exports m as a freshly allocated [][]float64 (row-major).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, cellErrorf(opToRows, ctxAt, i, j, err)
			}
		}
	}

	return out, nil
}
