// SPDX-License-Identifier: MIT

package splitting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

const (
	opSplit     = "Split"
	opRecompose = "Recompose"
)

// Splitting holds the three factors of A = D − L − U.
//   - D: diagonal of A, zeros elsewhere.
//   - L: −A strictly below the diagonal, zeros elsewhere.
//   - U: −A strictly above the diagonal, zeros elsewhere.
type Splitting struct {
	D, L, U *matrix.Dense
}

// Size returns n for an n×n splitting.
func (s Splitting) Size() int { return s.D.Rows() }

// Split decomposes the square matrix a into D, L and U.
//
// Implementation:
//   - Stage 1: validate a is non-nil and square.
//   - Stage 2: single i→j pass routing each a[i,j] to D (i==j), L (i>j) or U (i<j).
//
// Errors:
//   - ErrNilMatrix (joined with matrix.ErrNilMatrix) for nil input.
//   - ErrDimensionMismatch (joined with matrix.ErrDimensionMismatch) for non-square input.
//
// Complexity: O(n²).
func Split(a matrix.Matrix) (Splitting, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return Splitting{}, fmt.Errorf("%s: %w: %w", opSplit, ErrNilMatrix, err)
		}
		return Splitting{}, fmt.Errorf("%s: %dx%d: %w: %w", opSplit, a.Rows(), a.Cols(), ErrDimensionMismatch, err)
	}

	n := a.Rows()
	D, err := matrix.NewDense(n, n)
	if err != nil {
		return Splitting{}, fmt.Errorf("%s: %w", opSplit, err)
	}
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return Splitting{}, fmt.Errorf("%s: %w", opSplit, err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return Splitting{}, fmt.Errorf("%s: %w", opSplit, err)
	}

	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return Splitting{}, fmt.Errorf("%s: %w", opSplit, err)
			}
			switch {
			case i == j:
				err = D.Set(i, j, v)
			case i > j:
				err = L.Set(i, j, -v)
			default:
				err = U.Set(i, j, -v)
			}
			if err != nil {
				return Splitting{}, fmt.Errorf("%s: %w", opSplit, err)
			}
		}
	}

	return Splitting{D: D, L: L, U: U}, nil
}

// Recompose returns D − L − U, which reproduces the split matrix exactly.
func (s Splitting) Recompose() (*matrix.Dense, error) {
	dl, err := matrix.Sub(s.D, s.L)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRecompose, err)
	}
	a, err := matrix.Sub(dl, s.U)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRecompose, err)
	}

	return a, nil
}
