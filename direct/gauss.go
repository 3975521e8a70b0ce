// SPDX-License-Identifier: MIT

package direct

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

const (
	opNoPivot      = "NoPivot"
	opPartialPivot = "PartialPivot"
	opTotalPivot   = "TotalPivot"
	opSolve        = "Solve"
)

// Pivoting selects the elimination variant used by Solve.
type Pivoting int

const (
	// None eliminates in natural order.
	None Pivoting = iota
	// Partial swaps rows only.
	Partial
	// Total swaps rows and columns.
	Total
)

// String returns "none", "partial" or "total".
func (p Pivoting) String() string {
	switch p {
	case None:
		return "none"
	case Partial:
		return "partial"
	case Total:
		return "total"
	default:
		return fmt.Sprintf("Pivoting(%d)", int(p))
	}
}

// ParsePivoting accepts "none"/"no", "partial", "total"/"complete"/"full" (case-insensitive).
func ParsePivoting(s string) (Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "no", "":
		return None, nil
	case "partial":
		return Partial, nil
	case "total", "complete", "full":
		return Total, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPivoting, s)
	}
}

// system is the private working copy of [A|b].
type system struct {
	a [][]float64
	b []float64
	n int
}

// load validates the shapes and copies A and b.
func load(op string, a matrix.Matrix, b []float64) (*system, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrDimensionMismatch, err)
	}
	n := a.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("%s: len(b)=%d, n=%d: %w", op, len(b), n, ErrDimensionMismatch)
	}
	rows, err := matrix.ToRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	bb := make([]float64, n)
	copy(bb, b)

	return &system{a: rows, b: bb, n: n}, nil
}

// eliminate zeroes column i below the diagonal using row i as the pivot row.
func (s *system) eliminate(op string, i int) error {
	pivot := s.a[i][i]
	if pivot == matrix.ZeroPivot {
		return fmt.Errorf("%s: zero pivot at %d: %w", op, i, ErrSingular)
	}
	for j := i + 1; j < s.n; j++ {
		factor := s.a[j][i] / pivot
		if factor == 0 {
			continue
		}
		for k := i; k < s.n; k++ {
			s.a[j][k] -= factor * s.a[i][k]
		}
		s.b[j] -= factor * s.b[i]
	}

	return nil
}

// backSubstitute solves the upper-triangular system left by elimination.
func (s *system) backSubstitute(op string) ([]float64, error) {
	x := make([]float64, s.n)
	var sum float64
	for i := s.n - 1; i >= 0; i-- {
		if s.a[i][i] == matrix.ZeroPivot {
			return nil, fmt.Errorf("%s: zero pivot at %d: %w", op, i, ErrSingular)
		}
		sum = matrix.ZeroSum
		for k := i + 1; k < s.n; k++ {
			sum += s.a[i][k] * x[k]
		}
		x[i] = (s.b[i] - sum) / s.a[i][i]
	}

	return x, nil
}

// forwardSubstitute overwrites b with y solving L y = b, L unit lower-triangular.
func (s *system) forwardSubstitute(op string, L matrix.Matrix) error {
	var sum, l float64
	var err error
	for i := 1; i < s.n; i++ {
		sum = matrix.ZeroSum
		for k := 0; k < i; k++ {
			if l, err = L.At(i, k); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			sum += l * s.b[k]
		}
		s.b[i] -= sum
	}

	return nil
}

func (s *system) swapRows(i, j int) {
	if i == j {
		return
	}
	s.a[i], s.a[j] = s.a[j], s.a[i]
	s.b[i], s.b[j] = s.b[j], s.b[i]
}

func (s *system) swapCols(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < s.n; r++ {
		s.a[r][i], s.a[r][j] = s.a[r][j], s.a[r][i]
	}
}

// NoPivot solves A x = b through the Doolittle factorization A = L*U
// (matrix.LU), then L y = b forward and U x = y backward.
// A zero pivot yields ErrSingular even when A is non-singular
// (e.g. [[0,1],[1,0]]); use PartialPivot for such inputs.
func NoPivot(a matrix.Matrix, b []float64) ([]float64, error) {
	s, err := load(opNoPivot, a, b)
	if err != nil {
		return nil, err
	}
	L, U, err := matrix.LU(a)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%s: %w: %w", opNoPivot, ErrSingular, err)
		}
		return nil, fmt.Errorf("%s: %w", opNoPivot, err)
	}
	if err = s.forwardSubstitute(opNoPivot, L); err != nil {
		return nil, err
	}
	if s.a, err = matrix.ToRows(U); err != nil {
		return nil, fmt.Errorf("%s: %w", opNoPivot, err)
	}

	return s.backSubstitute(opNoPivot)
}

// PartialPivot solves A x = b by Gaussian elimination with row pivoting:
// column i is eliminated with the row j ≥ i maximizing |A[j,i]| (first wins on ties).
func PartialPivot(a matrix.Matrix, b []float64) ([]float64, error) {
	s, err := load(opPartialPivot, a, b)
	if err != nil {
		return nil, err
	}
	for i := 0; i < s.n; i++ {
		pivotRow := i
		for j := i + 1; j < s.n; j++ {
			if math.Abs(s.a[j][i]) > math.Abs(s.a[pivotRow][i]) {
				pivotRow = j
			}
		}
		s.swapRows(i, pivotRow)
		if err = s.eliminate(opPartialPivot, i); err != nil {
			return nil, err
		}
	}

	return s.backSubstitute(opPartialPivot)
}

// TotalPivot solves A x = b by Gaussian elimination with row and column pivoting:
// step i moves the largest |A[r,c]| of the trailing block (r, c ≥ i, row-major scan,
// first wins on ties) to position (i, i).
//
// Returns the solution in the ORIGINAL variable order and the column permutation
// perm, where eliminated column i holds original variable perm[i].
func TotalPivot(a matrix.Matrix, b []float64) ([]float64, []int, error) {
	s, err := load(opTotalPivot, a, b)
	if err != nil {
		return nil, nil, err
	}
	perm := make([]int, s.n)
	for i := range perm {
		perm[i] = i
	}

	for i := 0; i < s.n; i++ {
		pivotRow, pivotCol := i, i
		best := math.Abs(s.a[i][i])
		for r := i; r < s.n; r++ {
			for c := i; c < s.n; c++ {
				if v := math.Abs(s.a[r][c]); v > best {
					best, pivotRow, pivotCol = v, r, c
				}
			}
		}
		s.swapRows(i, pivotRow)
		if pivotCol != i {
			s.swapCols(i, pivotCol)
			perm[i], perm[pivotCol] = perm[pivotCol], perm[i]
		}
		if err = s.eliminate(opTotalPivot, i); err != nil {
			return nil, nil, err
		}
	}

	y, err := s.backSubstitute(opTotalPivot)
	if err != nil {
		return nil, nil, err
	}
	x := make([]float64, s.n)
	for i, v := range y {
		x[perm[i]] = v
	}

	return x, perm, nil
}

// Solve dispatches to NoPivot, PartialPivot or TotalPivot.
func Solve(a matrix.Matrix, b []float64, p Pivoting) ([]float64, error) {
	switch p {
	case None:
		return NoPivot(a, b)
	case Partial:
		return PartialPivot(a, b)
	case Total:
		x, _, err := TotalPivot(a, b)
		return x, err
	default:
		return nil, fmt.Errorf("%s: %v: %w", opSolve, p, ErrInvalidPivoting)
	}
}
