// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/splitting"
)

const (
	opOperator = "NewOperator"
	opApply    = "Operator.Apply"
)

// Operator is the fixed-point map x ↦ T·x + C of a stationary method.
// T and C depend only on (A, b, Method, w) and are built once per solve.
type Operator struct {
	T          *matrix.Dense // n×n iteration matrix
	C          []float64     // constant vector, len n
	Method     Method
	Relaxation float64 // w as used to build T and C (1 for Jacobi and GaussSeidel)
}

// NewOperator builds (T, C) from a splitting A = D − L − U and the right-hand side b.
//
//   - Jacobi:      T = D⁻¹(L+U),               C = D⁻¹b
//   - GaussSeidel: T = (D−L)⁻¹U,               C = (D−L)⁻¹b
//   - SOR:         T = (D−wL)⁻¹((1−w)D + wU),  C = w(D−wL)⁻¹b
//
// D is inverted elementwise; D−L and D−wL are lower triangular with A's diagonal
// and are inverted by forward substitution, so any zero diagonal entry of A is
// reported as ErrSingular. The relaxation factor w is ignored unless method == SOR.
//
// Errors:
//   - ErrInvalidMethod for a method outside {Jacobi, GaussSeidel, SOR}.
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrSingular (joined with matrix.ErrSingular) on a zero diagonal entry.
//
// Complexity: O(n³) time (one triangular inverse and one product), O(n²) memory.
func NewOperator(s splitting.Splitting, b []float64, method Method, w float64) (*Operator, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", opOperator, method, ErrInvalidMethod)
	}
	if s.D == nil || s.L == nil || s.U == nil {
		return nil, fmt.Errorf("%s: incomplete splitting: %w", opOperator, ErrDimensionMismatch)
	}
	if len(b) != s.Size() {
		return nil, fmt.Errorf("%s: len(b)=%d, n=%d: %w", opOperator, len(b), s.Size(), ErrDimensionMismatch)
	}

	var (
		op  *Operator
		err error
	)
	switch method {
	case Jacobi:
		op, err = jacobiOperator(s, b)
	case GaussSeidel:
		op, err = relaxedOperator(s, b, 1.0)
	case SOR:
		op, err = relaxedOperator(s, b, w)
	}
	if err != nil {
		return nil, operatorErrorf(err)
	}
	op.Method = method

	return op, nil
}

// jacobiOperator: T = D⁻¹(L+U), C = D⁻¹b.
func jacobiOperator(s splitting.Splitting, b []float64) (*Operator, error) {
	dInv, err := matrix.InverseDiagonal(s.D)
	if err != nil {
		return nil, err
	}
	lu, err := matrix.Add(s.L, s.U)
	if err != nil {
		return nil, err
	}
	T, err := matrix.Mul(dInv, lu)
	if err != nil {
		return nil, err
	}
	C, err := matrix.MatVec(dInv, b)
	if err != nil {
		return nil, err
	}

	return &Operator{T: T, C: C, Relaxation: 1.0}, nil
}

// relaxedOperator: T = (D−wL)⁻¹((1−w)D + wU), C = w(D−wL)⁻¹b.
// With w = 1 every scaling is exact, so the result is exactly the Gauss-Seidel
// operator (D−L)⁻¹U, (D−L)⁻¹b.
func relaxedOperator(s splitting.Splitting, b []float64, w float64) (*Operator, error) {
	wL, err := matrix.Scale(s.L, w)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Sub(s.D, wL) // D − wL, lower triangular
	if err != nil {
		return nil, err
	}
	mInv, err := matrix.InverseLowerTriangular(m)
	if err != nil {
		return nil, err
	}

	var n *matrix.Dense // (1−w)D + wU
	if w == 1.0 {
		n = s.U
	} else {
		scaledD, err := matrix.Scale(s.D, 1.0-w)
		if err != nil {
			return nil, err
		}
		wU, err := matrix.Scale(s.U, w)
		if err != nil {
			return nil, err
		}
		if n, err = matrix.Add(scaledD, wU); err != nil {
			return nil, err
		}
	}

	T, err := matrix.Mul(mInv, n)
	if err != nil {
		return nil, err
	}
	C, err := matrix.MatVec(mInv, b)
	if err != nil {
		return nil, err
	}
	if w != 1.0 {
		for i := range C {
			C[i] *= w
		}
	}

	return &Operator{T: T, C: C, Relaxation: w}, nil
}

// operatorErrorf maps kernel sentinels onto the package sentinels, keeping both.
func operatorErrorf(err error) error {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return fmt.Errorf("%s: %w: %w", opOperator, ErrSingular, err)
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%s: %w: %w", opOperator, ErrDimensionMismatch, err)
	default:
		return fmt.Errorf("%s: %w", opOperator, err)
	}
}

// Apply returns T·x + C as a fresh slice; x is not modified.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != n.
func (op *Operator) Apply(x []float64) ([]float64, error) {
	if len(x) != len(op.C) {
		return nil, fmt.Errorf("%s: len(x)=%d, n=%d: %w", opApply, len(x), len(op.C), ErrDimensionMismatch)
	}
	next, err := matrix.MatVec(op.T, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}
	for i, c := range op.C {
		next[i] += c
	}

	return next, nil
}
