// SPDX-License-Identifier: MIT
package iterative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/splitting"
)

func mustSplit(t *testing.T, rows [][]float64) splitting.Splitting {
	t.Helper()
	s, err := splitting.Split(mustMatrix(t, rows))
	require.NoError(t, err)

	return s
}

func TestNewOperator_Jacobi(t *testing.T) {
	op, err := iterative.NewOperator(mustSplit(t, scenarioA.a), scenarioA.b, iterative.Jacobi, 0)
	require.NoError(t, err)

	T, err := matrix.ToRows(op.T)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, -0.25}, T[0], 1e-15)
	assert.InDeltaSlice(t, []float64{-2.0 / 3.0, 0}, T[1], 1e-15)
	assert.InDeltaSlice(t, []float64{0.25, 2.0 / 3.0}, op.C, 1e-15)
	assert.Equal(t, 1.0, op.Relaxation, "w is ignored by Jacobi")
}

func TestNewOperator_GaussSeidel(t *testing.T) {
	// (D−L)⁻¹ = [[1/4, 0], [-1/6, 1/3]], U = [[0,-1],[0,0]].
	op, err := iterative.NewOperator(mustSplit(t, scenarioA.a), scenarioA.b, iterative.GaussSeidel, 1.7)
	require.NoError(t, err)

	T, err := matrix.ToRows(op.T)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, -0.25}, T[0], 1e-15)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 6.0}, T[1], 1e-15)
	assert.InDeltaSlice(t, []float64{0.25, 0.5}, op.C, 1e-15)
	assert.Equal(t, 1.0, op.Relaxation, "w is ignored by Gauss-Seidel")
}

// TestOperator_FixedPoint checks x* == T·x* + C for every method, with x*
// taken from an independent LU solve.
func TestOperator_FixedPoint(t *testing.T) {
	cases := []struct {
		method iterative.Method
		w      float64
	}{
		{iterative.Jacobi, 1},
		{iterative.GaussSeidel, 1},
		{iterative.SOR, 1},
		{iterative.SOR, 0.6},
		{iterative.SOR, 1.25},
		{iterative.SOR, 1.9},
	}
	for _, sys := range []system{scenarioA, scenarioB, dominant4} {
		xStar := gonumSolve(t, sys.a, sys.b)
		s := mustSplit(t, sys.a)
		for _, tc := range cases {
			op, err := iterative.NewOperator(s, sys.b, tc.method, tc.w)
			require.NoError(t, err)
			got, err := op.Apply(xStar)
			require.NoError(t, err)
			assert.InDeltaSlicef(t, xStar, got, 1e-12, "%s %v w=%g", sys.name, tc.method, tc.w)
		}
	}
}

func TestOperator_SORWithUnitRelaxationIsGaussSeidel(t *testing.T) {
	s := mustSplit(t, dominant4.a)
	gs, err := iterative.NewOperator(s, dominant4.b, iterative.GaussSeidel, 0)
	require.NoError(t, err)
	sor, err := iterative.NewOperator(s, dominant4.b, iterative.SOR, 1.0)
	require.NoError(t, err)

	gsT, _ := matrix.ToRows(gs.T)
	sorT, _ := matrix.ToRows(sor.T)
	assert.Equal(t, gsT, sorT)
	assert.Equal(t, gs.C, sor.C)
}

func TestNewOperator_Errors(t *testing.T) {
	s := mustSplit(t, scenarioA.a)

	_, err := iterative.NewOperator(s, scenarioA.b, iterative.Method(7), 1)
	assert.ErrorIs(t, err, iterative.ErrInvalidMethod)

	_, err = iterative.NewOperator(s, []float64{1}, iterative.Jacobi, 1)
	assert.ErrorIs(t, err, iterative.ErrDimensionMismatch)

	_, err = iterative.NewOperator(splitting.Splitting{}, nil, iterative.Jacobi, 1)
	assert.ErrorIs(t, err, iterative.ErrDimensionMismatch)

	singular := mustSplit(t, [][]float64{{0, 1}, {1, 0}})
	for _, m := range []iterative.Method{iterative.Jacobi, iterative.GaussSeidel, iterative.SOR} {
		_, err = iterative.NewOperator(singular, []float64{1, 1}, m, 1.5)
		assert.ErrorIs(t, err, iterative.ErrSingular, m.String())
		assert.ErrorIs(t, err, matrix.ErrSingular, m.String())
	}
}

func TestOperator_Apply(t *testing.T) {
	op, err := iterative.NewOperator(mustSplit(t, scenarioA.a), scenarioA.b, iterative.Jacobi, 1)
	require.NoError(t, err)

	x := []float64{0, 0}
	next, err := op.Apply(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, op.C, next, 0)
	assert.Equal(t, []float64{0, 0}, x, "Apply must not modify its input")

	_, err = op.Apply([]float64{1, 2, 3})
	assert.ErrorIs(t, err, iterative.ErrDimensionMismatch)
}
