// SPDX-License-Identifier: MIT
package iterative_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// system is a square test system with its exact solution.
type system struct {
	name string
	a    [][]float64
	b    []float64
	x    []float64
}

// scenarioA is strictly diagonally dominant; Jacobi converges to [0.1, 0.6].
var scenarioA = system{
	name: "scenarioA",
	a:    [][]float64{{4, 1}, {2, 3}},
	b:    []float64{1, 2},
	x:    []float64{0.1, 0.6},
}

// scenarioB swaps the dominance of scenarioA: Jacobi's spectral radius exceeds 1.
var scenarioB = system{
	name: "scenarioB",
	a:    [][]float64{{1, 4}, {2, 3}},
	b:    []float64{1, 2},
}

// dominant4 is symmetric and strictly diagonally dominant, so every method converges.
var dominant4 = system{
	name: "dominant4",
	a: [][]float64{
		{10, -1, 2, 0},
		{-1, 11, -1, 3},
		{2, -1, 10, -1},
		{0, 3, -1, 8},
	},
	b: []float64{6, 25, -11, 15},
	x: []float64{1, 2, -1, 1},
}

func mustMatrix(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// gonumSolve solves A x = b with gonum's LU as an independent oracle.
func gonumSolve(t *testing.T, rows [][]float64, b []float64) []float64 {
	t.Helper()
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, r := range rows {
		data = append(data, r...)
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, append([]float64(nil), b...))))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out
}

func zeros(n int) []float64 { return make([]float64, n) }
