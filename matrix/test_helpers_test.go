// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep data finite and well-formed so numeric policies never interfere.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback path of kernels with a *Dense fast path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustRows exports m as [][]float64 or fails the test.
func MustRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// RequireClose asserts got and want have equal shape and agree cell-wise within atol.
func RequireClose(t *testing.T, got, want matrix.Matrix, atol float64) {
	t.Helper()
	g, w := MustRows(t, got), MustRows(t, want)
	require.Len(t, g, len(w))
	for i := range w {
		require.InDeltaSlicef(t, w[i], g[i], atol, "row %d: got\n%v\nwant\n%v", i, g, w)
	}
}

// identity returns the n×n identity as rows.
func identity(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}

	return out
}

// scenarioA is the strictly diagonally dominant 2×2 used across the suite.
func scenarioA() [][]float64 { return [][]float64{{4, 1}, {2, 3}} }

// dominant4 is the 4×4 Jacobi example system matrix.
func dominant4() [][]float64 {
	return [][]float64{
		{10, -1, 2, 0},
		{-1, 11, -1, 3},
		{2, -1, 10, -1},
		{0, 3, -1, 8},
	}
}
