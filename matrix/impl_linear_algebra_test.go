// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{4, 3}, {2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5, 5}, {5, 5}}, MustRows(t, sum))

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-3, -1}, {1, 3}}, MustRows(t, diff))

	_, err = matrix.Add(a, MustDense(t, 1, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, MustRows(t, p))

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScaleAndMatVec(t *testing.T) {
	a := MustFromRows(t, scenarioA())

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-8, -2}, {-4, -6}}, MustRows(t, s))

	y, err := matrix.MatVec(a, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernels_InterfaceHiding_Fallback checks that the At/Set fallback of every
// kernel agrees bitwise with its *Dense fast path.
func TestKernels_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	base := MustFromRows(t, dominant4())
	wrapped := hide{base}

	pairs := []struct {
		name string
		fast func() (*matrix.Dense, error)
		slow func() (*matrix.Dense, error)
	}{
		{"Add", func() (*matrix.Dense, error) { return matrix.Add(base, base) },
			func() (*matrix.Dense, error) { return matrix.Add(wrapped, base) }},
		{"Sub", func() (*matrix.Dense, error) { return matrix.Sub(base, base) },
			func() (*matrix.Dense, error) { return matrix.Sub(base, wrapped) }},
		{"Mul", func() (*matrix.Dense, error) { return matrix.Mul(base, base) },
			func() (*matrix.Dense, error) { return matrix.Mul(wrapped, wrapped) }},
		{"Scale", func() (*matrix.Dense, error) { return matrix.Scale(base, 0.5) },
			func() (*matrix.Dense, error) { return matrix.Scale(wrapped, 0.5) }},
		{"InverseLowerTriangular", func() (*matrix.Dense, error) { return matrix.InverseLowerTriangular(base) },
			func() (*matrix.Dense, error) { return matrix.InverseLowerTriangular(wrapped) }},
	}
	for _, p := range pairs {
		fast, err := p.fast()
		require.NoError(t, err, p.name)
		slow, err := p.slow()
		require.NoError(t, err, p.name)
		assert.Equal(t, MustRows(t, fast), MustRows(t, slow), p.name)
	}

	v1, err := matrix.MatVec(base, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	v2, err := matrix.MatVec(wrapped, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestInverseDiagonal(t *testing.T) {
	inv, err := matrix.InverseDiagonal(MustFromRows(t, [][]float64{{2, 9}, {9, -4}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0}, {0, -0.25}}, MustRows(t, inv))

	_, err = matrix.InverseDiagonal(MustFromRows(t, [][]float64{{0, 1}, {1, 0}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.InverseDiagonal(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverseLowerTriangular(t *testing.T) {
	// The strict upper triangle is ignored.
	m := MustFromRows(t, [][]float64{{2, 100}, {1, 4}})
	inv, err := matrix.InverseLowerTriangular(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0}, {-0.125, 0.25}}, MustRows(t, inv))

	// L * L⁻¹ == I on a 4×4 lower triangle.
	low := dominant4()
	for i := range low {
		for j := i + 1; j < len(low); j++ {
			low[i][j] = 0
		}
	}
	L := MustFromRows(t, low)
	Linv, err := matrix.InverseLowerTriangular(L)
	require.NoError(t, err)
	prod, err := matrix.Mul(L, Linv)
	require.NoError(t, err)
	RequireClose(t, prod, MustFromRows(t, identity(4)), 1e-12)

	_, err = matrix.InverseLowerTriangular(MustFromRows(t, [][]float64{{1, 0}, {3, 0}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLU_Reconstructs(t *testing.T) {
	A := MustFromRows(t, dominant4())
	L, U, err := matrix.LU(A)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		assert.Equal(t, 1.0, MustAt(t, L, i, i), "unit diagonal on L")
		for j := i + 1; j < 4; j++ {
			assert.Zero(t, MustAt(t, L, i, j), "L upper entry [%d,%d]", i, j)
			assert.Zero(t, MustAt(t, U, j, i), "U lower entry [%d,%d]", j, i)
		}
	}
	LU, err := matrix.Mul(L, U)
	require.NoError(t, err)
	RequireClose(t, LU, A, 1e-12)

	L2, U2, err := matrix.LU(hide{A})
	require.NoError(t, err)
	assert.Equal(t, MustRows(t, L), MustRows(t, L2))
	assert.Equal(t, MustRows(t, U), MustRows(t, U2))

	_, _, err = matrix.LU(MustFromRows(t, [][]float64{{0, 1}, {1, 0}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, _, err = matrix.LU(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestKernels_DoNotMutateInputs(t *testing.T) {
	A := MustFromRows(t, dominant4())
	before := MustRows(t, A)

	_, _, _ = matrix.LU(A)
	_, _ = matrix.InverseLowerTriangular(A)
	_, _ = matrix.Scale(A, 3)

	assert.Equal(t, before, MustRows(t, A))
}
