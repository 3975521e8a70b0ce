// SPDX-License-Identifier: MIT
package direct_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/direct"
	"github.com/katalvlaran/linsolve/matrix"
)

func mustMatrix(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// oracle solves with gonum's LU for comparison.
func oracle(t *testing.T, rows [][]float64, b []float64) []float64 {
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

func randomSystem(rng *rand.Rand, n int) ([][]float64, []float64) {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = rng.Float64()*2 - 1
		}
		a[i][i] += float64(n) // keep it comfortably non-singular
	}
	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()*10 - 5
	}

	return a, b
}

func TestSolve_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 3, 6, 10} {
		a, b := randomSystem(rng, n)
		want := oracle(t, a, b)
		for _, p := range []direct.Pivoting{direct.None, direct.Partial, direct.Total} {
			got, err := direct.Solve(mustMatrix(t, a), b, p)
			require.NoError(t, err, "n=%d %v", n, p)
			assert.InDeltaSlice(t, want, got, 1e-10, "n=%d %v", n, p)
		}
	}
}

func TestPivoting_ZeroLeadingEntry(t *testing.T) {
	A := mustMatrix(t, [][]float64{{0, 1}, {1, 0}})
	b := []float64{2, 3}

	_, err := direct.NoPivot(A, b)
	assert.ErrorIs(t, err, direct.ErrSingular)

	x, err := direct.PartialPivot(A, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, x)

	x, perm, err := direct.TotalPivot(A, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, x)
	assert.Len(t, perm, 2)
}

func TestNoPivot_LUFactorization(t *testing.T) {
	x, err := direct.NoPivot(mustMatrix(t, [][]float64{{4, 1}, {2, 3}}), []float64{1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.6}, x, 1e-15)

	// Second pivot vanishes only after the first elimination step.
	_, err = direct.NoPivot(mustMatrix(t, [][]float64{{1, 2, 3}, {2, 4, 1}, {1, 1, 1}}), []float64{1, 1, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, direct.ErrSingular)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = direct.NoPivot(mustMatrix(t, [][]float64{{1, 2}, {3, 4}}), []float64{1})
	assert.ErrorIs(t, err, direct.ErrDimensionMismatch)
}

func TestTotalPivot_PermutationAndOriginalOrder(t *testing.T) {
	A := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	x, perm, err := direct.TotalPivot(A, []float64{5, 11})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, perm)
	assert.InDeltaSlice(t, []float64{1, 2}, x, 1e-14)
}

func TestSolve_SingularMatrix(t *testing.T) {
	A := mustMatrix(t, [][]float64{{1, 2}, {2, 4}})
	for _, p := range []direct.Pivoting{direct.None, direct.Partial, direct.Total} {
		_, err := direct.Solve(A, []float64{1, 2}, p)
		assert.ErrorIs(t, err, direct.ErrSingular, p.String())
	}
}

func TestSolve_Errors(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = direct.Solve(rect, []float64{1, 2}, direct.Partial)
	assert.ErrorIs(t, err, direct.ErrDimensionMismatch)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = direct.Solve(mustMatrix(t, [][]float64{{1}}), []float64{1, 2}, direct.None)
	assert.ErrorIs(t, err, direct.ErrDimensionMismatch)

	_, err = direct.Solve(nil, nil, direct.Total)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = direct.Solve(mustMatrix(t, [][]float64{{1}}), []float64{1}, direct.Pivoting(9))
	assert.ErrorIs(t, err, direct.ErrInvalidPivoting)
}

func TestSolve_DoesNotMutateInputs(t *testing.T) {
	rows := [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}}
	A := mustMatrix(t, rows)
	b := []float64{8, -11, -3}
	for _, p := range []direct.Pivoting{direct.None, direct.Partial, direct.Total} {
		x, err := direct.Solve(A, b, p)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{2, 3, -1}, x, 1e-12, p.String())
	}
	back, err := matrix.ToRows(A)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
	assert.Equal(t, []float64{8, -11, -3}, b)
}

func TestParsePivoting(t *testing.T) {
	for in, want := range map[string]direct.Pivoting{
		"": direct.None, "none": direct.None, "No": direct.None,
		"partial": direct.Partial,
		"total": direct.Total, "complete": direct.Total, " FULL ": direct.Total,
	} {
		got, err := direct.ParsePivoting(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := direct.ParsePivoting("rook")
	assert.ErrorIs(t, err, direct.ErrInvalidPivoting)
	assert.Equal(t, "Pivoting(9)", direct.Pivoting(9).String())
}
