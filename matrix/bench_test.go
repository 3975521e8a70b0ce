// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// dominant returns an n×n strictly diagonally dominant matrix.
func dominant(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 1.0 / float64(1+i+j)
			if i == j {
				v = float64(2 * n)
			}
			_ = m.Set(i, j, v)
		}
	}

	return m
}

func BenchmarkInverseLowerTriangular(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		m := dominant(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.InverseLowerTriangular(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		m := dominant(b, n)
		x := make([]float64, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.MatVec(m, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	m := dominant(b, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(m, m); err != nil {
			b.Fatal(err)
		}
	}
}
