// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer of linsolve.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional mutable
//	arrays of float64 values. Dense is its row-major implementation, and the kernels
//	in this package (Add, Sub, Mul, Scale, MatVec, LU, InverseDiagonal,
//	InverseLowerTriangular) are the building blocks of the matrix splitting and the
//	stationary iteration operators in packages splitting and iterative.
//
// Contracts:
//   - At/Set never panic; they return ErrOutOfRange.
//   - Kernels never mutate their inputs and always return a fresh *Dense.
//   - Errors are package sentinels (errors.go) wrapped with an operation tag.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time.
//	Clone() performs a deep copy in O(rows*cols) time.
//	Mul is O(r·n·c); LU and InverseLowerTriangular are O(n³).
//
// Usage:
//
//	A, _ := matrix.NewFromRows([][]float64{{4, 1}, {2, 3}})
//	Linv, _ := matrix.InverseLowerTriangular(A) // uses the lower triangle only
//	y, _ := matrix.MatVec(Linv, []float64{1, 2})
package matrix
