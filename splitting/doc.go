// SPDX-License-Identifier: MIT

// Package splitting decomposes a square coefficient matrix into its diagonal,
// strict-lower and strict-upper parts under the convention
//
//	A = D − L − U
//
// where D holds the diagonal of A, L the NEGATED strict lower triangle and U the
// NEGATED strict upper triangle. This is the convention used by the
// stationary iterative methods in package iterative (Jacobi, Gauss-Seidel, SOR).
//
// Split is a pure function of A: it allocates three fresh *matrix.Dense factors
// and never mutates its input. Recompose returns D − L − U, which equals A
// exactly (negation and subtraction of a zero are exact in IEEE-754).
//
// Complexity: O(n²) time and memory.
package splitting
