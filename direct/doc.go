// SPDX-License-Identifier: MIT

// Package direct solves square systems A x = b by Gaussian elimination with
// back substitution, in three pivoting variants:
//
//   - NoPivot:      factor A = L*U (matrix.LU), then forward and back substitution.
//   - PartialPivot: before eliminating column i, swap in the row with the largest |A[j,i]|, j ≥ i.
//   - TotalPivot:   swap in the largest |A[r,c]| of the trailing block (rows and columns);
//     the column permutation is returned alongside the solution.
//
// The routines are non-iterative and serve as the reference oracle for the
// stationary methods in package iterative. Inputs are never mutated: every
// routine eliminates on a private copy of [A|b].
//
// Errors:
//   - ErrDimensionMismatch: A not square, or len(b) != n.
//   - ErrSingular: a zero pivot (exactly 0) is met during elimination.
//
// Complexity: O(n³) time, O(n²) memory.
package direct
