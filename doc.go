// SPDX-License-Identifier: MIT

// Package linsolve solves square linear systems A·x = b with stationary
// iterative methods and, as a reference, with Gaussian elimination.
//
// What is linsolve?
//
//	A small, dependency-light numerical toolkit made of:
//		• matrix     – dense float64 matrices, validators, arithmetic and triangular inverses
//		• splitting  – the additive split A = D − L − U
//		• iterative  – Jacobi, Gauss-Seidel and SOR with a recorded convergence history
//		• direct     – Gaussian elimination with no, partial or total pivoting
//		• report     – text, markdown and JSON renderings of an iteration history
//
// Every stationary method is expressed as a fixed-point map
//
//	x(k+1) = T·x(k) + C
//
// where T and C are derived from the splitting:
//
//	Jacobi:        T = D⁻¹(L+U)              C = D⁻¹b
//	Gauss-Seidel:  T = (D−L)⁻¹U              C = (D−L)⁻¹b
//	SOR(ω):        T = (D−ωL)⁻¹((1−ω)D+ωU)   C = ω(D−ωL)⁻¹b
//
// Iteration stops when the distance between successive iterates falls to the
// tolerance or the budget runs out. Running out of iterations is an outcome
// reported on the result, not an error.
//
// Quick start:
//
//	A, _ := matrix.NewFromRows([][]float64{{4, 1}, {2, 3}})
//	res, err := iterative.Solve(A, []float64{1, 2}, []float64{0, 0}, 1e-6, 100, iterative.Jacobi)
//	if err != nil {
//		// dimension mismatch, zero diagonal or an unknown method
//	}
//	fmt.Println(report.Summary(res))
//
// The linsolve command wraps the same packages around YAML problem files.
package linsolve
