// SPDX-License-Identifier: MIT

// Package iterative solves square systems A x = b with stationary iterative
// methods: Jacobi, Gauss-Seidel and successive over-relaxation (SOR).
//
// Every method is the fixed-point map x(k+1) = T·x(k) + C built once from the
// splitting A = D − L − U (see package splitting):
//
//	Jacobi:       T = D⁻¹(L+U)               C = D⁻¹b
//	GaussSeidel:  T = (D−L)⁻¹U               C = (D−L)⁻¹b
//	SOR(w):       T = (D−wL)⁻¹((1−w)D+wU)    C = w(D−wL)⁻¹b
//
// Solve iterates from x0 until the step ‖x(k+1) − x(k)‖ (Euclidean by default,
// or Infinity) is <= tol, or maxIter iterations have run. The returned Result
// carries the final iterate, the status and the full History of the run.
// Exhausting the budget is not an error; setup failures (shapes, a zero
// diagonal, unknown enum values) are, and they happen before the first iteration.
//
// A Solver built with NewSolver is immutable and may be shared by goroutines.
// Nothing in this package prints; logging goes to an optional *slog.Logger.
package iterative
