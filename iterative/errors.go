// SPDX-License-Identifier: MIT
// Package iterative: sentinel error set.
//
// Every setup-time failure aborts Solve before the first iteration with no
// partial result. Exhausting the iteration budget is NOT an error: it is
// reported through Result.Converged / Result.Status.
//
// Errors originating in package matrix or package splitting are joined with
// the sentinels below, so both errors.Is(err, iterative.ErrSingular) and
// errors.Is(err, matrix.ErrSingular) hold.

package iterative

import "errors"

var (
	// ErrDimensionMismatch indicates A is not square, or b / x0 do not have length n.
	ErrDimensionMismatch = errors.New("iterative: dimension mismatch")

	// ErrSingular indicates a required diagonal or triangular inverse does not
	// exist (a zero diagonal entry in A).
	ErrSingular = errors.New("iterative: singular splitting")

	// ErrInvalidMethod indicates a Method value outside {Jacobi, GaussSeidel, SOR},
	// or an unparsable method name at a dynamic boundary (CLI, problem file).
	ErrInvalidMethod = errors.New("iterative: invalid method")

	// ErrInvalidNorm indicates a Norm value outside {Euclidean, Infinity}.
	ErrInvalidNorm = errors.New("iterative: invalid norm")

	// ErrInvalidRecording indicates a Recording value outside {RecordPreUpdate, RecordPostUpdate}.
	ErrInvalidRecording = errors.New("iterative: invalid recording mode")
)
