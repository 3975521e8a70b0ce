// SPDX-License-Identifier: MIT

package iterative

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/splitting"
)

const (
	opSolve     = "Solve"
	opNewSolver = "NewSolver"

	// historyPrealloc caps the up-front history allocation for large budgets.
	historyPrealloc = 256
)

// Record is one completed iteration.
// X is an owned copy: pre-update or post-update iterate depending on Recording.
type Record struct {
	Iteration int       `json:"iteration"`
	X         []float64 `json:"x"`
	Error     float64   `json:"error"`
}

// Result is the outcome of one solve call. It is never mutated after Solve returns.
type Result struct {
	// X is the final iterate (x0 when no iteration ran).
	X []float64 `json:"x"`

	// Iterations is the number of completed iterations, 0 <= Iterations <= maxIterations.
	Iterations int `json:"iterations"`

	// Converged reports Error <= tolerance after at least one iteration.
	Converged bool `json:"converged"`

	// Error is the last computed step error, +Inf when no iteration ran.
	Error float64 `json:"error"`

	// Tolerance echoes the requested tolerance.
	Tolerance float64 `json:"tolerance"`

	// History has exactly Iterations records, ordered by Iteration.
	History []Record `json:"history"`

	Method     Method    `json:"method"`
	Norm       Norm      `json:"norm"`
	Recording  Recording `json:"-"`
	Relaxation float64   `json:"relaxation"`
}

// Status returns Converged or Exhausted.
func (r *Result) Status() Status {
	if r.Converged {
		return Converged
	}

	return Exhausted
}

// Solver is a prepared stationary scheme for one system (A, b, Method, w).
// The operator is built once in NewSolver; Solve may then run any number of
// times, from any goroutine, since every call owns its iteration state.
type Solver struct {
	op   *Operator
	n    int
	opts Options
}

// NewSolver validates the system and builds the operator (T, C).
//
// Implementation:
//   - Stage 1: A non-nil and square, len(b) == n, method valid, options valid.
//   - Stage 2: every A[i,i] != 0 (matrix.ValidateNonZeroDiagonal).
//   - Stage 3: Split A = D − L − U.
//   - Stage 4: NewOperator(split, b, method, w).
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidMethod, ErrInvalidNorm, ErrInvalidRecording, ErrSingular.
func NewSolver(a matrix.Matrix, b []float64, method Method, opts ...Option) (*Solver, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNewSolver, ErrDimensionMismatch, err)
	}
	n := a.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("%s: len(b)=%d, n=%d: %w", opNewSolver, len(b), n, ErrDimensionMismatch)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", opNewSolver, method, ErrInvalidMethod)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSolver, err)
	}
	// O(n) check ahead of the O(n³) operator build.
	if err := matrix.ValidateNonZeroDiagonal(a); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNewSolver, ErrSingular, err)
	}

	split, err := splitting.Split(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNewSolver, ErrDimensionMismatch, err)
	}
	op, err := NewOperator(split, b, method, o.Relaxation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSolver, err)
	}

	return &Solver{op: op, n: n, opts: o}, nil
}

// Operator exposes the prepared fixed-point map.
func (s *Solver) Operator() *Operator { return s.op }

// Solve runs x_{k+1} = T·x_k + C from x0.
//
// State machine Running → {Converged, Exhausted}:
//   - Initial: n = 0, x = x0 (copied), err = +Inf.
//   - Step (while n < maxIter and (n == 0 or err > tol)): next = T·x + C;
//     err = ‖next − x‖; append Record; n++; x = next.
//   - Converged iff n > 0 and err <= tol; Exhausted otherwise.
//
// Edge cases:
//   - maxIter <= 0 → zero iterations, Exhausted, empty history, X == x0.
//   - tol <= 0 → at least one iteration; stops early only on an exact zero step (tol == 0).
//   - A NaN step never satisfies the tolerance, so the budget is exhausted.
//
// Errors:
//   - ErrDimensionMismatch when len(x0) != n. No partial result is returned.
func (s *Solver) Solve(x0 []float64, tol float64, maxIter int) (*Result, error) {
	if len(x0) != s.n {
		return nil, fmt.Errorf("%s: len(x0)=%d, n=%d: %w", opSolve, len(x0), s.n, ErrDimensionMismatch)
	}

	log := s.opts.Logger
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	x := make([]float64, s.n)
	copy(x, x0)
	stepErr := math.Inf(1)
	history := make([]Record, 0, max(0, min(maxIter, historyPrealloc)))

	var (
		n    int
		next []float64
		err  error
	)
	for n < maxIter && (n == 0 || !converged(stepErr, tol)) {
		if next, err = s.op.Apply(x); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opSolve, n, err)
		}
		if stepErr, err = Distance(x, next, s.opts.Norm); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opSolve, n, err)
		}

		recorded := x
		if s.opts.Recording == RecordPostUpdate {
			recorded = next
		}
		history = append(history, Record{Iteration: n, X: cloneVec(recorded), Error: stepErr})

		if debug {
			log.Debug("iteration", slog.Int("n", n), slog.Float64("error", stepErr))
		}
		n++
		x = next
	}

	res := &Result{
		X:          x,
		Iterations: n,
		Converged:  n > 0 && converged(stepErr, tol),
		Error:      stepErr,
		Tolerance:  tol,
		History:    history,
		Method:     s.op.Method,
		Norm:       s.opts.Norm,
		Recording:  s.opts.Recording,
		Relaxation: s.op.Relaxation,
	}
	log.Info("solve finished",
		slog.String("method", res.Method.String()),
		slog.String("status", res.Status().String()),
		slog.Int("iterations", res.Iterations),
		slog.Float64("error", res.Error),
	)

	return res, nil
}

// Solve is the one-shot entry point: NewSolver(a, b, method, opts...).Solve(x0, tol, maxIter).
//
// Preconditions:
//   - a square n×n with a non-zero diagonal; len(b) == len(x0) == n.
//   - WithRelaxation only matters for SOR.
//
// Errors (all setup-time, no partial result):
//   - ErrDimensionMismatch, ErrSingular, ErrInvalidMethod, ErrInvalidNorm, ErrInvalidRecording.
//
// Exhausting maxIter is not an error: check Result.Converged.
func Solve(a matrix.Matrix, b, x0 []float64, tol float64, maxIter int, method Method, opts ...Option) (*Result, error) {
	// x0 is validated before the O(n³) operator build.
	if err := matrix.ValidateSquare(a); err == nil && len(x0) != a.Rows() {
		return nil, fmt.Errorf("%s: len(x0)=%d, n=%d: %w", opSolve, len(x0), a.Rows(), ErrDimensionMismatch)
	}
	s, err := NewSolver(a, b, method, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve(x0, tol, maxIter)
}

// IsSetupError reports whether err is one of the setup-time sentinels.
func IsSetupError(err error) bool {
	return errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrSingular) ||
		errors.Is(err, ErrInvalidMethod) ||
		errors.Is(err, ErrInvalidNorm) ||
		errors.Is(err, ErrInvalidRecording)
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
