// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const opDistance = "Distance"

// Distance returns the norm of next − prev.
//
//   - Euclidean: sqrt(Σ (next[i]−prev[i])²).
//   - Infinity:  max_i |next[i]−prev[i]|.
//
// The result is non-negative for finite inputs; NaN and Inf entries propagate
// into the result under both norms.
// Pure function, no state.
//
// Errors:
//   - ErrDimensionMismatch when len(prev) != len(next).
//   - ErrInvalidNorm for a norm outside {Euclidean, Infinity}.
func Distance(prev, next []float64, norm Norm) (float64, error) {
	if len(prev) != len(next) {
		return 0, fmt.Errorf("%s: len %d vs %d: %w", opDistance, len(prev), len(next), ErrDimensionMismatch)
	}
	if len(prev) == 0 {
		return 0, nil
	}

	switch norm {
	case Euclidean:
		return floats.Distance(next, prev, 2), nil
	case Infinity:
		// floats.Distance skips NaN differences under the max norm.
		if floats.HasNaN(next) || floats.HasNaN(prev) {
			return math.NaN(), nil
		}
		return floats.Distance(next, prev, math.Inf(1)), nil
	default:
		return 0, fmt.Errorf("%s: %v: %w", opDistance, norm, ErrInvalidNorm)
	}
}

// converged is the acceptance test shared by the loop condition and the result.
// Written as err <= tol (not !(err > tol)) so a NaN step never counts as converged.
func converged(err, tol float64) bool { return err <= tol }
