// SPDX-License-Identifier: MIT

package splitting

import "errors"

// ErrDimensionMismatch is returned when the matrix to split is not square.
// It is always joined with matrix.ErrDimensionMismatch, so either sentinel matches.
var ErrDimensionMismatch = errors.New("splitting: matrix is not square")

// ErrNilMatrix is returned when Split receives a nil matrix.
var ErrNilMatrix = errors.New("splitting: nil matrix")
