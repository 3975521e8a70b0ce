// SPDX-License-Identifier: MIT

package direct

import "errors"

var (
	// ErrDimensionMismatch indicates a non-square A or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("direct: dimension mismatch")

	// ErrSingular indicates a zero pivot; with pivoting this means A is singular.
	ErrSingular = errors.New("direct: singular matrix")

	// ErrInvalidPivoting indicates an unknown Pivoting value or name.
	ErrInvalidPivoting = errors.New("direct: invalid pivoting strategy")
)
