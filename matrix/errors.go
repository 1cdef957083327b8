// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// call-site context via %w) and tests match them with errors.Is. Nothing in
// this package panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a data length or operand shape that does
	// not match the requested dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape indicates an invalid view window.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular indicates a matrix that is singular or too ill-conditioned to invert.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry indicates a matrix that must be symmetric but is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNotConverged indicates an iterative factorization that did not converge.
	ErrNotConverged = errors.New("matrix: factorization did not converge")
)
