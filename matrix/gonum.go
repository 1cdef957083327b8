// SPDX-License-Identifier: MIT

// Package matrix: interop with gonum.org/v1/gonum/mat.
// Both directions copy; gonum and Dense never share a buffer.

package matrix

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense with the same shape.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, slices.Clone(m.data))
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrInvalidDimensions for empty shapes.
//   - ErrNaNInf when the policy is on and src holds a non-finite value.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("FromGonum", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	buf := make([]float64, rows*cols)
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, matrixErrorf("FromGonum", fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			buf[i*cols+j] = v
		}
	}

	return wrapDense(rows, cols, buf, o.validateNaNInf), nil
}

// Inverse returns m⁻¹ computed by gonum's LU-based inverse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square).
//   - ErrSingular when m is singular or too ill-conditioned; the gonum
//     condition error is kept in the message.
//
// Complexity: O(n³).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Inverse", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Inverse", err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Inverse", err)
	}

	var inv mat.Dense
	if err := inv.Inverse(dm.ToGonum()); err != nil {
		return nil, matrixErrorf("Inverse", fmt.Errorf("%w (%v)", ErrSingular, err))
	}

	return FromGonum(&inv, WithValidateNaNInf(dm.validateNaNInf))
}

// EigenSym factorizes a symmetric matrix. values are ascending; the columns
// of vectors are the matching orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square).
//   - ErrAsymmetry when |m[i,j]-m[j,i]| > tol for some pair.
//   - ErrNotConverged when the factorization fails.
//
// Complexity: O(n³).
func EigenSym(m Matrix, tol float64) (values []float64, vectors *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf("EigenSym", err)
	}
	if err = ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf("EigenSym", err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf("EigenSym", err)
	}

	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(dm.r, slices.Clone(dm.data)), true) {
		return nil, nil, matrixErrorf("EigenSym", ErrNotConverged)
	}
	var q mat.Dense
	es.VectorsTo(&q)
	if vectors, err = FromGonum(&q, WithValidateNaNInf(dm.validateNaNInf)); err != nil {
		return nil, nil, matrixErrorf("EigenSym", err)
	}

	return es.Values(nil), vectors, nil
}
