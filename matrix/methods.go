// SPDX-License-Identifier: MIT

// Package matrix: operations over any Matrix implementation. *Dense inputs
// take a fast path through their grid storage; everything else falls back
// to At/Set loops.
package matrix

import (
	"fmt"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opEqual     = "Equal"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new Matrix where rows and columns of m are swapped.
// Stage 1 (Validate): nil-check.
// Stage 2 (Execute): *Dense drains its slice-backed grid in column-major
// order straight into the result buffer; other implementations are copied
// element by element.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()

	if dm, ok := m.(*Dense); ok {
		buf := slices.AppendSeq(make([]float64, 0, rows*cols), dm.cells.Transpose())
		return wrapDense(cols, rows, buf, dm.validateNaNInf), nil
	}

	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Errors: ErrNilMatrix for nil operands.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}
