// SPDX-License-Identifier: MIT

// Package matrix: elementwise and product kernels.
//
// Purpose:
//   - Add/Sub/Hadamard/Scale walk both operands' row-major buffers in lockstep.
//   - Mul, MatVec and the sums take rows and columns as grid sequences and
//     reduce them; no index arithmetic leaks into the kernels.
//   - Non-Dense operands are first copied through At in fixed i→j order.
//
// All kernels validate first, allocate one result and never mutate inputs.

package matrix

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/itergrid/grid"
)

const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opMatVec   = "MatVec"
	opRowSums  = "RowSums"
	opColSums  = "ColSums"
)

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for p := range grid.Refs(m.data, n).DiagFwd(0, 0) {
		*p = 1
	}

	return m, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return zipWith(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub returns a − b. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	return zipWith(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard returns the elementwise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (Matrix, error) {
	return zipWith(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Scale returns alpha·m. Errors: ErrNilMatrix.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out, err := copyOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Mul returns the matrix product a·b (a: r×n, b: n×c → r×c).
// Each result cell is the dot product of a row sequence of a and a column
// sequence of b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
// Complexity: Time O(r*n*c), Space O(r*c + n).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, cols := da.r, db.c
	buf := make([]float64, 0, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		row := slices.Collect(da.cells.Row(i))
		for j = 0; j < cols; j++ {
			buf = append(buf, dot(row, db.cells.Col(j)))
		}
	}

	return wrapDense(rows, cols, buf, da.validateNaNInf), nil
}

// MatVec returns m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.Cols(), ErrDimensionMismatch))
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	out := make([]float64, dm.r)
	for i := range out {
		out[i] = dot(x, dm.cells.Row(i))
	}

	return out, nil
}

// RowSums returns the sum of each row. Errors: ErrNilMatrix.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]float64, dm.r)
	for i := range out {
		out[i] = sum(dm.cells.Row(i))
	}

	return out, nil
}

// ColSums returns the sum of each column. Errors: ErrNilMatrix.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	out := make([]float64, dm.c)
	for j := range out {
		out[j] = sum(dm.cells.Col(j))
	}

	return out, nil
}

// zipWith validates same shape and returns f(a[i,j], b[i,j]) for every cell.
func zipWith(a, b Matrix, tag string, f func(x, y float64) float64) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := copyOf(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for i, y := range db.data {
		out.data[i] = f(out.data[i], y)
	}

	return out, nil
}

// asDense returns m itself when it is a *Dense, otherwise a copy.
func asDense(m Matrix) (*Dense, error) {
	if dm, ok := m.(*Dense); ok {
		return dm, nil
	}

	return copyOf(m)
}

// copyOf copies any Matrix into a fresh Dense through At, row-major.
func copyOf(m Matrix) (*Dense, error) {
	if dm, ok := m.(*Dense); ok {
		return wrapDense(dm.r, dm.c, slices.Clone(dm.data), dm.validateNaNInf), nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, 0, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf = append(buf, v)
		}
	}

	return wrapDense(rows, cols, buf, DefaultValidateNaNInf), nil
}

// dot returns Σ x[k]·y_k over the shorter of x and y.
func dot(x []float64, y iter.Seq[float64]) float64 {
	var acc float64
	k := 0
	for v := range y {
		if k == len(x) {
			break
		}
		acc += x[k] * v
		k++
	}

	return acc
}

func sum(s iter.Seq[float64]) float64 {
	var acc float64
	for v := range s {
		acc += v
	}

	return acc
}
