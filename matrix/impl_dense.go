// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major over grid.Grid) & safe accessors.
//
// Purpose:
//   - Keep the flat buffer and index formula i*cols + j in one place: the grid.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Derive rows, columns, diagonals and windows from grid views.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/itergrid/grid"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxApply = "Apply"
	ctxRow   = "Row"
	ctxCol   = "Col"
	ctxView  = "View"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is the flat buffer of length r*c; cells addresses it as a grid
//     with c columns (Get/Set take (col,row), the matrix API takes (row,col)).
//   - validateNaNInf enables NaN/Inf rejection in Set and Apply.
type Dense struct {
	r, c           int
	data           []float64
	cells          *grid.Grid[float64]
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return wrapDense(rows, cols, make([]float64, rows*cols), gatherOptions(opts...).validateNaNInf), nil
}

// NewFromData creates an r×c matrix from a row-major copy of data.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when the policy is on and data holds a non-finite value.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromData(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData: len %d for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NewFromData", i/cols, i%cols, ErrNaNInf)
			}
		}
	}

	return wrapDense(rows, cols, slices.Clone(data), o.validateNaNInf), nil
}

// wrapDense attaches buf (already r*c long) without copying.
func wrapDense(rows, cols int, buf []float64, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		cells:          grid.FromSlice(buf, cols, grid.WithRows(rows)),
		validateNaNInf: validateNaNInf,
	}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Grid exposes the storage as a grid sharing the matrix buffer; writes
// through Grid().Set are visible to the matrix and bypass the numeric policy.
func (m *Dense) Grid() *grid.Grid[float64] { return m.cells }

// inBounds reports 0 <= row < r and 0 <= col < c.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	v, _ := m.cells.Get(col, row) // present: bounds checked above

	return v, nil
}

// Set stores v at (row, col) or returns ErrOutOfRange / ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.cells.Set(col, row, v)

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, r).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return slices.Collect(m.cells.Row(i)), nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange when j is outside [0, c).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return slices.Collect(m.cells.Col(j)), nil
}

// Diag returns the main diagonal (i,i) for i < min(r,c).
func (m *Dense) Diag() []float64 {
	return slices.Collect(m.cells.DiagFwd(0, 0))
}

// AntiDiag returns the anti-diagonal starting at the top-right corner:
// (0,c-1), (1,c-2), ... while both indices stay inside the matrix.
func (m *Dense) AntiDiag() []float64 {
	return slices.Collect(m.cells.DiagBwd(m.c-1, 0))
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return wrapDense(m.r, m.c, slices.Clone(m.data), m.validateNaNInf)
}

// String renders rows as lines with comma-separated values, for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		first := true
		for v := range m.cells.Row(i) {
			if !first {
				b.WriteString(_fmtSep)
			}
			first = false
			b.WriteString(fmt.Sprintf("%g", v))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v);
// stops early when f returns false.
// Complexity: O(r*c), no allocations beyond the iterator.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for at, v := range m.cells.Cells() {
		if !f(at.Row, at.Col, v) {
			return
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
// Elements written before an ErrNaNInf remain updated.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	for at, p := range grid.Refs(m.data, m.c).Cells() {
		nv := f(at.Row, at.Col, *p)
		if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
			return denseErrorf(ctxApply, at.Row, at.Col, ErrNaNInf)
		}
		*p = nv
	}

	return nil
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Errors:
//   - ErrBadShape when the window does not fit; zero-area windows are legal.
//
// Complexity: O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{
		base:  m,
		r:     rows,
		c:     cols,
		cells: m.cells.Sub(grid.Span(c0, c0+cols), grid.Span(r0, r0+rows)),
	}, nil
}

// MatrixView is a non-owning window into a Dense (shared storage).
// Not implementing Matrix to avoid accidental copies in ops.
type MatrixView struct {
	base  *Dense              // owner of the storage and numeric policy
	r, c  int                 // view height and width
	cells *grid.Grid[float64] // sub-grid view over base storage
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) of the view or returns ErrOutOfRange.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	val, _ := v.cells.Get(j, i)

	return val, nil
}

// Set writes element (i,j) of the view through to the base, honoring the
// base numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && (math.IsNaN(val) || math.IsInf(val, 0)) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.cells.Set(j, i, val)

	return nil
}

// Materialize copies the window into an independent Dense.
// Errors: ErrInvalidDimensions for zero-area views.
func (v *MatrixView) Materialize() (*Dense, error) {
	if v.r == 0 || v.c == 0 {
		return nil, ErrInvalidDimensions
	}

	return wrapDense(v.r, v.c, slices.Collect(v.cells.All()), v.base.validateNaNInf), nil
}
