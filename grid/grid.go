// SPDX-License-Identifier: MIT

// Package grid: construction paths, shape accessors and coordinate math.

package grid

import (
	"iter"
	"math"
	"slices"
)

// New attaches a column count to seq and takes ownership of it.
// No validation happens here; operations that need a positive column count
// check it when invoked.
//
// Complexity: O(1).
func New[T any](seq iter.Seq[T], columns int, opts ...Option) *Grid[T] {
	o := gatherOptions(opts)

	return &Grid[T]{columns: columns, rows: o.rows, seq: seq}
}

// FromSlice attaches a column count to buf without copying it.
// The grid supports O(1) Get, and Ptr/Set write straight into buf; the
// caller keeps ownership and sees every write.
//
// Complexity: O(1).
func FromSlice[T any](buf []T, columns int, opts ...Option) *Grid[T] {
	o := gatherOptions(opts)
	acc := &access[T]{
		n:   len(buf),
		at:  func(i int) T { return buf[i] },
		ptr: func(i int) *T { return &buf[i] },
	}

	return &Grid[T]{columns: columns, rows: o.rows, seq: acc.values(), acc: acc}
}

// Refs returns a grid over pointers into buf, so every lazy view yields
// addresses and can mutate buf in place:
//
//	for p := range grid.Refs(buf, 5).Col(3) {
//		*p = 0
//	}
//
// Complexity: O(1).
func Refs[T any](buf []T, columns int, opts ...Option) *Grid[*T] {
	o := gatherOptions(opts)
	acc := &access[*T]{
		n:  len(buf),
		at: func(i int) *T { return &buf[i] },
	}

	return &Grid[*T]{columns: columns, rows: o.rows, seq: acc.values(), acc: acc}
}

// Columns returns the column count fixed at construction.
func (g *Grid[T]) Columns() int { return g.columns }

// RowCount returns the number of rows when it is known: the WithRows hint
// if one was given, otherwise ceil(len/columns) for slice-backed grids
// (a partial last row counts). Sequence-backed grids without a hint report false.
func (g *Grid[T]) RowCount() (int, bool) {
	if g.rows != DefaultRows {
		return g.rows, true
	}
	if g.acc == nil || g.columns <= 0 {
		return 0, false
	}

	return (g.acc.n + g.columns - 1) / g.columns, true
}

// Len returns the element count of slice-backed grids; false otherwise.
func (g *Grid[T]) Len() (int, bool) {
	if g.acc == nil {
		return 0, false
	}

	return g.acc.n, true
}

// Indexable reports whether Get runs in O(1).
func (g *Grid[T]) Indexable() bool { return g.acc != nil }

// All returns the underlying sequence in row-major order.
func (g *Grid[T]) All() iter.Seq[T] { return g.seq }

// Cells yields every element together with its (column,row) coordinate.
// Panics with ErrInvalidColumns when columns <= 0.
func (g *Grid[T]) Cells() iter.Seq2[Coord, T] {
	if g.columns <= 0 {
		panic(gridErrorf(ctxCells, ErrInvalidColumns))
	}
	columns := g.columns

	return func(yield func(Coord, T) bool) {
		off := 0
		for v := range g.seq {
			if !yield(Coord{Col: off % columns, Row: off / columns}, v) {
				return
			}
			off++
		}
	}
}

// Collect drains the source into a fresh slice-backed grid with the same
// shape. Use it to make a one-shot sequence replayable.
//
// Complexity: O(n) time and memory.
func (g *Grid[T]) Collect() *Grid[T] {
	out := FromSlice(slices.Collect(g.seq), g.columns)
	out.rows = g.rows

	return out
}

// IndexToFlat maps (col,row) to the row-major offset columns*row + col.
// No bounds check; the caller owns the coordinate's validity.
func (g *Grid[T]) IndexToFlat(col, row int) int {
	return g.columns*row + col
}

// IndexFromFlat maps a row-major offset back to (col,row).
// Panics with ErrInvalidColumns when columns <= 0 and ErrNegativeIndex
// when index < 0.
func (g *Grid[T]) IndexFromFlat(index int) (col, row int) {
	if g.columns <= 0 {
		panic(gridErrorf(ctxIndexFromFlat, ErrInvalidColumns, index))
	}
	if index < 0 {
		panic(gridErrorf(ctxIndexFromFlat, ErrNegativeIndex, index))
	}
	col = index % g.columns

	return col, (index - col) / g.columns
}

// mustColumn panics unless 0 <= col < columns; args are the caller's
// arguments, reported in the panic message.
func (g *Grid[T]) mustColumn(method string, col int, args ...int) {
	if col < 0 {
		panic(gridErrorf(method, ErrNegativeIndex, args...))
	}
	if col >= g.columns {
		panic(gridErrorf(method, ErrColumnOutOfRange, args...))
	}
}

// mustRow panics when row < 0.
func mustRow(method string, row int, args ...int) {
	if row < 0 {
		panic(gridErrorf(method, ErrNegativeIndex, args...))
	}
}

// offset is IndexToFlat for validated, non-negative coordinates, clamped at
// math.MaxInt so far-away rows read as "past the end" instead of wrapping.
func (g *Grid[T]) offset(col, row int) int {
	base := satMul(row, g.columns)
	if base > math.MaxInt-col {
		return math.MaxInt
	}

	return base + col
}

// satMul multiplies non-negative a and b, clamping at math.MaxInt.
func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}
