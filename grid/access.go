// SPDX-License-Identifier: MIT

// Package grid: direct element access.

package grid

import "github.com/katalvlaran/itergrid/seq"

// Get returns the element at (col,row) and true, or the zero value and false
// when the source ends before that offset.
//
// Preconditions (panic): 0 <= col < columns and row >= 0.
//
// Complexity: O(1) for slice-backed grids, O(offset) pulls otherwise. On a
// sequence-backed grid Get iterates the source, so a one-shot source is
// consumed by the call.
func (g *Grid[T]) Get(col, row int) (T, bool) {
	g.mustColumn(ctxGet, col, col, row)
	mustRow(ctxGet, row, col, row)
	off := g.offset(col, row)
	if g.acc != nil {
		if off >= g.acc.n {
			var zero T
			return zero, false
		}

		return g.acc.at(off), true
	}

	return seq.Nth(g.seq, off)
}

// Ptr returns the address of the element at (col,row) so the caller can
// mutate it in place, or nil and false past the end of the buffer.
//
// Preconditions (panic): the grid comes from FromSlice (or a view of one),
// 0 <= col < columns and row >= 0.
//
// Complexity: O(1).
func (g *Grid[T]) Ptr(col, row int) (*T, bool) {
	if g.acc == nil || g.acc.ptr == nil {
		panic(gridErrorf(ctxPtr, ErrNotAddressable, col, row))
	}
	g.mustColumn(ctxPtr, col, col, row)
	mustRow(ctxPtr, row, col, row)
	off := g.offset(col, row)
	if off >= g.acc.n {
		return nil, false
	}

	return g.acc.ptr(off), true
}

// Set stores v at (col,row) and reports whether the offset was inside the
// buffer. Same preconditions as Ptr.
//
// Complexity: O(1).
func (g *Grid[T]) Set(col, row int, v T) bool {
	if g.acc == nil || g.acc.ptr == nil {
		panic(gridErrorf(ctxSet, ErrNotAddressable, col, row))
	}
	g.mustColumn(ctxSet, col, col, row)
	mustRow(ctxSet, row, col, row)
	off := g.offset(col, row)
	if off >= g.acc.n {
		return false
	}
	*g.acc.ptr(off) = v

	return true
}
