// SPDX-License-Identifier: MIT

// Package grid: diagonal views.
//
// Both diagonals are anchored at their topmost cell and walk down with a
// constant flat stride: columns+1 for the forward diagonal (one row down,
// one column right) and columns-1 for the backward diagonal (one row down,
// one column left). The walk ends when the column would leave the grid or
// the source runs out.
//
// Both views assert the column range like Col does. There is deliberately no
// upper bound on row: a row past the data anchors past the data and yields an
// empty sequence.

package grid

import (
	"iter"

	"github.com/katalvlaran/itergrid/seq"
)

// DiagFwd yields the top-left to bottom-right diagonal through (col,row):
//
//	x * *
//	* x *
//	* * x
//
// The anchor is (0,row-col) when row >= col and (col-row,0) otherwise.
//
// Preconditions (panic): 0 <= col < columns, row >= 0.
func (g *Grid[T]) DiagFwd(col, row int) iter.Seq[T] {
	g.mustColumn(ctxDiagFwd, col, col, row)
	mustRow(ctxDiagFwd, row, col, row)

	var anchorCol, anchorRow int
	if row >= col {
		anchorCol, anchorRow = 0, row-col
	} else {
		anchorCol, anchorRow = col-row, 0
	}

	return g.stride(g.offset(anchorCol, anchorRow), g.columns+1, g.columns-anchorCol)
}

// DiagBwd yields the top-right to bottom-left diagonal through (col,row):
//
//	* * x
//	* x *
//	x * *
//
// Cells on this diagonal share col+row = k. The anchor is (k,0) when k fits
// in the first row and (columns-1, k-(columns-1)) otherwise.
//
// Preconditions (panic): 0 <= col < columns, row >= 0.
func (g *Grid[T]) DiagBwd(col, row int) iter.Seq[T] {
	g.mustColumn(ctxDiagBwd, col, col, row)
	mustRow(ctxDiagBwd, row, col, row)

	var anchorCol, anchorRow int
	if k := col + row; k < g.columns {
		anchorCol, anchorRow = k, 0
	} else {
		anchorCol, anchorRow = g.columns-1, k-(g.columns-1)
	}
	// A single-column grid has a one-cell anti-diagonal; any positive step works.
	step := max(g.columns-1, 1)

	return g.stride(g.offset(anchorCol, anchorRow), step, anchorCol+1)
}

// stride yields at most count elements at offsets start, start+step, ...
func (g *Grid[T]) stride(start, step, count int) iter.Seq[T] {
	if g.acc == nil {
		return seq.Take(seq.StepBy(seq.Skip(g.seq, start), step), count)
	}
	acc := g.acc

	return func(yield func(T) bool) {
		for i, off := 0, start; i < count && off < acc.n; i, off = i+1, off+step {
			if !yield(acc.at(off)) {
				return
			}
		}
	}
}
