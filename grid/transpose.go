// SPDX-License-Identifier: MIT

// Package grid: transposition.
//
// Row-major becomes column-major: column 0 drained top to bottom, then
// column 1, and so on. Transpose is lazy and replays the source once per
// column; IntoTranspose collects once and returns a slice-backed grid.

package grid

import (
	"iter"
	"slices"
)

// Transpose lazily yields the elements in column-major order by draining
// Col(0), Col(1), ... Col(columns-1) in turn. The source is iterated once per
// column, so it must be replayable; a grid with columns <= 0 yields nothing.
//
// Complexity: O(columns·n) pulls for sequence-backed grids, O(n) for
// slice-backed ones.
func (g *Grid[T]) Transpose() iter.Seq[T] {
	return func(yield func(T) bool) {
		for col := 0; col < g.columns; col++ {
			for v := range g.Col(col) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// IntoTranspose collects the source and returns a new slice-backed grid
// holding the transpose: the result has len/columns columns and columns rows.
//
// Preconditions (panic): columns > 0 (ErrInvalidColumns) and the length is a
// multiple of columns (ErrRaggedTranspose); ragged transposes are unsupported.
//
// Complexity: O(n) time, O(n) memory (one collected buffer for
// sequence-backed sources plus the result).
func (g *Grid[T]) IntoTranspose() *Grid[T] {
	if g.columns <= 0 {
		panic(gridErrorf(ctxIntoTranspose, ErrInvalidColumns, g.columns))
	}

	var n int
	var at func(int) T
	if g.acc != nil {
		n, at = g.acc.n, g.acc.at
	} else {
		buf := slices.Collect(g.seq)
		n, at = len(buf), func(i int) T { return buf[i] }
	}
	if err := ValidateTransposable(n, g.columns); err != nil {
		panic(gridErrorf(ctxIntoTranspose, err, n, g.columns))
	}

	rows := n / g.columns
	out := make([]T, n)
	var r, c, base int
	for r = 0; r < rows; r++ {
		base = r * g.columns
		for c = 0; c < g.columns; c++ {
			out[c*rows+r] = at(base + c) // (c,r) -> (r,c)
		}
	}

	return FromSlice(out, rows, WithRows(g.columns))
}
