// SPDX-License-Identifier: MIT

// Package grid: row, column and rectangular views.
//
// Row views are skip+take windows; column views are skip+step; column
// ranges filter the enumerated source by offset%columns. Slice-backed grids
// produce the same elements by direct indexing and hand the remapped access
// on to the derived grid, so views of views stay O(1)-indexable and writable.

package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/itergrid/seq"
)

// Row yields the columns consecutive elements of row, starting at offset
// row*columns. Fewer elements come out when the source ends inside the row,
// none when it ends before it.
//
// Preconditions (panic): row >= 0.
func (g *Grid[T]) Row(row int) iter.Seq[T] {
	mustRow(ctxRow, row, row)
	if g.columns <= 0 {
		return seq.Take(g.seq, 0)
	}

	return g.window(satMul(row, g.columns), g.columns)
}

// Col yields every columns-th element starting at offset col: one element
// per row present in the source.
//
// Preconditions (panic): 0 <= col < columns.
func (g *Grid[T]) Col(col int) iter.Seq[T] {
	g.mustColumn(ctxCol, col, col)
	if g.acc == nil {
		return seq.StepBy(seq.Skip(g.seq, col), g.columns)
	}
	acc, step := g.acc, g.columns

	return func(yield func(T) bool) {
		for i := col; i < acc.n; i += step {
			if !yield(acc.at(i)) {
				return
			}
		}
	}
}

// RowRange restricts the grid to the rows selected by b. An unbounded end
// means "until the source ends"; no row ceiling is enforced. The result
// keeps the column count and yields (end-start)*columns elements starting
// at start*columns.
//
// Preconditions (panic): b resolves against math.MaxInt (start >= 0, start <= end).
func (g *Grid[T]) RowRange(b Bounds) *Grid[T] {
	start, end, err := b.Resolve(math.MaxInt)
	if err != nil {
		panic(boundsErrorf(ctxRowRange, b, err))
	}
	columns := max(g.columns, 0)
	skip := satMul(start, columns)
	take := satMul(end-start, columns)

	rows := DefaultRows
	if g.rows != DefaultRows {
		rows = max(min(end, g.rows)-start, 0)
	}
	if g.acc != nil {
		acc := g.acc.window(skip, take)
		return &Grid[T]{columns: g.columns, rows: rows, seq: acc.values(), acc: acc}
	}

	return &Grid[T]{columns: g.columns, rows: rows, seq: seq.Take(seq.Skip(g.seq, skip), take)}
}

// ColRange restricts the grid to the columns selected by b. Membership is
// decided by offset%columns against the current column count; the result
// has end-start columns.
//
// Preconditions (panic): columns > 0; b resolves against columns (end <= columns).
func (g *Grid[T]) ColRange(b Bounds) *Grid[T] {
	if g.columns <= 0 {
		panic(boundsErrorf(ctxColRange, b, ErrInvalidColumns))
	}
	start, end, err := b.Resolve(g.columns)
	if err != nil {
		panic(boundsErrorf(ctxColRange, b, err))
	}
	columns, width := g.columns, end-start

	inRange := func(pos int, _ T) bool {
		c := pos % columns
		return c >= start && c < end
	}
	s := seq.Values(seq.Filter2(seq.Enumerate(g.seq), inRange))
	if g.acc == nil {
		return &Grid[T]{columns: width, rows: g.rows, seq: s}
	}

	// Full rows contribute width elements each; a partial last row only
	// those of its columns that fall inside [start,end).
	n := g.acc.n
	full, rem := n/columns, n%columns
	count := full*width + max(min(rem, end)-start, 0)
	acc := g.acc.remap(count, func(i int) int {
		return (i/width)*columns + start + i%width
	})

	return &Grid[T]{columns: width, rows: g.rows, seq: acc.values(), acc: acc}
}

// Sub restricts the grid to a rectangle: rows first, then columns. The
// order matters because ColRange computes membership against the current
// column count, which RowRange leaves untouched.
func (g *Grid[T]) Sub(cols, rows Bounds) *Grid[T] {
	return g.RowRange(rows).ColRange(cols)
}

// window yields take elements starting at offset skip.
func (g *Grid[T]) window(skip, take int) iter.Seq[T] {
	if g.acc != nil {
		return g.acc.window(skip, take).values()
	}

	return seq.Take(seq.Skip(g.seq, skip), take)
}

// window restricts the access to offsets [skip, skip+take), clamped to n.
func (a *access[T]) window(skip, take int) *access[T] {
	lo := min(skip, a.n)
	hi := a.n
	if take < a.n-lo {
		hi = lo + take
	}

	return a.remap(hi-lo, func(i int) int { return lo + i })
}

// boundsErrorf wraps err with the method tag and the offending bounds.
func boundsErrorf(method string, b Bounds, err error) error {
	return fmt.Errorf("Grid.%s(%s): %w", method, b, err)
}
