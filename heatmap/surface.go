// SPDX-License-Identifier: MIT

package heatmap

import (
	"math"

	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/itergrid/grid"
)

var _ plotter.GridXYZ = (*Surface)(nil)

// Surface is a rectangular grid of float64 seen as a plotter.GridXYZ.
type Surface struct {
	cells      *grid.Grid[float64]
	cols, rows int
}

// NewSurface wraps g. Sequence-backed grids are collected once.
// Returns ErrEmptyGrid or ErrNotRectangular.
func NewSurface(g *grid.Grid[float64]) (*Surface, error) {
	if g == nil || g.Columns() <= 0 {
		return nil, ErrEmptyGrid
	}
	if !g.Indexable() {
		g = g.Collect()
	}
	n, _ := g.Len()
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	if n%g.Columns() != 0 {
		return nil, ErrNotRectangular
	}

	return &Surface{cells: g, cols: g.Columns(), rows: n / g.Columns()}, nil
}

// Dims returns the number of columns and rows.
func (s *Surface) Dims() (c, r int) { return s.cols, s.rows }

// Z returns the cell at column c, row r.
func (s *Surface) Z(c, r int) float64 {
	v, _ := s.cells.Get(c, r)
	return v
}

// X returns the coordinate of column c.
func (s *Surface) X(c int) float64 { return float64(c) }

// Y returns the coordinate of row r.
func (s *Surface) Y(r int) float64 { return float64(r) }

// Range returns the smallest and largest non-NaN values.
// ok is false when every cell is NaN.
func (s *Surface) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for v := range s.cells.All() {
		if math.IsNaN(v) {
			continue
		}
		lo, hi, ok = math.Min(lo, v), math.Max(hi, v), true
	}

	return lo, hi, ok
}
