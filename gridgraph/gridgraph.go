package gridgraph

import (
	"iter"

	"github.com/katalvlaran/itergrid/grid"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New builds a GridGraph over cells, classifying each cell with land.
// Sequence-backed grids are collected once so lookups run in O(1).
// Returns ErrNilLand if land is nil, ErrEmptyGrid if the grid has no columns
// or no cells, ErrNonRectangular if the last row is partial.
// Complexity: O(1) for slice-backed grids, O(W×H) otherwise.
func New[T any](cells *grid.Grid[T], land func(T) bool, conn Connectivity) (*GridGraph[T], error) {
	if land == nil {
		return nil, ErrNilLand
	}
	if cells == nil || cells.Columns() <= 0 {
		return nil, ErrEmptyGrid
	}
	if !cells.Indexable() {
		cells = cells.Collect()
	}
	n, _ := cells.Len()
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	w := cells.Columns()
	if n%w != 0 {
		return nil, ErrNonRectangular
	}

	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph[T]{
		Width:           w,
		Height:          n / w,
		Conn:            conn,
		cells:           cells,
		land:            land,
		neighborOffsets: offsets,
	}, nil
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It copies the input into one flat row-major buffer.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph[int], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	buf := make([]int, 0, w*h)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		buf = append(buf, row...)
	}
	threshold := opts.LandThreshold

	return New(grid.FromSlice(buf, w, grid.WithRows(h)), func(v int) bool { return v >= threshold }, opts.Conn)
}

// From2D is NewGridGraph with LandThreshold=1 and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph[int], error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// Cells returns the underlying grid.
func (gg *GridGraph[T]) Cells() *grid.Grid[T] { return gg.cells }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Value returns the cell at (x,y), or false outside the grid.
func (gg *GridGraph[T]) Value(x, y int) (T, bool) {
	if !gg.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return gg.cells.Get(x, y)
}

// IsLand reports whether (x,y) is inside the grid and classified as land.
func (gg *GridGraph[T]) IsLand(x, y int) bool {
	v, ok := gg.Value(x, y)

	return ok && gg.land(v)
}

// NeighborOffsets returns the precomputed neighbor offsets for gg.Conn.
// Complexity: O(1).
func (gg *GridGraph[T]) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors yields the in-bounds neighbors of (x,y) in offset order.
func (gg *GridGraph[T]) Neighbors(x, y int) iter.Seq[grid.Coord] {
	return func(yield func(grid.Coord) bool) {
		for _, d := range gg.neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gg.InBounds(nx, ny) {
				continue
			}
			if !yield(grid.Coord{Col: nx, Row: ny}) {
				return
			}
		}
	}
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph[T]) index(x, y int) int {
	return gg.cells.IndexToFlat(x, y)
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) (x, y int) {
	return gg.cells.IndexFromFlat(idx)
}
