// Package itergrid lets you look at any flat sequence as a 2-D grid and walk
// it by row, column, rectangle or diagonal without copying a thing.
//
// 🚀 What is itergrid?
//
//	A small generic toolkit built on Go's range-over-func iterators:
//		• grid: attach a column count to an iter.Seq or a slice and get
//		  Row, Col, RowRange, ColRange, Sub, DiagFwd, DiagBwd, Transpose
//		• seq: the lazy combinators the views are made of (Skip, Take,
//		  StepBy, Filter, Enumerate, Concat, ...)
//		• matrix: a float64 Dense matrix stored in a grid, with gonum interop
//		• gridgraph: connected regions and cheapest bridges over a grid
//		• gridtext: delimited text in, delimited text out
//		• heatmap: render a numeric grid with gonum/plot
//
// ✨ Why itergrid?
//
//   - Lazy by default : views are sequences; nothing is materialized until asked
//   - O(1) when it can : slice-backed grids keep random access through views
//   - Writes go through : Refs and FromSlice views mutate the caller's buffer
//   - Fail fast : malformed coordinates panic with errors you can errors.Is
//
// Layout:
//
//	grid/      : Grid[T], Bounds, Coord, validators
//	seq/       : iterator combinators
//	matrix/    : Dense over grid.Grid[float64], gonum conversions
//	gridgraph/ : components and 0-1 BFS island expansion
//	gridtext/  : encoding/csv parse and write
//	heatmap/   : plotter.GridXYZ surface and rendering
//
// Quick ASCII example, a 5-column grid over 0..24:
//
//	 0  1  2  3  4
//	 5 [6  7] 8  9      Sub(Span(1,3), Span(1,3)) → 6 7 11 12
//	10 [11 12]13 14
//	15 16 17 18 19      DiagFwd(1,2) → 5 11 17 23
//	20 21 22 23 24      DiagBwd(3,2) → 9 13 17 21
//
//	go get github.com/katalvlaran/itergrid
package itergrid
