// Package gridgraph treats a flat grid.Grid of cells as a graph, enabling
// component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a rectangular grid.Grid[T] with a land predicate.
//   - Identifies connected components (“islands”) of land cells.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//   - NewGridGraph / From2D keep the [][]int entry point with a LandThreshold.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Parsed tables: regions of non-empty cells in delimited text.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:          O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (or a partial last row).
//   - ErrNilLand: New was called without a land predicate.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
