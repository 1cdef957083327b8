// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/itergrid/grid"
	"github.com/katalvlaran/itergrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water, 1,2,3 = different land/resource IDs
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - The 3 at (0,2) touches the 1 at (0,1), so IDs 1 and 3 merge.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	values := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(values, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland demonstrates computing the minimal
// water-cell conversions to connect two islands in the grid.
// The grid is a flat row-major buffer viewed through grid.FromSlice.
func ExampleGridGraph_ExpandIsland() {
	cells := grid.FromSlice([]int{1, 0, 0, 1}, 4)
	gg, _ := gridgraph.New(cells, func(v int) bool { return v > 0 }, gridgraph.Conn4)

	path, cost, _ := gg.ExpandIsland(0, 1)

	fmt.Printf("Convert %d water cells along path:\n", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Println()
	// Output:
	// Convert 2 water cells along path:
	// (0,0) (1,0) (2,0) (3,0)
}
