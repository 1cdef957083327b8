// SPDX-License-Identifier: MIT
package grid_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/itergrid/grid"
	"github.com/katalvlaran/itergrid/seq"
)

// ExampleGrid_Sub cuts a 2×2 rectangle out of a 5×5 grid of 0..25.
func ExampleGrid_Sub() {
	g := grid.New(seq.Range(0, 25), 5)
	sub := g.Sub(grid.Span(1, 3), grid.Span(1, 3))
	fmt.Println(slices.Collect(sub.All()))

	// Output:
	// [6 7 11 12]
}

// ExampleGrid_DiagFwd shows both diagonals through nearby cells.
func ExampleGrid_DiagFwd() {
	g := grid.New(seq.Range(0, 25), 5)
	fmt.Println("fwd(1,2):", slices.Collect(g.DiagFwd(1, 2)))
	fmt.Println("bwd(3,2):", slices.Collect(g.DiagBwd(3, 2)))

	// Output:
	// fwd(1,2): [5 11 17 23]
	// bwd(3,2): [9 13 17 21]
}

// ExampleRefs zeroes column 3 of a flat buffer in place.
func ExampleRefs() {
	store := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	for p := range grid.Refs(store, 5).Col(3) {
		*p = 0
	}
	fmt.Println(store)

	// Output:
	// [1 2 3 0 5 6 7 8 0 10 11 12 13 0 15]
}

// ExampleGrid_IntoTranspose turns a 2×3 grid into a 3×2 grid.
func ExampleGrid_IntoTranspose() {
	g := grid.FromSlice([]string{"a", "b", "c", "d", "e", "f"}, 3)
	tr := g.IntoTranspose()
	for r := 0; r < 3; r++ {
		fmt.Println(slices.Collect(tr.Row(r)))
	}

	// Output:
	// [a d]
	// [b e]
	// [c f]
}
