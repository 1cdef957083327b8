// Package gridgraph defines core types and options for the gridgraph subpackage.
package gridgraph

import "github.com/katalvlaran/itergrid/grid"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for [][]int grids.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a rectangular grid as a graph. It is immutable once built
// as long as the caller does not write to a slice it attached via grid.FromSlice.
// Width and Height define dimensions; X is the column and Y the row.
type GridGraph[T any] struct {
	Width, Height   int
	Conn            Connectivity
	cells           *grid.Grid[T]
	land            func(T) bool
	neighborOffsets [][2]int
}
