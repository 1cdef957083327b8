package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// according to gg.Conn connectivity. Components are discovered in row-major
// order of their first cell; each is a slice of row-major cell indices in
// BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for at, v := range gg.cells.Cells() {
		if !gg.land(v) {
			continue // water
		}
		i0 := gg.index(at.Col, at.Row)
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			ux, uy := gg.Coordinate(u)
			for nb := range gg.Neighbors(ux, uy) {
				if !gg.IsLand(nb.Col, nb.Row) {
					continue
				}
				vi := gg.index(nb.Col, nb.Row)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
