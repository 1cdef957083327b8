package gridgraph

import (
	"container/list"
	"math"
	"slices"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect any
// cell in component srcComp to any cell in component dstComp, as identified
// by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the sequence of cell-indices (row-major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell             → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	isDst := make([]bool, gg.Width*gg.Height)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}

	n := gg.Width * gg.Height
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if isDst[u] {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for nb := range gg.Neighbors(ux, uy) {
			v := gg.index(nb.Col, nb.Row)
			step := 1
			if gg.IsLand(nb.Col, nb.Row) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, dist[target], nil
}
