package planner

import "math"

// 4-connected (von Neumann) neighborhood: right, left, down, up
var neighborOffsets = [4][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

// --- Min-heap keyed by f-cost ---

type heapEntry struct {
	idx int     // Flat grid index (row*cols + col)
	f   float64 // g + heuristic
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].f <= (*h)[i].f {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].f < (*h)[left].f {
			smallest = right
		}
		if (*h)[i].f <= (*h)[smallest].f {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// manhattan returns the admissible heuristic between two cells: every cell
// cost is >= 1, so grid-unit Manhattan distance never overestimates
func manhattan(a, b Node) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}

// FindPath runs A* from start to goal over the cost map. Edge cost is the
// destination cell's cost. Returns the node sequence start..goal inclusive
// and ok=false when the search exhausts without reaching the goal, which a
// finite rectangular lattice cannot produce but callers must still handle.
func FindPath(costs *CostGrid, start, goal Node) (Path, bool) {
	g := costs.grid
	if !g.Contains(start) || !g.Contains(goal) {
		return nil, false
	}
	if start == goal {
		return Path{start}, true
	}

	size := g.Rows * g.Cols
	gScore := make([]float64, size)
	cameFrom := make([]int32, size)
	closed := make([]bool, size)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		cameFrom[i] = -1
	}

	startIdx := g.index(start)
	goalIdx := g.index(goal)
	gScore[startIdx] = 0

	open := make(minHeap, 0, size/8)
	open.push(heapEntry{idx: startIdx, f: manhattan(start, goal)})

	for len(open) > 0 {
		current := open.pop()
		if current.idx == goalIdx {
			return reconstruct(g, cameFrom, goalIdx), true
		}
		if closed[current.idx] {
			continue // Stale entry
		}
		closed[current.idx] = true

		node := Node{Row: current.idx / g.Cols, Col: current.idx % g.Cols}
		for _, off := range neighborOffsets {
			next := Node{Row: node.Row + off[0], Col: node.Col + off[1]}
			if !g.Contains(next) {
				continue
			}
			nextIdx := g.index(next)
			if closed[nextIdx] {
				continue
			}

			tentative := gScore[current.idx] + costs.cells[nextIdx]
			if tentative < gScore[nextIdx] {
				gScore[nextIdx] = tentative
				cameFrom[nextIdx] = int32(current.idx)
				open.push(heapEntry{idx: nextIdx, f: tentative + manhattan(next, goal)})
			}
		}
	}

	return nil, false
}

// reconstruct walks parent links from goal back to start
func reconstruct(g *Grid, cameFrom []int32, goalIdx int) Path {
	var rev []int
	for idx := goalIdx; idx != -1; idx = int(cameFrom[idx]) {
		rev = append(rev, idx)
	}

	path := make(Path, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = Node{Row: idx / g.Cols, Col: idx % g.Cols}
	}
	return path
}
