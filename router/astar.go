package router

import (
	"container/heap"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

// astarItem is one entry of the open set, grounded on the dijkstra
// package's lazy-decrease-key pattern: stale entries are pushed rather
// than updated in place, then skipped on pop via the closed set.
type astarItem struct {
	c         graph.Coord
	f, g      int
	tiebreak  int
	fromDir   int // -1 none, else index into dirs of the move that reached c
	prevIndex int // not set by search; predecessors are tracked in a map there
}

type astarPQ []*astarItem

func (pq astarPQ) Len() int { return len(pq) }
func (pq astarPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].tiebreak < pq[j].tiebreak
}
func (pq astarPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *astarPQ) Push(x any)        { *pq = append(*pq, x.(*astarItem)) }
func (pq *astarPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

var dirs = [4]struct{ dx, dy int }{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

func manhattan(a, b graph.Coord) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// neighborDirs restricts moves out of an occupied crossable cell to the
// axis perpendicular to its own orientation, spec §4.6's
// "_astar_near_nodes": "you may cross a line but never slide along it".
func neighborDirs(g *graph.Graph, c graph.Coord) []int {
	base, occupied := cellBase(g, c)
	if !occupied {
		return []int{0, 1, 2, 3}
	}
	switch base {
	case celltype.Hor:
		return []int{0, 1} // only N/S
	case celltype.Ver:
		return []int{2, 3} // only E/W
	default:
		return []int{0, 1, 2, 3}
	}
}

func cellBase(g *graph.Graph, c graph.Coord) (celltype.Base, bool) {
	ref, ok := g.CellAt(c)
	if !ok || ref.Kind != graph.CellEdgeKind {
		return 0, false
	}
	e, ok := g.Edge(ref.Edge)
	if !ok {
		return 0, false
	}
	for _, cell := range e.Cells() {
		if cell.X == c.X && cell.Y == c.Y {
			return cell.Type.Base, true
		}
	}
	return 0, false
}

// search runs A* from start to goal, both of which must themselves be
// enterable (callers pass the first/last cell outside each node's
// boundary). Returns the path inclusive of both endpoints.
func search(g *graph.Graph, req Request, start, goal graph.Coord) ([]graph.Coord, bool) {
	if !stepEnterable(g, start, req.Exclude) || !stepEnterable(g, goal, req.Exclude) {
		return nil, false
	}

	type state struct {
		bestG int
		prev  graph.Coord
		hasPr bool
		dir   int
		done  bool
	}
	visited := make(map[graph.Coord]state)
	pq := make(astarPQ, 0, 64)
	heap.Init(&pq)

	tie := 0
	push := func(c graph.Coord, g, dir int) {
		tie++
		heap.Push(&pq, &astarItem{c: c, g: g, f: g + manhattan(c, goal), tiebreak: tie, fromDir: dir})
	}
	visited[start] = state{bestG: 0, hasPr: false, dir: -1}
	push(start, 0, -1)

	prevOf := make(map[graph.Coord]graph.Coord)
	dirOf := make(map[graph.Coord]int)

	steps := 0
	for pq.Len() > 0 {
		steps++
		if steps > MaxSteps {
			return nil, false
		}
		it := heap.Pop(&pq).(*astarItem)
		st := visited[it.c]
		if st.done {
			continue
		}
		if it.g > st.bestG {
			continue
		}
		st.done = true
		visited[it.c] = st

		if it.c == goal {
			return reconstruct(start, goal, prevOf), true
		}

		for _, di := range neighborDirs(g, it.c) {
			d := dirs[di]
			next := graph.Coord{X: it.c.X + d.dx, Y: it.c.Y + d.dy}
			if !withinBounds(req.Bounds, next) {
				continue
			}
			if next != goal && !stepEnterable(g, next, req.Exclude) {
				continue
			}
			step := costStep
			if it.dirKnown() && it.fromDir != di {
				step += costBend
			}
			if g.Crossable(next, req.Exclude) {
				step += costCrossing
			}
			ng := it.g + step
			nst, seen := visited[next]
			if seen && nst.done {
				continue
			}
			if !seen || ng < nst.bestG {
				visited[next] = state{bestG: ng, hasPr: true, dir: di}
				prevOf[next] = it.c
				dirOf[next] = di
				push(next, ng, di)
			}
		}
	}
	return nil, false
}

func (it *astarItem) dirKnown() bool { return it.fromDir >= 0 }

func reconstruct(start, goal graph.Coord, prevOf map[graph.Coord]graph.Coord) []graph.Coord {
	path := []graph.Coord{goal}
	cur := goal
	for cur != start {
		p, ok := prevOf[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
