package optimize

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

// Optimize coalesces every edge's cell list in place, spec §4.9.
// Idempotent: a second call finds no further mergeable runs.
func Optimize(g *graph.Graph) error {
	for _, e := range g.Edges() {
		merged := coalesce(e.Cells())
		if err := g.SetOptimizedCells(e.ID(), merged); err != nil {
			return err
		}
	}
	return nil
}

// coalesce merges contiguous same-orientation HOR/VER runs. When two runs
// are adjacent in reverse coordinate order, the survivor moves to the
// earlier coordinate (spec §4.9's "move the survivor to the earlier
// coordinate").
func coalesce(cells []graph.EdgeCell) []graph.EdgeCell {
	if len(cells) == 0 {
		return cells
	}
	out := make([]graph.EdgeCell, 0, len(cells))
	cur := cells[0]
	for i := 1; i < len(cells); i++ {
		next := cells[i]
		if merged, ok := mergeRun(cur, next); ok {
			cur = merged
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}

// mergeRun merges b into a if they form a contiguous run of the same
// orientation, returning the merged cell.
func mergeRun(a, b graph.EdgeCell) (graph.EdgeCell, bool) {
	if a.Type.Base != b.Type.Base {
		return a, false
	}
	switch a.Type.Base {
	case celltype.Hor:
		if a.Y != b.Y {
			return a, false
		}
		switch {
		case b.X == a.X+a.CX:
			a.CX += b.CX
		case a.X == b.X+b.CX:
			a.X = b.X
			a.CX += b.CX
		default:
			return a, false
		}
	case celltype.Ver:
		if a.X != b.X {
			return a, false
		}
		switch {
		case b.Y == a.Y+a.CY:
			a.CY += b.CY
		case a.Y == b.Y+b.CY:
			a.Y = b.Y
			a.CY += b.CY
		default:
			return a, false
		}
	default:
		return a, false
	}
	a.Type.Flags |= b.Type.Flags
	return a, true
}
