package router

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

func stepEnterable(g *graph.Graph, c graph.Coord, exclude graph.EdgeID) bool {
	return g.Free(c) || g.Crossable(c, exclude)
}

// straightShortcut implements spec §4.6: if start and end share a row or
// column and every intervening cell is enterable, emit a plain HOR/VER run.
func straightShortcut(g *graph.Graph, req Request, start, end graph.Coord) ([]graph.EdgeCell, bool) {
	if start.X != end.X && start.Y != end.Y {
		return nil, false
	}
	var cells []graph.EdgeCell
	if start.Y == end.Y {
		lo, hi := start.X, end.X
		step := 1
		if lo > hi {
			step = -1
		}
		for x := lo; ; x += step {
			c := graph.Coord{X: x, Y: start.Y}
			if !stepEnterable(g, c, req.Exclude) {
				return nil, false
			}
			cells = append(cells, graph.EdgeCell{X: x, Y: start.Y, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}})
			if x == hi {
				break
			}
		}
	} else {
		lo, hi := start.Y, end.Y
		step := 1
		if lo > hi {
			step = -1
		}
		for y := lo; ; y += step {
			c := graph.Coord{X: start.X, Y: y}
			if !stepEnterable(g, c, req.Exclude) {
				return nil, false
			}
			cells = append(cells, graph.EdgeCell{X: start.X, Y: y, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Ver}})
			if y == hi {
				break
			}
		}
	}
	if len(cells) > 0 {
		cells[0].Type.Flags |= celltype.Label
	}
	return cells, true
}

// oneBendShortcut tries hor-then-ver, then ver-then-hor, emitting the
// correct corner type at the bend, spec §4.6.
func oneBendShortcut(g *graph.Graph, req Request, start, end graph.Coord) ([]graph.EdgeCell, bool) {
	if start.X == end.X || start.Y == end.Y {
		return nil, false
	}

	tryBend := func(bend graph.Coord) ([]graph.EdgeCell, bool) {
		leg1, ok := straightShortcut(g, req, start, bend)
		if !ok {
			return nil, false
		}
		leg2, ok := straightShortcut(g, req, bend, end)
		if !ok {
			return nil, false
		}
		base, err := celltype.Resolve(
			celltype.Point{X: leg1[max(0, len(leg1)-2)].X, Y: leg1[max(0, len(leg1)-2)].Y},
			celltype.Point{X: bend.X, Y: bend.Y},
			celltype.Point{X: leg2[min(1, len(leg2)-1)].X, Y: leg2[min(1, len(leg2)-1)].Y},
		)
		if err != nil {
			return nil, false
		}
		out := append([]graph.EdgeCell{}, leg1[:len(leg1)-1]...)
		bendCell := graph.EdgeCell{X: bend.X, Y: bend.Y, CX: 1, CY: 1, Type: celltype.Type{Base: base}}
		out = append(out, bendCell)
		out = append(out, leg2[1:]...)
		return out, true
	}

	horThenVer := graph.Coord{X: end.X, Y: start.Y}
	if cells, ok := tryBend(horThenVer); ok {
		return cells, true
	}
	verThenHor := graph.Coord{X: start.X, Y: end.Y}
	return tryBend(verThenHor)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// selfLoopShape emits one of the four fixed loop shapes depending on node
// flow, spec §4.6. The loop leaves and re-enters on the same side, bulging
// outward by two cells.
func selfLoopShape(side celltype.Side, anchor graph.Coord) []graph.EdgeCell {
	x, y := anchor.X, anchor.Y
	mk := func(dx, dy int, base celltype.Base) graph.EdgeCell {
		return graph.EdgeCell{X: x + dx, Y: y + dy, CX: 1, CY: 1, Type: celltype.Type{Base: base}}
	}
	var cells []graph.EdgeCell
	switch side {
	case celltype.North:
		cells = []graph.EdgeCell{
			mk(0, 0, celltype.NW), mk(0, -1, celltype.LoopNWS), mk(1, -1, celltype.LoopSWN),
			mk(1, 0, celltype.NE),
		}
	case celltype.South:
		cells = []graph.EdgeCell{
			mk(0, 0, celltype.SW), mk(0, 1, celltype.LoopESW), mk(1, 1, celltype.LoopWSE),
			mk(1, 0, celltype.SE),
		}
	case celltype.East:
		cells = []graph.EdgeCell{
			mk(0, 0, celltype.NE), mk(1, 0, celltype.LoopSWN), mk(1, 1, celltype.LoopWSE),
			mk(0, 1, celltype.SE),
		}
	default: // West
		cells = []graph.EdgeCell{
			mk(0, 0, celltype.NW), mk(-1, 0, celltype.LoopNWS), mk(-1, 1, celltype.LoopESW),
			mk(0, 1, celltype.SW),
		}
	}
	cells[0].Type.Flags |= celltype.Label
	return cells
}
