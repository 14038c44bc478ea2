package router

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

// Route finds a cell path for req, trying the shortcuts of spec §4.6 before
// falling back to full A*. The returned cells are ready for
// Graph.CommitEdgeRoute: interior cells already carry their resolved
// corner/straight Base, and the end cell (plus the start cell for a
// bidirectional edge) carries arrow flags; undirected edges get none.
func Route(g *graph.Graph, req Request, selfLoop bool, bidirectional, undirected bool) ([]graph.EdgeCell, error) {
	if selfLoop {
		_, start := anchor(req.From, req.StartSide)
		cells := selfLoopShape(req.StartSide, start)
		applyEndpointArrows(cells, req, bidirectional, undirected)
		return cells, nil
	}

	_, start := anchor(req.From, req.StartSide)
	_, end := anchor(req.To, req.EndSide)

	startHole, start2, startJoined := tryPortJoint(g, start, end, req.Exclude)
	if startJoined {
		start = start2
	}
	endHole, end2, endJoined := tryPortJoint(g, end, start, req.Exclude)
	if endJoined {
		end = end2
	}

	cells, err := routeBetween(g, req, start, end)
	if err != nil {
		return nil, err
	}
	applyEndpointArrows(cells, req, bidirectional, undirected)

	if startJoined {
		cells = append([]graph.EdgeCell{startHole}, cells...)
	}
	if endJoined {
		cells = append(cells, endHole)
	}
	return cells, nil
}

// routeBetween runs the shortcuts of spec §4.6 before falling back to full
// A*, once start/end have already been adjusted for any shared-port joint.
func routeBetween(g *graph.Graph, req Request, start, end graph.Coord) ([]graph.EdgeCell, error) {
	if cells, ok := straightShortcut(g, req, start, end); ok {
		return cells, nil
	}
	if cells, ok := oneBendShortcut(g, req, start, end); ok {
		return cells, nil
	}
	path, ok := search(g, req, start, end)
	if !ok {
		return nil, ErrUnrouteable
	}
	return materialize(path), nil
}

// materialize turns a coordinate path into typed EdgeCells via
// celltype.Resolve, spec §4.7.
func materialize(path []graph.Coord) []graph.EdgeCell {
	cells := make([]graph.EdgeCell, len(path))
	for i, c := range path {
		var base celltype.Base
		switch {
		case len(path) == 1:
			base = celltype.Hor
		case i == 0:
			base = straightTowards(path[0], path[1])
		case i == len(path)-1:
			base = straightTowards(path[i-1], path[i])
		default:
			b, err := celltype.Resolve(
				celltype.Point{X: path[i-1].X, Y: path[i-1].Y},
				celltype.Point{X: path[i].X, Y: path[i].Y},
				celltype.Point{X: path[i+1].X, Y: path[i+1].Y},
			)
			if err != nil {
				b = celltype.Hor
			}
			base = b
		}
		cells[i] = graph.EdgeCell{X: c.X, Y: c.Y, CX: 1, CY: 1, Type: celltype.Type{Base: base}}
	}
	if len(cells) > 0 {
		cells[0].Type.Flags |= celltype.Label
	}
	return cells
}

func straightTowards(a, b graph.Coord) celltype.Base {
	if a.Y == b.Y {
		return celltype.Hor
	}
	return celltype.Ver
}

// applyEndpointArrows sets start/end arrow flags per spec §4.7: the router
// sets end flags on the last emitted cell and, for a bidirectional edge only,
// start flags on the first, the direction matching the side the edge
// enters/leaves on. An undirected edge gets no arrow flags.
func applyEndpointArrows(cells []graph.EdgeCell, req Request, bidirectional, undirected bool) {
	if len(cells) == 0 || undirected {
		return
	}
	cells[len(cells)-1].Type.Flags |= celltype.ArrowEnd(opposite(req.EndSide))
	if bidirectional {
		cells[0].Type.Flags |= celltype.ArrowStart(opposite(req.StartSide))
	}
}

func opposite(s celltype.Side) celltype.Side {
	switch s {
	case celltype.North:
		return celltype.South
	case celltype.South:
		return celltype.North
	case celltype.East:
		return celltype.West
	default:
		return celltype.East
	}
}
