package router

import (
	"errors"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

// ErrUnrouteable is returned when every shortcut and the full A* search
// fail to connect the request's endpoints, spec §7 kind 6.
var ErrUnrouteable = errors.New("router: no path found between endpoints")

// MaxSteps bounds the A* search per spec §4.4 ("typically 2000000").
const MaxSteps = 2_000_000

const (
	costStep     = 1
	costBend     = 6
	costCrossing = 30
)

// Box is a node's footprint on the grid, the unit boundaryCells walks
// around.
type Box struct {
	X, Y   int
	CX, CY int
}

// Request describes one TraceEdge action's routing problem.
type Request struct {
	From, To           Box
	StartSide, EndSide celltype.Side
	Exclude            graph.EdgeID
	Bounds             graph.BBox
}

func sideDelta(s celltype.Side) (int, int) {
	switch s {
	case celltype.North:
		return 0, -1
	case celltype.South:
		return 0, 1
	case celltype.East:
		return 1, 0
	default:
		return -1, 0
	}
}

// anchor returns the box cell and the first cell outside it on side.
func anchor(b Box, side celltype.Side) (graph.Coord, graph.Coord) {
	dx, dy := sideDelta(side)
	midX := b.X + (b.CX-1)/2
	midY := b.Y + (b.CY-1)/2
	switch side {
	case celltype.North:
		return graph.Coord{X: midX, Y: b.Y}, graph.Coord{X: midX, Y: b.Y + dy}
	case celltype.South:
		return graph.Coord{X: midX, Y: b.Y + b.CY - 1}, graph.Coord{X: midX, Y: b.Y + b.CY - 1 + dy}
	case celltype.East:
		return graph.Coord{X: b.X + b.CX - 1, Y: midY}, graph.Coord{X: b.X + b.CX - 1 + dx, Y: midY}
	default:
		return graph.Coord{X: b.X, Y: midY}, graph.Coord{X: b.X + dx, Y: midY}
	}
}

func withinBounds(b graph.BBox, c graph.Coord) bool {
	if b.Empty {
		return true
	}
	return b.Contains(c)
}
