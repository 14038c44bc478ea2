package router

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

// tryPortJoint implements spec §4.6 "Joint creation". Placement's shared-
// port step lines a sibling node up beyond whichever neighbour already
// occupies a node's port, so the new edge's anchor cell often lands
// exactly on a cell a sibling edge already owns. Rather than fail (the
// cell is occupied) or draw a second, visually duplicate cell on top of
// it, the router taps into the existing cell: it is upgraded into a
// three-way joint carrying the new edge's branch direction, and the new
// edge records a HOLE placeholder at that coordinate so its own cell list
// still has one entry per grid step ("the joint carries a HOLE placeholder
// in the second edge's cell list so lengths still match"). It reports the
// coordinate routing should actually resume from: one step past the
// joint, in the branch direction.
func tryPortJoint(g *graph.Graph, at, towards graph.Coord, exclude graph.EdgeID) (graph.EdgeCell, graph.Coord, bool) {
	ref, ok := g.CellAt(at)
	if !ok || ref.Kind != graph.CellEdgeKind || ref.Edge == exclude {
		return graph.EdgeCell{}, graph.Coord{}, false
	}

	branch := branchSide(at, towards)
	if !Joint(g, ref.Edge, at, branch) {
		return graph.EdgeCell{}, graph.Coord{}, false
	}

	dx, dy := sideDelta(branch)
	next := graph.Coord{X: at.X + dx, Y: at.Y + dy}
	hole := graph.EdgeCell{X: at.X, Y: at.Y, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hole}}
	return hole, next, true
}

// Joint upgrades the cell neighbourEdge owns at c into a three-way joint
// that adds branch as a new connection, spec §4.7's Joint* bases. It
// reports false (no mutation) when c's existing shape is not a plain
// straight/corner cell, or branch is already one of its two sides — a
// second joint on an already-joined cell is outside this pass's scope.
func Joint(g *graph.Graph, neighbourEdge graph.EdgeID, c graph.Coord, branch celltype.Side) bool {
	e, ok := g.Edge(neighbourEdge)
	if !ok {
		return false
	}
	cells := e.Cells()
	idx := -1
	for i, cell := range cells {
		if cell.X == c.X && cell.Y == c.Y {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	a, b, ok := baseSides(cells[idx].Type.Base)
	if !ok || a == branch || b == branch {
		return false
	}

	updated := append([]graph.EdgeCell(nil), cells...)
	updated[idx].Type.Base = celltype.JointMissing(fourthSide(a, b, branch))
	return g.ReplaceEdgeCells(neighbourEdge, updated) == nil
}

// baseSides returns the two sides a straight or corner cell connects.
func baseSides(b celltype.Base) (celltype.Side, celltype.Side, bool) {
	switch b {
	case celltype.Hor:
		return celltype.East, celltype.West, true
	case celltype.Ver:
		return celltype.North, celltype.South, true
	case celltype.NE:
		return celltype.North, celltype.East, true
	case celltype.NW:
		return celltype.North, celltype.West, true
	case celltype.SE:
		return celltype.South, celltype.East, true
	case celltype.SW:
		return celltype.South, celltype.West, true
	default:
		return 0, 0, false
	}
}

var cardinalSides = [4]celltype.Side{celltype.North, celltype.East, celltype.South, celltype.West}

// fourthSide returns the one cardinal direction not among a, b, c.
func fourthSide(a, b, c celltype.Side) celltype.Side {
	for _, s := range cardinalSides {
		if s != a && s != b && s != c {
			return s
		}
	}
	return celltype.North
}

// branchSide picks the cardinal direction from at towards the far end,
// preferring whichever axis still has the larger remaining distance.
func branchSide(at, towards graph.Coord) celltype.Side {
	dx := towards.X - at.X
	dy := towards.Y - at.Y
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return celltype.East
		}
		return celltype.West
	}
	if dy >= 0 {
		return celltype.South
	}
	return celltype.North
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
