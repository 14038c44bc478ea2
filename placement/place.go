package placement

import (
	"errors"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
)

// ErrNoSlot is returned when every strategy in spec §4.5 fails to find a
// legal position for a node.
var ErrNoSlot = errors.New("placement: no legal slot found for node")

// Place picks grid coordinates for node id and calls Graph.PlaceNode,
// spec §4.5. parent, when non-nil, anchors the candidate search; edge, when
// non-nil, is the ChainNode action's edge and lets step 2 detect a shared
// start/end port; minlen is the edge's minlen attribute (distance to keep
// from the parent/neighbour).
func Place(g *graph.Graph, r *direction.Resolver, id graph.NodeID, parent *graph.NodeID, edge *graph.EdgeID, minlen int) error {
	n, ok := g.Node(id)
	if !ok {
		return graph.ErrNodeNotFound
	}
	cx, cy := n.Size()
	if minlen < 1 {
		minlen = 1
	}

	if v, ok := g.RawNodeAttribute(id, "rank"); ok {
		if x, y, found := rankAxisSlot(g, id, int(v.Int), cx, cy); found {
			return g.PlaceNode(id, x, y)
		}
	}

	if parent != nil {
		if pn, ok := g.Node(*parent); ok {
			if edge != nil {
				if px, py, found := trySharedPort(g, r, pn, id, *edge, cx, cy, minlen); found {
					return g.PlaceNode(id, px, py)
				}
			}
			if px, py, found := tryNearParent(g, r, pn, id, cx, cy, minlen); found {
				return g.PlaceNode(id, px, py)
			}
		}
	}

	if px, py, found := tryNearRelatives(g, r, id, cx, cy, minlen); found {
		return g.PlaceNode(id, px, py)
	}

	if px, py, found := fallbackSlot(g, cx, cy); found {
		return g.PlaceNode(id, px, py)
	}
	return ErrNoSlot
}

// portSide resolves the grid side edge leaves/enters anchor on: an explicit
// start/end pin wins, otherwise the node's resolved flow, mirroring
// schedule's own port resolution (schedule.Scheduler.edgeSide).
func portSide(g *graph.Graph, r *direction.Resolver, edge graph.EdgeID, anchor graph.NodeID) celltype.Side {
	attrName := "end"
	if e, ok := g.Edge(edge); ok {
		if from, _ := e.Endpoints(); from == anchor {
			attrName = "start"
		}
	}
	if v, ok := g.RawEdgeAttribute(edge, attrName); ok {
		switch v.Str {
		case "north":
			return celltype.North
		case "south":
			return celltype.South
		case "east":
			return celltype.East
		case "west":
			return celltype.West
		}
	}
	if attrName == "end" {
		return (r.NodeFlow(anchor) + direction.South).Side()
	}
	return r.NodeFlow(anchor).Side()
}

// trySharedPort implements spec §4.5 step 2: if id's edge leaves parent on
// the same side as another edge already connecting parent to a
// different, already-placed neighbour, id must fan out from that
// neighbour's box along the flow direction rather than ring-searching
// around parent directly — this is what lets the router's shared-port
// joint (see router.Joint) find every sibling lined up on one side.
func trySharedPort(g *graph.Graph, r *direction.Resolver, parent *graph.Node, id graph.NodeID, edge graph.EdgeID, cx, cy, minlen int) (int, int, bool) {
	mySide := portSide(g, r, edge, parent.ID())

	var sharer *graph.Node
	for _, eid := range g.IncidentEdges(parent.ID()) {
		if eid == edge {
			continue
		}
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		from, to := e.Endpoints()
		if from != parent.ID() && to != parent.ID() {
			continue
		}
		other := from
		if from == parent.ID() {
			other = to
		}
		if other == parent.ID() || other == id {
			continue
		}
		on, ok := g.Node(other)
		if !ok {
			continue
		}
		if _, _, placed := on.Position(); !placed {
			continue
		}
		if portSide(g, r, eid, parent.ID()) != mySide {
			continue
		}
		sharer = on
		break
	}
	if sharer == nil {
		return 0, 0, false
	}

	sb := nodeBox(sharer)
	flow := r.NodeFlow(parent.ID())
	for dist := minlen + 1; dist < minlen+256; dist++ {
		for _, c := range sideCandidates(sb, flow.Side(), dist, cx, cy) {
			if fits(g, id, c.x, c.y, cx, cy) {
				return c.x, c.y, true
			}
		}
	}
	return 0, 0, false
}

// rankAxisSlot implements spec §4.5 step 1: reuse the coordinate already
// used by another node of the same rank along the rank axis, walking
// outward until a free slot is found.
func rankAxisSlot(g *graph.Graph, id graph.NodeID, rank, cx, cy int) (int, int, bool) {
	for _, other := range g.Nodes() {
		if other.ID() == id {
			continue
		}
		v, ok := g.RawNodeAttribute(other.ID(), "rank")
		if !ok || int(v.Int) != rank {
			continue
		}
		ox, oy, placed := other.Position()
		if !placed {
			continue
		}
		for d := 0; d < 256; d++ {
			for _, sign := range []int{1, -1} {
				x, y := ox, oy+d*sign
				if fits(g, id, x, y, cx, cy) {
					return x, y, true
				}
				if d == 0 {
					break
				}
			}
		}
	}
	return 0, 0, false
}

type box struct{ x, y, cx, cy int }

func nodeBox(n *graph.Node) box {
	x, y, _ := n.Position()
	cx, cy := n.Size()
	return box{x, y, cx, cy}
}

// tryNearParent enumerates rings around the parent's box at distance
// minlen+1, rotated by the parent's flow, spec §4.5 step 3.
func tryNearParent(g *graph.Graph, r *direction.Resolver, parent *graph.Node, id graph.NodeID, cx, cy, minlen int) (int, int, bool) {
	pb := nodeBox(parent)
	flow := r.NodeFlow(parent.ID())
	dist := minlen + 1
	for _, side := range rotatedSides(flow.Side()) {
		for _, c := range sideCandidates(pb, side, dist, cx, cy) {
			if fits(g, id, c.x, c.y, cx, cy) {
				return c.x, c.y, true
			}
		}
	}
	return 0, 0, false
}

func rotatedSides(primary celltype.Side) []celltype.Side {
	all := []celltype.Side{celltype.North, celltype.East, celltype.South, celltype.West}
	out := make([]celltype.Side, 0, 4)
	out = append(out, primary)
	for _, s := range all {
		if s != primary {
			out = append(out, s)
		}
	}
	return out
}

func sideCandidates(b box, side celltype.Side, dist, cx, cy int) []struct{ x, y int } {
	var base struct{ x, y int }
	switch side {
	case celltype.North:
		base = struct{ x, y int }{b.x, b.y - dist - cy + 1}
	case celltype.South:
		base = struct{ x, y int }{b.x, b.y + b.cy - 1 + dist}
	case celltype.East:
		base = struct{ x, y int }{b.x + b.cx - 1 + dist, b.y}
	default:
		base = struct{ x, y int }{b.x - dist - cx + 1, b.y}
	}
	out := []struct{ x, y int }{base}
	perp := isVerticalSide(side)
	for step := 1; step <= 8; step++ {
		if perp {
			out = append(out, struct{ x, y int }{base.x + step, base.y}, struct{ x, y int }{base.x - step, base.y})
		} else {
			out = append(out, struct{ x, y int }{base.x, base.y + step}, struct{ x, y int }{base.x, base.y - step})
		}
	}
	return out
}

func isVerticalSide(s celltype.Side) bool { return s == celltype.North || s == celltype.South }

// tryNearRelatives implements spec §4.5 step 4: try near any already-placed
// predecessor or successor, at minlen and minlen+2.
func tryNearRelatives(g *graph.Graph, r *direction.Resolver, id graph.NodeID, cx, cy, minlen int) (int, int, bool) {
	for _, eid := range g.IncidentEdges(id) {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		from, to := e.Endpoints()
		other := from
		if from == id {
			other = to
		}
		if other == id {
			continue
		}
		on, ok := g.Node(other)
		if !ok {
			continue
		}
		if _, _, placed := on.Position(); !placed {
			continue
		}
		for _, d := range []int{minlen, minlen + 2} {
			if px, py, found := tryNearParent(g, r, on, id, cx, cy, d-1); found {
				return px, py, found
			}
		}
	}
	return 0, 0, false
}

// fallbackSlot implements spec §4.5 step 5: step down the origin column
// until an empty slot is found.
func fallbackSlot(g *graph.Graph, cx, cy int) (int, int, bool) {
	for y := 0; y < 4096; y++ {
		if fits(g, 0, 0, y*2, cx, cy) {
			return 0, y * 2, true
		}
	}
	return 0, 0, false
}

// fits reports whether a cx x cy block at (x,y) is free and would not
// corner-touch an unrelated node, spec §8 invariant 4.
func fits(g *graph.Graph, id graph.NodeID, x, y, cx, cy int) bool {
	for i := 0; i < cx; i++ {
		for j := 0; j < cy; j++ {
			if !g.Free(graph.Coord{X: x + i, Y: y + j}) {
				return false
			}
		}
	}
	for i := -1; i <= cx; i++ {
		for j := -1; j <= cy; j++ {
			onEdgeI := i == -1 || i == cx
			onEdgeJ := j == -1 || j == cy
			if !(onEdgeI && onEdgeJ) {
				continue // only diagonals, not the orthogonal border
			}
			ref, ok := g.CellAt(graph.Coord{X: x + i, Y: y + j})
			if !ok {
				continue
			}
			if ref.Kind == graph.CellNodeKind && ref.Node != id {
				return false
			}
			if ref.Kind == graph.CellNodeFillerKind && ref.Node != id {
				return false
			}
		}
	}
	return true
}
