package placement

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
	"github.com/nodegrid/manhattan/graph/attrs"
)

// Grow implements spec §4.5's "_grow": it counts port-restricted edges per
// side (with and without an explicit slot number) and enlarges the node's
// footprint until the free port count on the busiest side meets the number
// of edges that must attach there: north/south ports widen cx, east/west
// ports widen cy, whatever the node's flow.
// Must run before PlaceNode; it errors if the node is already placed.
func Grow(g *graph.Graph, r *direction.Resolver, id graph.NodeID) error {
	n, ok := g.Node(id)
	if !ok {
		return graph.ErrNodeNotFound
	}
	if _, _, placed := n.Position(); placed {
		return graph.ErrInternal
	}

	perSide := [4]int{}
	for _, eid := range g.IncidentEdges(id) {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		from, to := e.Endpoints()
		var portAttr string
		if from == id {
			portAttr = "start"
		} else if to == id {
			portAttr = "end"
		} else {
			continue
		}
		side, ok := portSide(g, eid, portAttr, r, id)
		if !ok {
			continue
		}
		perSide[side]++
	}

	cx, cy := n.Size()
	needVert := max2(perSide[celltype.North], perSide[celltype.South])
	needHoriz := max2(perSide[celltype.East], perSide[celltype.West])
	if needHoriz > cy {
		cy = needHoriz
	}
	if needVert > cx {
		cx = needVert
	}
	if cx == 0 {
		cx = 1
	}
	if cy == 0 {
		cy = 1
	}
	ocx, ocy := n.Size()
	if cx == ocx && cy == ocy {
		return nil
	}
	return g.SetNodeSize(id, cx, cy)
}

func portSide(g *graph.Graph, eid graph.EdgeID, attrName string, r *direction.Resolver, nodeID graph.NodeID) (celltype.Side, bool) {
	v, ok := g.RawEdgeAttribute(eid, attrName)
	if !ok {
		return 0, false
	}
	switch v.Str {
	case "north":
		return celltype.North, true
	case "south":
		return celltype.South, true
	case "east":
		return celltype.East, true
	case "west":
		return celltype.West, true
	default:
		// front/right/back/left turn relative to the node's flow.
		var turn int64
		switch v.Str {
		case "right":
			turn = 90
		case "back":
			turn = 180
		case "left":
			turn = 270
		}
		rel := attrs.Value{Kind: attrs.KindFlow, Int: turn, Relative: true}
		return direction.AsSide(r.NodeFlow(nodeID), rel), true
	}
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}
