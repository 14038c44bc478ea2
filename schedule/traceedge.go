package schedule

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
	"github.com/nodegrid/manhattan/graph/attrs"
	"github.com/nodegrid/manhattan/router"
)

// traceEdge runs the TraceEdge action: route between the edge's
// already-placed endpoints and commit the resulting cells, spec §4.4/§4.6.
func (s *Scheduler) traceEdge(eid graph.EdgeID) (int, error) {
	e, ok := s.g.Edge(eid)
	if !ok {
		return 0, graph.ErrEdgeNotFound
	}
	from, to := e.Endpoints()
	fn, ok := s.g.Node(from)
	if !ok {
		return 0, graph.ErrNodeNotFound
	}
	tn, ok := s.g.Node(to)
	if !ok {
		return 0, graph.ErrNodeNotFound
	}

	startSide := s.edgeSide(eid, "start", from)
	endSide := s.edgeSide(eid, "end", to)

	req := router.Request{
		From:      boxOf(fn),
		To:        boxOf(tn),
		StartSide: startSide,
		EndSide:   endSide,
		Exclude:   eid,
		Bounds:    s.g.BoundingBox().Expand(16),
	}

	selfLoop := from == to
	cells, err := router.Route(s.g, req, selfLoop, e.Bidirectional(), e.Undirected())
	if err != nil {
		return 0, err
	}
	if err := s.g.ReplaceEdgeCells(eid, cells); err != nil {
		return 0, err
	}
	return len(cells), nil
}

func boxOf(n *graph.Node) router.Box {
	x, y, _ := n.Position()
	cx, cy := n.Size()
	return router.Box{X: x, Y: y, CX: cx, CY: cy}
}

// edgeSide resolves the grid side an edge must enter/leave a node on: an
// explicit port pin (start/end attribute) wins, otherwise it falls back to
// the node's resolved flow.
func (s *Scheduler) edgeSide(eid graph.EdgeID, attrName string, nodeID graph.NodeID) celltype.Side {
	if v, ok := s.g.RawEdgeAttribute(eid, attrName); ok {
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
	flow := s.r.NodeFlow(nodeID)
	if attrName == "start" {
		return flow.Side()
	}
	back := attrs.Value{Kind: attrs.KindFlow, Str: "back", Relative: true, Int: 180}
	return direction.AsSide(flow, back)
}
