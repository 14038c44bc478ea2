package direction

import (
	"github.com/nodegrid/manhattan/graph"
	"github.com/nodegrid/manhattan/graph/attrs"
)

// Resolver computes effective Node/Edge flow per spec §4.2, memoising
// results for the lifetime of one layout run. Deliberately not cached on
// Node/Edge themselves (spec §9 warns against mutable per-node caches that
// need invalidation tracking); a Resolver is cheap to build and is scoped
// to a single scheduler pass.
type Resolver struct {
	g        *graph.Graph
	memo     map[graph.NodeID]Flow
	visiting map[graph.NodeID]bool
}

// NewResolver builds a Resolver scoped to g.
func NewResolver(g *graph.Graph) *Resolver {
	return &Resolver{
		g:        g,
		memo:     make(map[graph.NodeID]Flow),
		visiting: make(map[graph.NodeID]bool),
	}
}

// GraphFlow returns the graph's own absolute flow (default east).
func (r *Resolver) GraphFlow() Flow {
	v := r.g.GraphAttribute("flow")
	if v.Kind != attrs.KindFlow {
		return East
	}
	return AsDirection(East, v)
}

// NodeFlow returns id's effective flow, spec §4.2's propagation rule:
// own absolute flow; else the first incoming edge carrying a flow; else
// any predecessor's flow; else the parent graph's flow; else east.
// A flow cycle short-circuits to the graph's absolute flow.
func (r *Resolver) NodeFlow(id graph.NodeID) Flow {
	if f, ok := r.memo[id]; ok {
		return f
	}
	if r.visiting[id] {
		return r.GraphFlow()
	}
	r.visiting[id] = true
	defer delete(r.visiting, id)

	f := r.nodeFlowUncached(id)
	r.memo[id] = f
	return f
}

func (r *Resolver) nodeFlowUncached(id graph.NodeID) Flow {
	v := r.g.NodeAttribute(id, "flow")
	if v.Kind == attrs.KindFlow && !v.Relative {
		return AsDirection(East, v)
	}

	base, ok := r.baseFlow(id)
	if !ok {
		base = r.GraphFlow()
	}
	if v.Kind == attrs.KindFlow {
		return AsDirection(base, v)
	}
	return base
}

// baseFlow implements the "first incoming edge that carries a flow, else
// any predecessor's flow" half of spec §4.2's propagation rule.
func (r *Resolver) baseFlow(id graph.NodeID) (Flow, bool) {
	incident := r.g.IncidentEdges(id)

	for _, eid := range incident {
		e, ok := r.g.Edge(eid)
		if !ok {
			continue
		}
		from, to := e.Endpoints()
		if to != id || from == id {
			continue
		}
		if _, ok := r.g.RawEdgeAttribute(eid, "flow"); ok {
			return r.EdgeFlow(eid), true
		}
	}

	for _, eid := range incident {
		e, ok := r.g.Edge(eid)
		if !ok {
			continue
		}
		from, to := e.Endpoints()
		if to != id || from == id {
			continue
		}
		return r.NodeFlow(from), true
	}

	return 0, false
}

// EdgeFlow returns id's effective flow, spec §4.2: its own attribute if
// set, else its from-node's flow.
func (r *Resolver) EdgeFlow(id graph.EdgeID) Flow {
	v, ok := r.g.RawEdgeAttribute(id, "flow")
	e, found := r.g.Edge(id)
	if !found {
		return r.GraphFlow()
	}
	from, _ := e.Endpoints()
	if !ok {
		return r.NodeFlow(from)
	}
	return AsDirection(r.NodeFlow(from), v)
}
