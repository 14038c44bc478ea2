package chain

import (
	"sort"

	"github.com/nodegrid/manhattan/graph"
)

// Chain is a maximal non-branching sequence of nodes, spec §4.3.
type Chain struct {
	ID    int
	Nodes []graph.NodeID
	Edges []graph.EdgeID
}

// Len returns the number of nodes in the chain, used to break ties when two
// sub-chains are merged (spec §4.3 step 3: "merge with the longest-measuring
// one").
func (c *Chain) Len() int { return len(c.Nodes) }

// Result is the output of Find: every discovered chain plus a lookup from
// node to the chain (and position within it) that claimed it.
type Result struct {
	Chains []*Chain
	Ranks  map[graph.NodeID]int

	chainOf map[graph.NodeID]int // index into Chains, -1 if none
}

// ChainOf returns the chain containing id, if any.
func (r *Result) ChainOf(id graph.NodeID) (*Chain, bool) {
	idx, ok := r.chainOf[id]
	if !ok || idx < 0 {
		return nil, false
	}
	return r.Chains[idx], true
}

// Find partitions g's nodes into chains, spec §4.3. The graph's own "root"
// attribute (raw_attribute(graph, "root") naming a node) is always tried
// first as a chain start.
func Find(g *graph.Graph) *Result {
	ranks := AssignRanks(g)
	nodes := g.Nodes()

	res := &Result{Ranks: ranks, chainOf: make(map[graph.NodeID]int, len(nodes))}
	for _, n := range nodes {
		res.chainOf[n.ID()] = -1
	}

	order := rootOrder(g, nodes, ranks)
	claimed := make(map[graph.NodeID]bool, len(nodes))

	for _, id := range order {
		if claimed[id] {
			continue
		}
		c := extendChain(g, id, claimed)
		idx := len(res.Chains)
		res.Chains = append(res.Chains, c)
		for _, nid := range c.Nodes {
			res.chainOf[nid] = idx
		}
	}

	return res
}

// rootOrder produces the candidate-root heap order of spec §4.3 step 2:
// the graph's "root" node first, then every node ordered by
// (abs rank, has-origin, has-predecessors, name).
func rootOrder(g *graph.Graph, nodes []*graph.Node, ranks map[graph.NodeID]int) []graph.NodeID {
	out := make([]graph.NodeID, 0, len(nodes))

	var rootID graph.NodeID
	haveRoot := false
	if v, ok := g.RawGraphAttribute("root"); ok && v.Str != "" {
		if n, ok := g.NodeByName(v.Str); ok {
			rootID = n.ID()
			haveRoot = true
			out = append(out, rootID)
		}
	}

	rest := make([]*graph.Node, 0, len(nodes))
	for _, n := range nodes {
		if haveRoot && n.ID() == rootID {
			continue
		}
		rest = append(rest, n)
	}

	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		ra, rb := absInt(ranks[a.ID()]), absInt(ranks[b.ID()])
		if ra != rb {
			return ra < rb
		}
		_, _, _, aOrig := a.Origin()
		_, _, _, bOrig := b.Origin()
		if aOrig != bOrig {
			return aOrig // has-origin sorts first
		}
		ap := incomingCount(g, a.ID()) > 0
		bp := incomingCount(g, b.ID()) > 0
		if ap != bp {
			return ap // has-predecessors sorts first
		}
		return a.Name() < b.Name()
	})
	for _, n := range rest {
		out = append(out, n.ID())
	}
	return out
}

// extendChain greedily grows a chain starting at root through unique
// successors, spec §4.3 step 3. Self-loops, duplicate multi-edges between
// the same pair, edges with an explicit port pin, and edges with an
// explicit flow attribute terminate extension at that node.
func extendChain(g *graph.Graph, root graph.NodeID, claimed map[graph.NodeID]bool) *Chain {
	c := &Chain{Nodes: []graph.NodeID{root}}
	claimed[root] = true
	cur := root

	for {
		next, eid, ok := uniqueSuccessor(g, cur, claimed)
		if !ok {
			break
		}
		c.Nodes = append(c.Nodes, next)
		c.Edges = append(c.Edges, eid)
		claimed[next] = true
		cur = next
	}
	return c
}

// uniqueSuccessor picks cur's sole eligible successor, or among several
// eligible candidates the one with the most total successors, breaking
// ties lexicographically by name (spec §4.3's determinism requirement).
func uniqueSuccessor(g *graph.Graph, cur graph.NodeID, claimed map[graph.NodeID]bool) (graph.NodeID, graph.EdgeID, bool) {
	type cand struct {
		node graph.NodeID
		edge graph.EdgeID
	}
	seenTarget := make(map[graph.NodeID]int)
	var candidates []cand

	for _, eid := range g.IncidentEdges(cur) {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		from, to := e.Endpoints()
		if from != cur || to == cur {
			continue // not outgoing, or a self-loop
		}
		if claimed[to] {
			continue
		}
		if _, pinned := g.RawEdgeAttribute(eid, "start"); pinned {
			continue
		}
		if _, pinned := g.RawEdgeAttribute(eid, "end"); pinned {
			continue
		}
		if _, hasFlow := g.RawEdgeAttribute(eid, "flow"); hasFlow {
			continue
		}
		seenTarget[to]++
		candidates = append(candidates, cand{node: to, edge: eid})
	}

	// Duplicate multi-edges to the same target terminate extension there.
	filtered := candidates[:0]
	for _, cd := range candidates {
		if seenTarget[cd.node] == 1 {
			filtered = append(filtered, cd)
		}
	}
	candidates = filtered

	if len(candidates) == 0 {
		return 0, 0, false
	}
	if len(candidates) == 1 {
		return candidates[0].node, candidates[0].edge, true
	}

	successors := func(id graph.NodeID) int {
		n := 0
		for _, eid := range g.IncidentEdges(id) {
			if e, ok := g.Edge(eid); ok {
				if from, _ := e.Endpoints(); from == id {
					n++
				}
			}
		}
		return n
	}
	sort.Slice(candidates, func(i, j int) bool {
		ni, _ := g.Node(candidates[i].node)
		nj, _ := g.Node(candidates[j].node)
		si, sj := successors(candidates[i].node), successors(candidates[j].node)
		if si != sj {
			return si > sj
		}
		return ni.Name() < nj.Name()
	})
	return candidates[0].node, candidates[0].edge, true
}
