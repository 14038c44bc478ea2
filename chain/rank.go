package chain

import (
	"sort"

	"github.com/nodegrid/manhattan/graph"
)

// AssignRanks implements spec §4.3 step 1: user-specified ranks (the node's
// "rank" attribute, 1-based) are preserved as-is; every other node gets an
// auto-rank, a negative number that grows more negative with BFS depth from
// the graph's sources. Only the absolute value is meaningful for sorting.
func AssignRanks(g *graph.Graph) map[graph.NodeID]int {
	ranks := make(map[graph.NodeID]int, g.NodeCount())
	nodes := g.Nodes()

	for _, n := range nodes {
		if v, ok := g.RawNodeAttribute(n.ID(), "rank"); ok {
			ranks[n.ID()] = int(v.Int)
		}
	}

	sources := make([]graph.NodeID, 0)
	for _, n := range nodes {
		if incomingCount(g, n.ID()) == 0 {
			sources = append(sources, n.ID())
		}
	}
	if len(sources) == 0 && len(nodes) > 0 {
		sources = append(sources, nodes[0].ID())
	}
	sort.Slice(sources, func(i, j int) bool {
		ni, _ := g.Node(sources[i])
		nj, _ := g.Node(sources[j])
		return ni.Name() < nj.Name()
	})

	depth := make(map[graph.NodeID]int)
	queue := make([]graph.NodeID, 0, len(sources))
	for _, s := range sources {
		if _, done := depth[s]; !done {
			depth[s] = 0
			queue = append(queue, s)
		}
	}
	for i := 0; i < len(queue); i++ {
		id := queue[i]
		for _, eid := range g.IncidentEdges(id) {
			e, ok := g.Edge(eid)
			if !ok {
				continue
			}
			from, to := e.Endpoints()
			if from != id || to == id {
				continue
			}
			if _, seen := depth[to]; !seen {
				depth[to] = depth[id] + 1
				queue = append(queue, to)
			}
		}
	}
	for _, n := range nodes {
		if _, seen := depth[n.ID()]; !seen {
			depth[n.ID()] = 0
		}
	}

	for _, n := range nodes {
		if _, has := ranks[n.ID()]; has {
			continue
		}
		ranks[n.ID()] = -(depth[n.ID()] + 1)
	}
	return ranks
}

func incomingCount(g *graph.Graph, id graph.NodeID) int {
	count := 0
	for _, eid := range g.IncidentEdges(id) {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		from, to := e.Endpoints()
		if to == id && from != id {
			count++
		}
	}
	return count
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
