package graph

import "sort"

// AddNode creates or returns the node named name (spec §4.1: add_node is
// idempotent by name; it only fails when name already belongs to an
// incompatible object, i.e. a Group here since Edges/Cells aren't named).
func (g *Graph) AddNode(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if id, ok := g.nodeNames[name]; ok {
		return g.nodes[id], nil
	}
	if _, ok := g.groupNames[name]; ok {
		return nil, ErrDuplicateName
	}

	n := &Node{
		id:    g.nextNode(),
		name:  name,
		cx:    1,
		cy:    1,
		attrs: make(map[string]attrValue),
		edges: make(map[EdgeID]struct{}),
	}
	g.nodes[n.id] = n
	g.nodeNames[name] = n.id
	g.touch()
	return n, nil
}

// AddAnonymousNode creates a fresh anonymous node (spec §3: "a distinct
// subtype that carries a blank label and a fixed minimum size"). Anonymous
// nodes are named "#anon<id>" internally so every node still has a unique map
// key, but Anonymous() distinguishes them for placement/rendering.
func (g *Graph) AddAnonymousNode() *Node {
	id := g.nextNode()
	n := &Node{
		id:        id,
		name:      anonymousName(id),
		anonymous: true,
		cx:        1,
		cy:        1,
		attrs:     make(map[string]attrValue),
		edges:     make(map[EdgeID]struct{}),
	}
	g.nodes[id] = n
	g.nodeNames[n.name] = id
	g.touch()
	return n
}

func anonymousName(id NodeID) string {
	return "#anon" + itoa(int64(id))
}

// DelNode removes n, every edge incident to it, and its group membership,
// spec §4.1. O(deg(n)).
func (g *Graph) DelNode(id NodeID) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	for eid := range n.edges {
		_ = g.DelEdge(eid)
	}
	if n.placed {
		g.unoccupyNode(n)
	}
	if n.hasGroup {
		if grp, ok := g.groups[n.group]; ok {
			delete(grp.members, id)
		}
	}
	delete(g.nodes, id)
	delete(g.nodeNames, n.name)
	g.touch()
	return nil
}

// MergeNodes drops edges directly between a and b, rebinds every other
// incidence of b onto a, then deletes b, spec §4.1. If joiner is non-empty
// the nodes' label attributes are concatenated with joiner as separator.
func (g *Graph) MergeNodes(a, b NodeID, joiner string) error {
	if a == b {
		return ErrSelfMerge
	}
	na, ok := g.nodes[a]
	if !ok {
		return ErrNodeNotFound
	}
	nb, ok := g.nodes[b]
	if !ok {
		return ErrNodeNotFound
	}

	for eid := range nb.edges {
		e := g.edges[eid]
		if (e.from == a && e.to == b) || (e.from == b && e.to == a) {
			_ = g.DelEdge(eid)
			continue
		}
		if e.from == b {
			e.from = a
		}
		if e.to == b {
			e.to = a
		}
		na.edges[eid] = struct{}{}
		delete(nb.edges, eid)
	}

	if joiner != "" {
		la := g.rawAttr(na.attrs, "label")
		lb := g.rawAttr(nb.attrs, "label")
		if la != "" || lb != "" {
			na.attrs["label"] = attrValue{Kind: attrKindText, Str: la + joiner + lb}
		}
	}

	return g.DelNode(b)
}

func (g *Graph) rawAttr(m map[string]attrValue, name string) string {
	if v, ok := m[name]; ok {
		return v.Str
	}
	return ""
}

// Nodes returns every node, sorted by id ascending for determinism
// (spec §5: "all maps iterated during layout are iterated in a
// deterministic order").
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// IncidentEdges returns the ids of edges touching n, sorted ascending.
func (g *Graph) IncidentEdges(id NodeID) []EdgeID {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := n.EdgeIDs()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetNodeSize grows or shrinks a node's footprint (spec §4.5 "_grow").
// It is an error to give any node a size below 1x1 or to resize a placed
// node at all — callers must UnplaceNode first (placement always resizes
// before placing, never after).
func (g *Graph) SetNodeSize(id NodeID, cx, cy int) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	if cx < 1 || cy < 1 {
		return ErrInternal
	}
	if n.placed {
		return ErrInternal
	}
	n.cx, n.cy = cx, cy
	g.touch()
	return nil
}

// SetNodeOrigin records that n should be placed relative to origin, offset
// by (dx,dy), spec §3.
func (g *Graph) SetNodeOrigin(id, origin NodeID, dx, dy int) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[origin]; !ok {
		return ErrNodeNotFound
	}
	n.hasOrigin = true
	n.origin = origin
	n.dx, n.dy = dx, dy
	g.touch()
	return nil
}

// PlaceNode assigns n its top-left cell (x,y); every cell in
// [x,x+cx) x [y,y+cy) must be currently free. The origin cell gets a
// CellNodeKind entry, the remaining cx*cy-1 cells get CellNodeFillerKind
// entries (spec §3's "Node::Cell" filler), all pointing back to n's id.
func (g *Graph) PlaceNode(id NodeID, x, y int) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	if n.placed {
		return ErrInternal
	}
	for i := 0; i < n.cx; i++ {
		for j := 0; j < n.cy; j++ {
			if !g.Free(Coord{x + i, y + j}) {
				return ErrInternal
			}
		}
	}
	for i := 0; i < n.cx; i++ {
		for j := 0; j < n.cy; j++ {
			kind := CellNodeFillerKind
			if i == 0 && j == 0 {
				kind = CellNodeKind
			}
			g.placeCellRef(Coord{x + i, y + j}, CellRef{Kind: kind, Node: id})
		}
	}
	n.x, n.y = x, y
	n.placed = true
	g.touch()
	g.invalidateBBox()
	return nil
}

// UnplaceNode undoes PlaceNode (spec §4.4's "_unplace", used by the
// scheduler to retry a failed action).
func (g *Graph) UnplaceNode(id NodeID) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	if !n.placed {
		return nil
	}
	g.unoccupyNode(n)
	n.placed = false
	g.touch()
	g.invalidateBBox()
	return nil
}

func (g *Graph) unoccupyNode(n *Node) {
	for i := 0; i < n.cx; i++ {
		for j := 0; j < n.cy; j++ {
			g.clearCell(Coord{n.x + i, n.y + j})
		}
	}
}
