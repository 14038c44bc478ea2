package graph

// AddGroup creates or returns the named group.
func (g *Graph) AddGroup(name string) (*Group, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if id, ok := g.groupNames[name]; ok {
		return g.groups[id], nil
	}
	if _, ok := g.nodeNames[name]; ok {
		return nil, ErrDuplicateName
	}
	grp := &Group{
		id:      g.nextGroup(),
		name:    name,
		members: make(map[NodeID]struct{}),
		attrs:   make(map[string]attrValue),
	}
	g.groups[grp.id] = grp
	g.groupNames[name] = grp.id
	g.touch()
	return grp, nil
}

// SetGroupParent nests child inside parent.
func (g *Graph) SetGroupParent(child, parent GroupID) error {
	c, ok := g.groups[child]
	if !ok {
		return ErrGroupNotFound
	}
	if _, ok := g.groups[parent]; !ok {
		return ErrGroupNotFound
	}
	c.hasParent = true
	c.parent = parent
	g.touch()
	return nil
}

// AddNodeToGroup makes n a member of grp, removing it from any previous
// group first.
func (g *Graph) AddNodeToGroup(node NodeID, group GroupID) error {
	n, ok := g.nodes[node]
	if !ok {
		return ErrNodeNotFound
	}
	grp, ok := g.groups[group]
	if !ok {
		return ErrGroupNotFound
	}
	if n.hasGroup {
		if old, ok := g.groups[n.group]; ok {
			delete(old.members, node)
		}
	}
	grp.members[node] = struct{}{}
	n.hasGroup = true
	n.group = group
	g.touch()
	return nil
}

// Groups returns every group, in id order.
func (g *Graph) Groups() []*Group {
	out := make([]*Group, 0, len(g.groups))
	for _, grp := range g.groups {
		out = append(out, grp)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].id > out[j].id; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// SetGroupCells installs the boundary cell set splice computed for grp and
// claims them in the cell map (cells must currently be free).
func (g *Graph) SetGroupCells(group GroupID, cells map[Coord]GroupSide) error {
	grp, ok := g.groups[group]
	if !ok {
		return ErrGroupNotFound
	}
	for c := range cells {
		if !g.Free(c) {
			return ErrInternal
		}
	}
	for c, sides := range cells {
		g.placeCellRef(c, CellRef{Kind: CellGroupKind, Group: group})
		_ = sides
	}
	grp.cells = cells
	g.touch()
	return nil
}

// SetGroupAnchor records the label-anchor cell splice picked for grp.
func (g *Graph) SetGroupAnchor(group GroupID, c Coord) error {
	grp, ok := g.groups[group]
	if !ok {
		return ErrGroupNotFound
	}
	grp.anchor = c
	grp.hasAnchor = true
	return nil
}

// SameGroup reports whether a and b belong to the same (non-nil) group.
func (g *Graph) SameGroup(a, b NodeID) bool {
	na, ok := g.nodes[a]
	if !ok || !na.hasGroup {
		return false
	}
	nb, ok := g.nodes[b]
	if !ok || !nb.hasGroup {
		return false
	}
	return na.group == nb.group
}
