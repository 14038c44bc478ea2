package graph

import (
	"fmt"
	"sort"

	"github.com/nodegrid/manhattan/celltype"
)

// EdgeOption configures an Edge at creation time.
type EdgeOption func(*Edge)

// Bidirectional marks the edge as carrying arrowheads at both ends.
func Bidirectional() EdgeOption { return func(e *Edge) { e.bidirectional = true } }

// Undirected marks the edge as carrying no arrowheads.
func Undirected() EdgeOption { return func(e *Edge) { e.undirected = true } }

// AddEdge creates a new edge from->to (spec §4.1: duplicates are allowed,
// producing a multigraph). Both endpoints must already exist in this
// Graph; using a node id from another Graph is DuplicateIdentity (spec §7).
func (g *Graph) AddEdge(from, to NodeID, opts ...EdgeOption) (*Edge, error) {
	nf, ok := g.nodes[from]
	if !ok {
		return nil, fmt.Errorf("%w: edge.from", ErrCrossGraph)
	}
	nt, ok := g.nodes[to]
	if !ok {
		return nil, fmt.Errorf("%w: edge.to", ErrCrossGraph)
	}

	e := &Edge{
		id:    g.nextEdge(),
		from:  from,
		to:    to,
		attrs: make(map[string]attrValue),
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.id] = e
	nf.edges[e.id] = struct{}{}
	nt.edges[e.id] = struct{}{}
	g.touch()
	return e, nil
}

// AddEdgeOnce returns the first existing from->to edge if any, else
// behaves like AddEdge (spec §4.1).
func (g *Graph) AddEdgeOnce(from, to NodeID, opts ...EdgeOption) (*Edge, error) {
	if nf, ok := g.nodes[from]; ok {
		for eid := range nf.edges {
			e := g.edges[eid]
			if e.from == from && e.to == to {
				return e, nil
			}
		}
	}
	return g.AddEdge(from, to, opts...)
}

// DelEdge removes e and every cell it occupies.
func (g *Graph) DelEdge(id EdgeID) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	for _, cell := range e.cells {
		if ref, ok := g.cells[Coord{cell.X, cell.Y}]; ok && ref.Kind == CellEdgeKind && ref.Edge == id {
			g.clearCell(Coord{cell.X, cell.Y})
		}
	}
	if nf, ok := g.nodes[e.from]; ok {
		delete(nf.edges, id)
	}
	if nt, ok := g.nodes[e.to]; ok {
		delete(nt.edges, id)
	}
	delete(g.edges, id)
	g.touch()
	g.invalidateBBox()
	return nil
}

// Edges returns every edge, sorted by id ascending.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// CommitEdgeRoute stores the router's output as e's cell list (spec §4.6:
// "caller materialises EdgeCells, stores them in the cell map and appends
// them to the edge's cell list"). Each cell must land on an empty coord or
// one already holding a crossable HOR/VER cell of a *different* edge, in
// which case a CROSS/HOLE pair is created per spec §4.6/§8 invariant 5;
// any other collision is ErrInternal (a router bug).
func (g *Graph) CommitEdgeRoute(id EdgeID, cells []EdgeCell) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	if len(e.cells) != 0 {
		return ErrInternal
	}

	for i, cell := range cells {
		c := Coord{cell.X, cell.Y}
		if ref, occupied := g.cells[c]; occupied {
			if ref.Kind != CellEdgeKind || ref.Edge == id {
				return ErrInternal
			}
			other := g.edges[ref.Edge]
			if err := puncture(other, c); err != nil {
				return err
			}
			cells[i].Type.Base = celltype.Cross
			g.placeCellRef(c, CellRef{Kind: CellEdgeKind, Edge: id})
		} else {
			g.placeCellRef(c, CellRef{Kind: CellEdgeKind, Edge: id})
		}
	}
	e.cells = append(e.cells, cells...)
	g.touch()
	g.invalidateBBox()
	return nil
}

// puncture replaces other's cell at c with a HOLE, in place, preserving
// slice length and position (spec §4.6/§8 invariant 5).
func puncture(other *Edge, c Coord) error {
	for i := range other.cells {
		if other.cells[i].X == c.X && other.cells[i].Y == c.Y {
			if !other.cells[i].Type.Base.Crossable() {
				return ErrInternal
			}
			other.cells[i].Type = celltype.Type{Base: celltype.Hole}
			return nil
		}
	}
	return ErrInternal
}

// ReplaceEdgeCells overwrites e's entire cell list (used by optimize and
// splice, which rewrite cells wholesale rather than appending). The cell
// map is reconciled: old coordinates owned by e are released, new ones
// claimed.
func (g *Graph) ReplaceEdgeCells(id EdgeID, cells []EdgeCell) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	for _, old := range e.cells {
		c := Coord{old.X, old.Y}
		if ref, ok := g.cells[c]; ok && ref.Kind == CellEdgeKind && ref.Edge == id {
			g.clearCell(c)
		}
	}
	for _, cell := range cells {
		c := Coord{cell.X, cell.Y}
		if _, occupied := g.cells[c]; !occupied {
			g.placeCellRef(c, CellRef{Kind: CellEdgeKind, Edge: id})
		}
	}
	e.cells = cells
	g.touch()
	g.invalidateBBox()
	return nil
}
