// Package graph implements the data model of spec §3-4.1 (component C1):
// Nodes, Edges, Groups, the sparse cell map, and attribute storage with
// class inheritance. It owns every object by id; all cross-references
// between Nodes/Edges/Groups are relations looked up by id, never pointers
// (spec §9's "bidirectional weak references" re-architecture note), so a
// Graph has no ownership cycles and two Graphs never share mutable state.
package graph

import (
	"sync/atomic"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph/attrs"
)

// NodeID, EdgeID and GroupID are monotonic, per-Graph identifiers (spec §9:
// "replace [the] global monotonic id counter... with an id generator owned
// by the Graph"). They are never reused within a Graph's lifetime, and each
// Graph draws them from its own range, so an id taken from another Graph
// names no object here.
type NodeID int64
type EdgeID int64
type GroupID int64

// Coord is an integer grid coordinate, the cell map's key type (spec §9:
// "replace [string-keyed maps] with (i32,i32) keys").
type Coord struct{ X, Y int }

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{c.X + dx, c.Y + dy} }

// Node is a vertex, spec §3. Anonymous is the "distinct subtype that
// carries a blank label and a fixed minimum size" — modelled as a flag
// rather than a separate Go type, since every other field is identical and
// a flag keeps the cell-map/placement code from needing a type switch.
type Node struct {
	id        NodeID
	name      string
	anonymous bool

	cx, cy int // size in cells, >= 1
	x, y   int
	placed bool

	hasGroup bool
	group    GroupID

	hasOrigin bool
	origin    NodeID
	dx, dy    int // offset from origin, meaningful only if hasOrigin

	attrs map[string]attrs.Value
	edges map[EdgeID]struct{} // incident edges, both directions
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Name returns the node's (unique within its Graph) name.
func (n *Node) Name() string { return n.name }

// Anonymous reports whether this node is an anonymous placeholder node.
func (n *Node) Anonymous() bool { return n.anonymous }

// Size returns the node's footprint in cells.
func (n *Node) Size() (cx, cy int) { return n.cx, n.cy }

// Position returns the node's top-left cell and whether it has been placed.
func (n *Node) Position() (x, y int, placed bool) { return n.x, n.y, n.placed }

// Group returns the node's containing group, if any.
func (n *Node) Group() (GroupID, bool) { return n.group, n.hasGroup }

// Origin returns the node this node is positioned relative to, if any, and
// the (dx,dy) offset from it.
func (n *Node) Origin() (NodeID, int, int, bool) { return n.origin, n.dx, n.dy, n.hasOrigin }

// EdgeIDs returns the ids of every edge incident to this node, in no
// particular order; callers needing determinism should sort, or use
// Graph.IncidentEdges which returns them pre-sorted.
func (n *Node) EdgeIDs() []EdgeID {
	out := make([]EdgeID, 0, len(n.edges))
	for id := range n.edges {
		out = append(out, id)
	}
	return out
}

// Degree returns the number of incident edges.
func (n *Node) Degree() int { return len(n.edges) }

// Edge is a connection between two nodes, spec §3.
type Edge struct {
	id   EdgeID
	from NodeID
	to   NodeID

	bidirectional bool
	undirected    bool

	attrs map[string]attrs.Value
	cells []EdgeCell
}

// ID returns the edge's identifier.
func (e *Edge) ID() EdgeID { return e.id }

// Endpoints returns the edge's from and to node ids.
func (e *Edge) Endpoints() (from, to NodeID) { return e.from, e.to }

// Bidirectional reports whether the edge was created with two arrowheads.
func (e *Edge) Bidirectional() bool { return e.bidirectional }

// Undirected reports whether the edge carries no arrowheads at all.
func (e *Edge) Undirected() bool { return e.undirected }

// Cells returns the edge's routed cell list in emission order. Empty until
// the router has run. Callers must not mutate the returned slice.
func (e *Edge) Cells() []EdgeCell { return e.cells }

// IsSelfLoop reports whether the edge's endpoints are identical.
func (e *Edge) IsSelfLoop() bool { return e.from == e.to }

// EdgeCell is one grid cell of a routed edge, spec §3.
type EdgeCell struct {
	X, Y   int
	CX, CY int // size after optimizer coalescing, >= 1
	Type   celltype.Type

	// CrossPerpStyle/CrossPerpColor hold the perpendicular edge's style and
	// colour when Type.Base == celltype.Cross, so the renderer can draw
	// both strokes without looking the other edge up.
	CrossPerpStyle string
	CrossPerpColor string
}

// GroupSide is a bitmask of which sides of a GroupCell touch the group's
// outer boundary (spec §4.8's gt/gb/gl/gr/ga/gi mask).
type GroupSide uint8

const (
	GroupTop GroupSide = 1 << iota
	GroupBottom
	GroupLeft
	GroupRight
)

// All reports whether every side is a boundary side (spec's "ga").
func (m GroupSide) All() bool { return m == GroupTop|GroupBottom|GroupLeft|GroupRight }

// Inner reports whether no side is a boundary side (spec's "gi").
func (m GroupSide) Inner() bool { return m == 0 }

// GroupCell is a filler cell painted around a Group's members during
// splice, spec §4.8.
type GroupCell struct {
	Coord Coord
	Sides GroupSide
}

// Group is a named or anonymous subgraph, spec §3.
type Group struct {
	id        GroupID
	name      string
	anonymous bool

	hasParent bool
	parent    GroupID

	members map[NodeID]struct{}
	attrs   map[string]attrs.Value

	cells map[Coord]GroupSide // populated by splice
	anchor Coord
	hasAnchor bool
}

// ID returns the group's identifier.
func (g *Group) ID() GroupID { return g.id }

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// Members returns the ids of the group's member nodes, in no particular
// order.
func (g *Group) Members() []NodeID {
	out := make([]NodeID, 0, len(g.members))
	for id := range g.members {
		out = append(out, id)
	}
	return out
}

// Parent returns the group's containing group, if any.
func (g *Group) Parent() (GroupID, bool) { return g.parent, g.hasParent }

// Cells returns the group's boundary cell set after splice; nil before it.
func (g *Group) Cells() map[Coord]GroupSide { return g.cells }

// Anchor returns the label-anchor cell chosen by splice (spec §4.8), and
// whether one has been computed yet.
func (g *Group) Anchor() (Coord, bool) { return g.anchor, g.hasAnchor }

// CellKind discriminates the tagged variant stored in a Graph's cell map
// (spec §9: "model as a tagged variant").
type CellKind uint8

const (
	CellNone CellKind = iota
	CellNodeKind
	CellNodeFillerKind
	CellEdgeKind
	CellGroupKind
)

// CellRef is one entry of the Graph's sparse cell map.
type CellRef struct {
	Kind CellKind

	Node NodeID // CellNodeKind (owning node is Node itself) / CellNodeFillerKind
	Edge EdgeID // CellEdgeKind
	Group GroupID // CellGroupKind
}

// Graph is the top-level container, spec §3. It exclusively owns every
// Node, Edge, Group and cell by id; it is not safe for concurrent use by
// multiple goroutines (spec §5: one Graph, one goroutine; lay out several
// disjoint Graphs concurrently instead, see layout.Batch).
type Graph struct {
	nextNodeID  int64
	nextEdgeID  int64
	nextGroupID int64

	nodes     map[NodeID]*Node
	nodeNames map[string]NodeID

	edges map[EdgeID]*Edge

	groups     map[GroupID]*Group
	groupNames map[string]GroupID

	cells map[Coord]CellRef

	schema      *attrs.Schema
	graphAttrs  map[string]attrs.Value
	classAttrs  map[string]map[string]attrs.Value // "node", "node.city", "edge", "group", ...

	score      *int
	scoreValid bool

	bbox      BBox
	bboxValid bool

	seed int64

	strict      bool
	fatalErrors bool

	catching bool
	warnings []error
	fatals   []error
}

func (g *Graph) nextNode() NodeID {
	return NodeID(atomic.AddInt64(&g.nextNodeID, 1))
}

func (g *Graph) nextEdge() EdgeID {
	return EdgeID(atomic.AddInt64(&g.nextEdgeID, 1))
}

func (g *Graph) nextGroup() GroupID {
	return GroupID(atomic.AddInt64(&g.nextGroupID, 1))
}
