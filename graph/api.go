package graph

import (
	"sync/atomic"

	"github.com/nodegrid/manhattan/graph/attrs"
)

// Option configures a Graph at construction time using the usual
// functional-options idiom.
type Option func(*Graph)

// WithStrict sets whether attribute errors are fatal (true, the default)
// or downgraded to warnings (false), spec §6.4/§7.
func WithStrict(strict bool) Option {
	return func(g *Graph) { g.strict = strict }
}

// WithFatalErrors sets whether fatal errors abort the current call (true,
// the default) or are only queued when catch mode is on, spec §6.4.
func WithFatalErrors(fatal bool) Option {
	return func(g *Graph) { g.fatalErrors = fatal }
}

// WithUndirected is sugar for setting the graph attribute undirected=1,
// spec §6.4.
func WithUndirected() Option {
	return func(g *Graph) { _ = g.setGraphAttributeValue("undirected", attrs.Value{Kind: attrs.KindBool, Int: 1}) }
}

// WithSeed fixes the Graph's RNG seed (spec §3: "the RNG seed" is part of
// the Graph's state; layout only consults it to break ties between
// equal-score randomized retries, spec §5).
func WithSeed(seed int64) Option {
	return func(g *Graph) { g.seed = seed }
}

// WithSchema overrides the default attribute schema (attrs.NewSchema()).
func WithSchema(s *attrs.Schema) Option {
	return func(g *Graph) { g.schema = s }
}

// graphSeq numbers Graphs so each one's id counters start in a range of
// their own.
var graphSeq int64

// New constructs an empty Graph. Defaults: strict=true, fatalErrors=true,
// directed edges, schema=attrs.NewSchema().
func New(opts ...Option) *Graph {
	base := atomic.AddInt64(&graphSeq, 1) << 32
	g := &Graph{
		nextNodeID:  base,
		nextEdgeID:  base,
		nextGroupID: base,
		nodes:      make(map[NodeID]*Node),
		nodeNames:  make(map[string]NodeID),
		edges:      make(map[EdgeID]*Edge),
		groups:     make(map[GroupID]*Group),
		groupNames: make(map[string]GroupID),
		cells:      make(map[Coord]CellRef),
		schema:     attrs.NewSchema(),
		graphAttrs: make(map[string]attrs.Value),
		classAttrs: make(map[string]map[string]attrs.Value),
		strict:     true,
		fatalErrors: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// GroupCount returns the number of groups in the graph.
func (g *Graph) GroupCount() int { return len(g.groups) }

// Seed returns the graph's RNG seed.
func (g *Graph) Seed() int64 { return g.seed }

// Strict reports whether attribute errors are treated as fatal.
func (g *Graph) Strict() bool { return g.strict }

// Node looks up a node by id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeByName looks up a node by name.
func (g *Graph) NodeByName(name string) (*Node, bool) {
	id, ok := g.nodeNames[name]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// Edge looks up an edge by id.
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Group looks up a group by id.
func (g *Graph) Group(id GroupID) (*Group, bool) {
	grp, ok := g.groups[id]
	return grp, ok
}

// GroupByName looks up a group by name.
func (g *Graph) GroupByName(name string) (*Group, bool) {
	id, ok := g.groupNames[name]
	if !ok {
		return nil, false
	}
	return g.groups[id], true
}
