package graph

import (
	"testing"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeCrossGraphRejected(t *testing.T) {
	g1 := New()
	g2 := New()
	a, _ := g1.AddNode("a")
	b, _ := g2.AddNode("b")
	_, err := g1.AddEdge(a.ID(), b.ID())
	require.ErrorIs(t, err, ErrCrossGraph)
}

func TestAddEdgeOnceReturnsExisting(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	e1, err := g.AddEdgeOnce(a.ID(), b.ID())
	require.NoError(t, err)
	e2, err := g.AddEdgeOnce(a.ID(), b.ID())
	require.NoError(t, err)
	require.Equal(t, e1.ID(), e2.ID())
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeAllowsMultigraph(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	_, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	_, err = g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
}

func TestDelEdgeReleasesCells(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	e, _ := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, g.CommitEdgeRoute(e.ID(), []EdgeCell{
		{X: 1, Y: 0, Type: celltype.Type{Base: celltype.Hor}},
	}))
	require.False(t, g.Free(Coord{1, 0}))
	require.NoError(t, g.DelEdge(e.ID()))
	require.True(t, g.Free(Coord{1, 0}))
}

func TestCommitEdgeRouteCreatesCrossHolePair(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	c, _ := g.AddNode("c")
	d, _ := g.AddNode("d")
	e1, _ := g.AddEdge(a.ID(), b.ID())
	e2, _ := g.AddEdge(c.ID(), d.ID())

	require.NoError(t, g.CommitEdgeRoute(e1.ID(), []EdgeCell{
		{X: 5, Y: 5, Type: celltype.Type{Base: celltype.Hor}},
	}))
	require.NoError(t, g.CommitEdgeRoute(e2.ID(), []EdgeCell{
		{X: 5, Y: 5, Type: celltype.Type{Base: celltype.Ver}},
	}))

	ref, ok := g.CellAt(Coord{5, 5})
	require.True(t, ok)
	require.Equal(t, CellEdgeKind, ref.Kind)
	require.Equal(t, e2.ID(), ref.Edge)

	e2After, _ := g.Edge(e2.ID())
	require.Equal(t, celltype.Cross, e2After.Cells()[0].Type.Base)

	e1After, _ := g.Edge(e1.ID())
	require.Equal(t, celltype.Hole, e1After.Cells()[0].Type.Base)
}

func TestCommitEdgeRouteRejectsNonCrossableCollision(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.PlaceNode(a.ID(), 5, 5))
	e, _ := g.AddEdge(a.ID(), b.ID())
	err := g.CommitEdgeRoute(e.ID(), []EdgeCell{
		{X: 5, Y: 5, Type: celltype.Type{Base: celltype.Hor}},
	})
	require.ErrorIs(t, err, ErrInternal)
}

func TestReplaceEdgeCellsReconcilesMap(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	e, _ := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, g.CommitEdgeRoute(e.ID(), []EdgeCell{
		{X: 0, Y: 0, Type: celltype.Type{Base: celltype.Hor}},
	}))
	require.NoError(t, g.ReplaceEdgeCells(e.ID(), []EdgeCell{
		{X: 1, Y: 1, Type: celltype.Type{Base: celltype.Ver}},
	}))
	require.True(t, g.Free(Coord{0, 0}))
	require.False(t, g.Free(Coord{1, 1}))
}
