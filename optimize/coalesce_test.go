package optimize

import (
	"testing"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func TestOptimizeCoalescesHorizontalRun(t *testing.T) {
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("b")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 4, 0))
	e, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, g.CommitEdgeRoute(e.ID(), []graph.EdgeCell{
		{X: 1, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}},
		{X: 2, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor, Flags: celltype.Label}},
		{X: 3, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}},
	}))

	require.NoError(t, Optimize(g))

	cells := e.Cells()
	require.Len(t, cells, 1)
	require.Equal(t, 1, cells[0].X)
	require.Equal(t, 3, cells[0].CX)
	require.True(t, cells[0].Type.Has(celltype.Label))
}

func TestOptimizeIsIdempotent(t *testing.T) {
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("b")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 3, 0))
	e, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, g.CommitEdgeRoute(e.ID(), []graph.EdgeCell{
		{X: 1, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}},
		{X: 2, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}},
	}))

	require.NoError(t, Optimize(g))
	first := append([]graph.EdgeCell(nil), e.Cells()...)
	require.NoError(t, Optimize(g))
	require.Equal(t, first, e.Cells())
}

func TestOptimizeLeavesDistinctOrientationsSeparate(t *testing.T) {
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("b")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 2, 2))
	e, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, g.CommitEdgeRoute(e.ID(), []graph.EdgeCell{
		{X: 1, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}},
		{X: 2, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.NE}},
		{X: 2, Y: 1, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Ver}},
	}))

	require.NoError(t, Optimize(g))
	require.Len(t, e.Cells(), 3)
}
