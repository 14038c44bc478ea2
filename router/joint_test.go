package router

import (
	"testing"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func TestRouteSharedPortUpgradesNeighbourToJoint(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	c, _ := g.AddNode("c")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 5, 0))
	require.NoError(t, g.PlaceNode(c.ID(), 1, 5))

	e1, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	e2, err := g.AddEdge(a.ID(), c.ID())
	require.NoError(t, err)

	req1 := Request{
		From: Box{X: 0, Y: 0, CX: 1, CY: 1}, To: Box{X: 5, Y: 0, CX: 1, CY: 1},
		StartSide: celltype.East, EndSide: celltype.West, Exclude: e1.ID(),
	}
	cells1, err := Route(g, req1, false, false, false)
	require.NoError(t, err)
	require.NoError(t, g.ReplaceEdgeCells(e1.ID(), cells1))

	req2 := Request{
		From: Box{X: 0, Y: 0, CX: 1, CY: 1}, To: Box{X: 1, Y: 5, CX: 1, CY: 1},
		StartSide: celltype.East, EndSide: celltype.North, Exclude: e2.ID(),
	}
	cells2, err := Route(g, req2, false, false, false)
	require.NoError(t, err)
	require.NotEmpty(t, cells2)
	require.Equal(t, celltype.Hole, cells2[0].Type.Base)

	e1After, ok := g.Edge(e1.ID())
	require.True(t, ok)
	require.Equal(t, celltype.JointMissing(celltype.North), e1After.Cells()[0].Type.Base)
}

func TestJointRefusesSameAxisBranch(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 5, 0))
	e1, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, g.ReplaceEdgeCells(e1.ID(), []graph.EdgeCell{
		{X: 1, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}},
	}))

	ok := Joint(g, e1.ID(), graph.Coord{X: 1, Y: 0}, celltype.East)
	require.False(t, ok)
}
