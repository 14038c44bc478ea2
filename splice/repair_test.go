package splice

import (
	"testing"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func TestRepairDoublesAndFillsGroups(t *testing.T) {
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	grp, err := g.AddGroup("g1")
	require.NoError(t, err)
	require.NoError(t, g.AddNodeToGroup(a.ID(), grp.ID()))

	require.NoError(t, Repair(g))

	x, y, placed := a.Position()
	require.True(t, placed)
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
	require.NotEmpty(t, grp.Cells())
}

func TestStubJointsFlagsNeighbourOfHole(t *testing.T) {
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("b")
	require.NoError(t, err)
	e, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, g.ReplaceEdgeCells(e.ID(), []graph.EdgeCell{
		{X: 0, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hole}},
		{X: 1, Y: 0, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}},
	}))

	require.NoError(t, stubJoints(g))

	updated, ok := g.Edge(e.ID())
	require.True(t, ok)
	require.True(t, updated.Cells()[1].Type.Has(celltype.Short))
}

func TestRepairNoGroupsIsFine(t *testing.T) {
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(a.ID(), 2, 2))
	require.NoError(t, Repair(g))
	x, y, _ := a.Position()
	require.Equal(t, 4, x)
	require.Equal(t, 4, y)
}
