package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddNodeIdempotent(t *testing.T) {
	g := New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("a")
	require.NoError(t, err)
	require.Equal(t, a.ID(), b.ID())
	require.Equal(t, 1, g.NodeCount())
}

func TestAddNodeEmptyName(t *testing.T) {
	g := New()
	_, err := g.AddNode("")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestAddNodeNameClashesWithGroup(t *testing.T) {
	g := New()
	_, err := g.AddGroup("x")
	require.NoError(t, err)
	_, err = g.AddNode("x")
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestAnonymousNodeDistinctNames(t *testing.T) {
	g := New()
	a := g.AddAnonymousNode()
	b := g.AddAnonymousNode()
	require.True(t, a.Anonymous())
	require.NotEqual(t, a.Name(), b.Name())
}

func TestDelNodeCascadesEdges(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	_, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.DelNode(a.ID()))
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 1, g.NodeCount())
}

func TestMergeNodesRebindsEdgesAndJoinsLabel(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	c, _ := g.AddNode("c")
	require.NoError(t, g.SetNodeAttribute(a.ID(), "label", "Alpha"))
	require.NoError(t, g.SetNodeAttribute(b.ID(), "label", "Beta"))
	_, err := g.AddEdge(b.ID(), c.ID())
	require.NoError(t, err)
	_, err = g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)

	require.NoError(t, g.MergeNodes(a.ID(), b.ID(), "/"))

	_, ok := g.Node(b.ID())
	require.False(t, ok)
	require.Equal(t, 1, g.EdgeCount())
	e := g.Edges()[0]
	from, to := e.Endpoints()
	require.Equal(t, a.ID(), from)
	require.Equal(t, c.ID(), to)
	require.Equal(t, "Alpha/Beta", g.NodeAttribute(a.ID(), "label").Str)
}

func TestMergeNodesSelf(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	require.ErrorIs(t, g.MergeNodes(a.ID(), a.ID(), ""), ErrSelfMerge)
}

func TestSetNodeSizeRejectsWhilePlaced(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.Error(t, g.SetNodeSize(a.ID(), 2, 2))
}

func TestPlaceNodeRejectsOverlap(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.Error(t, g.PlaceNode(b.ID(), 0, 0))
}

func TestUnplaceNodeFreesCells(t *testing.T) {
	g := New()
	a, _ := g.AddNode("a")
	require.NoError(t, g.PlaceNode(a.ID(), 2, 3))
	require.NoError(t, g.UnplaceNode(a.ID()))
	require.True(t, g.Free(Coord{2, 3}))
	x, y, placed := a.Position()
	require.False(t, placed)
	_ = x
	_ = y
}
