package placement

import (
	"testing"

	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func TestPlaceNearParentFlowsEast(t *testing.T) {
	g := graph.New()
	parent, err := g.AddNode("parent")
	require.NoError(t, err)
	require.NoError(t, g.SetGraphAttribute("flow", "east"))
	require.NoError(t, g.PlaceNode(parent.ID(), 0, 0))

	child, err := g.AddNode("child")
	require.NoError(t, err)
	_, err = g.AddEdge(parent.ID(), child.ID())
	require.NoError(t, err)

	r := direction.NewResolver(g)
	pid := parent.ID()
	require.NoError(t, Place(g, r, child.ID(), &pid, nil, 1))

	x, y, placed := child.Position()
	require.True(t, placed)
	require.Greater(t, x, 0)
	require.Equal(t, 0, y)
}

func TestPlaceAvoidsOccupiedSlot(t *testing.T) {
	g := graph.New()
	parent, err := g.AddNode("parent")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(parent.ID(), 0, 0))

	blocker, err := g.AddNode("blocker")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(blocker.ID(), 2, 0))

	child, err := g.AddNode("child")
	require.NoError(t, err)
	_, err = g.AddEdge(parent.ID(), child.ID())
	require.NoError(t, err)

	r := direction.NewResolver(g)
	pid := parent.ID()
	require.NoError(t, Place(g, r, child.ID(), &pid, nil, 1))

	x, y, placed := child.Position()
	require.True(t, placed)
	require.False(t, x == 2 && y == 0)
}

func TestPlaceReusesRankAxis(t *testing.T) {
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	require.NoError(t, g.SetNodeAttribute(a.ID(), "rank", "3"))
	require.NoError(t, g.PlaceNode(a.ID(), 5, 0))

	b, err := g.AddNode("b")
	require.NoError(t, err)
	require.NoError(t, g.SetNodeAttribute(b.ID(), "rank", "3"))

	r := direction.NewResolver(g)
	require.NoError(t, Place(g, r, b.ID(), nil, nil, 1))

	x, _, placed := b.Position()
	require.True(t, placed)
	require.Equal(t, 5, x)
}

func TestPlaceSharedPortFansOutFromSibling(t *testing.T) {
	g := graph.New()
	parent, err := g.AddNode("parent")
	require.NoError(t, err)
	require.NoError(t, g.SetGraphAttribute("flow", "east"))
	require.NoError(t, g.PlaceNode(parent.ID(), 0, 0))
	pid := parent.ID()
	r := direction.NewResolver(g)

	sibling, err := g.AddNode("sibling")
	require.NoError(t, err)
	e1, err := g.AddEdge(parent.ID(), sibling.ID())
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAttribute(e1.ID(), "start", "east"))
	e1id := e1.ID()
	require.NoError(t, Place(g, r, sibling.ID(), &pid, &e1id, 1))
	sx, _, placed := sibling.Position()
	require.True(t, placed)

	child, err := g.AddNode("child")
	require.NoError(t, err)
	e2, err := g.AddEdge(parent.ID(), child.ID())
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAttribute(e2.ID(), "start", "east"))
	e2id := e2.ID()
	require.NoError(t, Place(g, r, child.ID(), &pid, &e2id, 1))

	cx, _, placed := child.Position()
	require.True(t, placed)
	// Sharing parent's east port with sibling means child must fan out
	// beyond sibling along the flow axis, not ring-search around parent.
	require.Greater(t, cx, sx)
}

func TestPlaceFallbackWithNoRelations(t *testing.T) {
	g := graph.New()
	n, err := g.AddNode("lonely")
	require.NoError(t, err)
	r := direction.NewResolver(g)
	require.NoError(t, Place(g, r, n.ID(), nil, nil, 1))
	_, _, placed := n.Position()
	require.True(t, placed)
}
