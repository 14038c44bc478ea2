package placement

import (
	"testing"

	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func TestGrowWidensForMultiplePorts(t *testing.T) {
	g := graph.New()
	n, err := g.AddNode("hub")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		other, err := g.AddNode("leaf")
		require.NoError(t, err)
		e, err := g.AddEdge(n.ID(), other.ID())
		require.NoError(t, err)
		require.NoError(t, g.SetEdgeAttribute(e.ID(), "start", "south"))
	}
	r := direction.NewResolver(g)
	require.NoError(t, Grow(g, r, n.ID()))
	cx, _ := n.Size()
	require.GreaterOrEqual(t, cx, 3)
}

func TestGrowNoopWithoutPinnedPorts(t *testing.T) {
	g := graph.New()
	n, err := g.AddNode("solo")
	require.NoError(t, err)
	r := direction.NewResolver(g)
	require.NoError(t, Grow(g, r, n.ID()))
	cx, cy := n.Size()
	require.Equal(t, 1, cx)
	require.Equal(t, 1, cy)
}

func TestGrowErrorsWhenAlreadyPlaced(t *testing.T) {
	g := graph.New()
	n, err := g.AddNode("placed")
	require.NoError(t, err)
	require.NoError(t, g.PlaceNode(n.ID(), 0, 0))
	r := direction.NewResolver(g)
	require.Error(t, Grow(g, r, n.ID()))
}
