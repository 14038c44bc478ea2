package direction

import (
	"testing"

	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func TestNodeFlowDefaultsToGraphFlow(t *testing.T) {
	g := graph.New()
	n, _ := g.AddNode("n")
	r := NewResolver(g)
	require.Equal(t, East, r.NodeFlow(n.ID()))
}

func TestNodeFlowOwnAbsoluteWins(t *testing.T) {
	g := graph.New()
	n, _ := g.AddNode("n")
	require.NoError(t, g.SetNodeAttribute(n.ID(), "flow", "south"))
	r := NewResolver(g)
	require.Equal(t, South, r.NodeFlow(n.ID()))
}

func TestNodeFlowInheritsFromPredecessor(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.SetNodeAttribute(a.ID(), "flow", "south"))
	_, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)

	r := NewResolver(g)
	require.Equal(t, South, r.NodeFlow(b.ID()))
}

func TestNodeFlowUsesEdgeFlowOverPlainPredecessor(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.SetNodeAttribute(a.ID(), "flow", "south"))
	e, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAttribute(e.ID(), "flow", "west"))

	r := NewResolver(g)
	require.Equal(t, West, r.NodeFlow(b.ID()))
}

func TestNodeFlowCycleShortCircuitsToGraphFlow(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	_, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	_, err = g.AddEdge(b.ID(), a.ID())
	require.NoError(t, err)

	r := NewResolver(g)
	require.Equal(t, East, r.NodeFlow(a.ID()))
}

func TestEdgeFlowFallsBackToFromNode(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.SetNodeAttribute(a.ID(), "flow", "south"))
	e, err := g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)

	r := NewResolver(g)
	require.Equal(t, South, r.EdgeFlow(e.ID()))
}
