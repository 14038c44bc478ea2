package layout

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("b")
	require.NoError(t, err)
	c, err := g.AddNode("c")
	require.NoError(t, err)
	_, err = g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	_, err = g.AddEdge(b.ID(), c.ID())
	require.NoError(t, err)
	_, err = g.AddEdge(a.ID(), c.ID())
	require.NoError(t, err)
	return g
}

func TestEngineRunProducesFullLayout(t *testing.T) {
	g := buildTriangle(t)
	var buf bytes.Buffer
	eng := New(g, WithLogOutput(&buf), WithDebug(true))

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	for _, n := range g.Nodes() {
		_, _, placed := n.Position()
		require.True(t, placed)
	}
	for _, e := range g.Edges() {
		require.NotEmpty(t, e.Cells())
	}
	require.NotEmpty(t, buf.String())
}

func TestEngineRunWithoutDebugIsSilent(t *testing.T) {
	g := buildTriangle(t)
	var buf bytes.Buffer
	eng := New(g, WithLogOutput(&buf), WithDebug(false))
	_, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestEngineHonoursTinyTimeout(t *testing.T) {
	g := buildTriangle(t)
	eng := New(g, WithTimeout(time.Nanosecond))
	_, err := eng.Run(context.Background())
	require.Error(t, err)
}

func TestEngineRejectsForceLayoutType(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.SetGraphAttribute("type", "force"))
	eng := New(g)
	_, err := eng.Run(context.Background())
	require.ErrorIs(t, err, ErrForceLayoutUnimplemented)
}
