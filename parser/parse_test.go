package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleChain(t *testing.T) {
	src := "[A] -> [B] -> [C]\n"
	g, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, g.Nodes(), 3)
	require.Len(t, g.Edges(), 2)

	a, ok := g.NodeByName("A")
	require.True(t, ok)
	b, ok := g.NodeByName("B")
	require.True(t, ok)
	found := false
	for _, e := range g.Edges() {
		from, to := e.Endpoints()
		if from == a.ID() && to == b.ID() {
			found = true
		}
	}
	require.True(t, found)
}

func TestParseNodeAndEdgeAttributes(t *testing.T) {
	src := "[A]{color:red} -> {color:blue} [B]\n"
	g, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	a, ok := g.NodeByName("A")
	require.True(t, ok)
	require.Equal(t, "#ff0000", g.NodeAttribute(a.ID(), "color").Str)
	require.Len(t, g.Edges(), 1)
	require.Equal(t, "#0000ff", g.EdgeAttribute(g.Edges()[0].ID(), "color").Str)
}

func TestParseReusesExistingNode(t *testing.T) {
	src := "[A] -> [B]\n[B] -> [A]\n"
	g, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, g.Nodes(), 2)
	require.Len(t, g.Edges(), 2)
}

func TestParseRejectsDotDialect(t *testing.T) {
	src := "digraph G {\n  A -> B\n}\n"
	_, err := Parse(strings.NewReader(src))
	require.ErrorIs(t, err, ErrDialectUnsupported)
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	src := "# comment\n\n[A] -> [B]\n"
	g, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, g.Nodes(), 2)
}

func TestParseSyntaxError(t *testing.T) {
	src := "[A -> [B]\n"
	_, err := Parse(strings.NewReader(src))
	require.ErrorIs(t, err, ErrSyntax)
}
