package router

import (
	"testing"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func TestRouteStraightLine(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 5, 0))

	req := Request{
		From:      Box{X: 0, Y: 0, CX: 1, CY: 1},
		To:        Box{X: 5, Y: 0, CX: 1, CY: 1},
		StartSide: celltype.East,
		EndSide:   celltype.West,
	}
	cells, err := Route(g, req, false, false, false)
	require.NoError(t, err)
	require.NotEmpty(t, cells)
	for _, c := range cells {
		require.Equal(t, celltype.Hor, c.Type.Base)
	}
}

func TestRouteOneBend(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 5, 5))

	req := Request{
		From:      Box{X: 0, Y: 0, CX: 1, CY: 1},
		To:        Box{X: 5, Y: 5, CX: 1, CY: 1},
		StartSide: celltype.East,
		EndSide:   celltype.North,
	}
	cells, err := Route(g, req, false, false, false)
	require.NoError(t, err)
	require.NotEmpty(t, cells)
}

func TestRouteSelfLoop(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))

	req := Request{From: Box{X: 0, Y: 0, CX: 1, CY: 1}, To: Box{X: 0, Y: 0, CX: 1, CY: 1}, StartSide: celltype.East, EndSide: celltype.East}
	cells, err := Route(g, req, true, false, false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cells), 4)
}

func TestRouteAStarAroundObstacle(t *testing.T) {
	g := graph.New()
	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	wall, _ := g.AddNode("wall")
	require.NoError(t, g.PlaceNode(a.ID(), 0, 0))
	require.NoError(t, g.PlaceNode(b.ID(), 4, 0))
	require.NoError(t, g.SetNodeSize(wall.ID(), 1, 5))
	require.NoError(t, g.PlaceNode(wall.ID(), 2, -2))

	req := Request{
		From:      Box{X: 0, Y: 0, CX: 1, CY: 1},
		To:        Box{X: 4, Y: 0, CX: 1, CY: 1},
		StartSide: celltype.East,
		EndSide:   celltype.West,
		Bounds:    graph.BBox{MinX: -5, MinY: -5, MaxX: 10, MaxY: 10},
	}
	cells, err := Route(g, req, false, false, false)
	require.NoError(t, err)
	require.NotEmpty(t, cells)
	for _, c := range cells {
		require.NotEqual(t, graph.Coord{X: 2, Y: 0}, graph.Coord{X: c.X, Y: c.Y})
	}
}
