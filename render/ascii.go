package render

import (
	"bufio"
	"io"

	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

// renderASCII draws g onto a plain-text grid: node footprints as boxes
// with their name inside, edge cells as their line glyph, group cells as
// a faint boundary. Cell coordinates are shifted so the bounding box's
// top-left corner sits at (0,0).
func renderASCII(w io.Writer, g *graph.Graph) error {
	bb := g.BoundingBox()
	bw := bufio.NewWriter(w)
	if bb.Empty {
		return bw.Flush()
	}

	width := bb.MaxX - bb.MinX + 1
	for _, n := range g.Nodes() {
		x, _, placed := n.Position()
		if !placed {
			continue
		}
		cx, cy := n.Size()
		if cx == 1 && cy == 1 {
			if need := x - bb.MinX + len([]rune(n.Name())); need > width {
				width = need
			}
		}
	}
	c := newCanvas(width, bb.MaxY-bb.MinY+1)

	for _, grp := range g.Groups() {
		for coord, sides := range grp.Cells() {
			c.set(coord.X-bb.MinX, coord.Y-bb.MinY, groupGlyph(sides))
		}
	}
	for _, e := range g.Edges() {
		for _, cell := range e.Cells() {
			drawEdgeCell(c, bb.MinX, bb.MinY, cell)
		}
	}
	for _, n := range g.Nodes() {
		x, y, placed := n.Position()
		if !placed {
			continue
		}
		cx, cy := n.Size()
		drawNodeBox(c, x-bb.MinX, y-bb.MinY, cx, cy, n.Name())
	}

	c.writeTo(bw)
	return bw.Flush()
}

func drawEdgeCell(c *canvas, minX, minY int, cell graph.EdgeCell) {
	r, draw := edgeGlyph(cell.Type)
	if !draw {
		return
	}
	cx, cy := cell.CX, cell.CY
	if cx < 1 {
		cx = 1
	}
	if cy < 1 {
		cy = 1
	}
	for dx := 0; dx < cx; dx++ {
		for dy := 0; dy < cy; dy++ {
			c.set(cell.X-minX+dx, cell.Y-minY+dy, r)
		}
	}
}

// edgeGlyph maps a cell's Base to the ascii character it draws, letting an
// arrowhead flag override the plain line glyph. Hole is the invisible
// second half of a Cross and draws nothing.
func edgeGlyph(t celltype.Type) (rune, bool) {
	if t.Base == celltype.Hole {
		return ' ', false
	}
	if r, ok := arrowGlyph(t.Flags); ok {
		return r, true
	}
	switch t.Base {
	case celltype.Hor:
		return '-', true
	case celltype.Ver:
		return '|', true
	case celltype.Cross:
		return '+', true
	case celltype.NE, celltype.NW, celltype.SE, celltype.SW,
		celltype.JointSEW, celltype.JointNEW, celltype.JointENS, celltype.JointWNS,
		celltype.LoopNWS, celltype.LoopSWN, celltype.LoopESW, celltype.LoopWSE:
		return '+', true
	default:
		return '?', true
	}
}

// arrowGlyph reports the arrowhead a cell's flags call for, preferring an
// edge's End side (the head) over its Start side when, unusually, both are
// set on the same cell.
func arrowGlyph(f celltype.Flag) (rune, bool) {
	switch {
	case f&celltype.ArrowEndE != 0:
		return '>', true
	case f&celltype.ArrowEndW != 0:
		return '<', true
	case f&celltype.ArrowEndN != 0:
		return '^', true
	case f&celltype.ArrowEndS != 0:
		return 'v', true
	case f&celltype.ArrowStartE != 0:
		return '>', true
	case f&celltype.ArrowStartW != 0:
		return '<', true
	case f&celltype.ArrowStartN != 0:
		return '^', true
	case f&celltype.ArrowStartS != 0:
		return 'v', true
	default:
		return 0, false
	}
}

func groupGlyph(m graph.GroupSide) rune {
	if m.Inner() {
		return '.'
	}
	horiz := m&(graph.GroupTop|graph.GroupBottom) != 0
	vert := m&(graph.GroupLeft|graph.GroupRight) != 0
	switch {
	case horiz && vert:
		return '+'
	case horiz:
		return '-'
	case vert:
		return '|'
	default:
		return '.'
	}
}

func drawNodeBox(c *canvas, x, y, cx, cy int, name string) {
	if cx < 1 {
		cx = 1
	}
	if cy < 1 {
		cy = 1
	}
	if cx == 1 && cy == 1 {
		if name == "" {
			c.set(x, y, '#')
			return
		}
		// A node's formal footprint is its grid reservation, not its
		// display width: the canvas is pre-sized wide enough that the full
		// name fits past a single-cell node's column. Cells to its right
		// are overwritten, and boxes drawn later overwrite the name.
		c.setText(x, y, name)
		return
	}

	for dx := 0; dx < cx; dx++ {
		c.set(x+dx, y, '-')
		c.set(x+dx, y+cy-1, '-')
	}
	for dy := 0; dy < cy; dy++ {
		c.set(x, y+dy, '|')
		c.set(x+cx-1, y+dy, '|')
	}
	c.set(x, y, '+')
	c.set(x+cx-1, y, '+')
	c.set(x, y+cy-1, '+')
	c.set(x+cx-1, y+cy-1, '+')

	switch {
	case cy >= 3:
		c.setText(x+1, y+1, truncate(name, cx-2))
	case cy == 2:
		c.setText(x+1, y, truncate(name, cx-2))
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
