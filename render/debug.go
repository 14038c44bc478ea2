package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nodegrid/manhattan/graph"
)

// renderDebug dumps one line per node/edge/group with its raw placement
// data, meant for charmbracelet/log traces rather than for a viewer.
func renderDebug(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	for _, n := range g.Nodes() {
		x, y, placed := n.Position()
		cx, cy := n.Size()
		fmt.Fprintf(bw, "node %d %q placed=%v pos=(%d,%d) size=(%d,%d)\n",
			n.ID(), n.Name(), placed, x, y, cx, cy)
	}
	for _, e := range g.Edges() {
		from, to := e.Endpoints()
		fmt.Fprintf(bw, "edge %d %d->%d cells=%d bidi=%v undirected=%v\n",
			e.ID(), from, to, len(e.Cells()), e.Bidirectional(), e.Undirected())
	}
	for _, grp := range g.Groups() {
		anchor, hasAnchor := grp.Anchor()
		fmt.Fprintf(bw, "group %d %q members=%d cells=%d anchor=%v(%v)\n",
			grp.ID(), grp.Name(), len(grp.Members()), len(grp.Cells()), anchor, hasAnchor)
	}

	return bw.Flush()
}
