package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nodegrid/manhattan/graph"
)

// renderDOT writes g as a Graphviz DOT digraph, with pinned positions
// (pos="x,y!") so Graphviz's neato can reproduce the exact layout instead
// of recomputing its own.
func renderDOT(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph manhattan {")

	for _, n := range g.Nodes() {
		attrs := map[string]string{"label": quoteDOT(n.Name())}
		if x, y, placed := n.Position(); placed {
			attrs["pos"] = quoteDOT(fmt.Sprintf("%d,%d!", x, -y))
		}
		if v := g.NodeAttribute(n.ID(), "color"); !v.IsZero() {
			attrs["color"] = quoteDOT(v.Str)
		}
		if v := g.NodeAttribute(n.ID(), "shape"); !v.IsZero() {
			attrs["shape"] = quoteDOT(dotShape(v.Str))
		}
		fmt.Fprintf(bw, "\t%s [%s];\n", dotID(n.ID(), n.Name()), joinAttrs(attrs))
	}

	for _, e := range g.Edges() {
		from, to := e.Endpoints()
		fn, _ := g.Node(from)
		tn, _ := g.Node(to)

		op := "->"
		attrs := map[string]string{}
		if e.Undirected() {
			attrs["dir"] = "none"
		}
		if e.Bidirectional() {
			attrs["dir"] = "both"
		}
		if v := g.EdgeAttribute(e.ID(), "label"); !v.IsZero() {
			attrs["label"] = quoteDOT(v.Str)
		}
		if v := g.EdgeAttribute(e.ID(), "color"); !v.IsZero() {
			attrs["color"] = quoteDOT(v.Str)
		}
		if v := g.EdgeAttribute(e.ID(), "style"); !v.IsZero() {
			attrs["style"] = quoteDOT(v.Str)
		}

		fromName, toName := "", ""
		if fn != nil {
			fromName = fn.Name()
		}
		if tn != nil {
			toName = tn.Name()
		}

		fmt.Fprintf(bw, "\t%s %s %s [%s];\n",
			dotID(from, fromName), op, dotID(to, toName), joinAttrs(attrs))
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotID(id graph.NodeID, name string) string {
	if name == "" {
		return "n" + strconv.FormatInt(int64(id), 10)
	}
	return quoteDOT(name)
}

func dotShape(s string) string {
	switch s {
	case "rounded":
		return "box" // Graphviz has no native rounded-rect shorthand usable without style=rounded
	case "rect":
		return "box"
	case "none":
		return "plaintext"
	default:
		return s
	}
}

func quoteDOT(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func joinAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	// Fixed key order keeps output deterministic across map iteration.
	order := []string{"label", "pos", "color", "shape", "dir", "style"}
	parts := make([]string, 0, len(attrs))
	for _, k := range order {
		if v, ok := attrs[k]; ok {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, ", ")
}
