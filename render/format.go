package render

import (
	"fmt"
	"io"

	"github.com/nodegrid/manhattan/graph"
)

// Format names one of the output formats spec §6.3 enumerates.
type Format string

const (
	ASCII    Format = "ascii"
	BoxArt   Format = "boxart"
	HTML     Format = "html"
	SVG      Format = "svg"
	Graphviz Format = "graphviz"
	VCG      Format = "vcg"
	GDL      Format = "gdl"
	GraphML  Format = "graphml"
	Txt      Format = "txt"
	Debug    Format = "debug"
)

// Render writes g, already laid out, to w in the given format. ascii,
// graphviz (the DOT dialect) and debug are implemented; every other
// format named by spec §6.3 returns ErrUnsupportedFormat.
func Render(w io.Writer, g *graph.Graph, format Format) error {
	switch format {
	case ASCII:
		return renderASCII(w, g)
	case Graphviz:
		return renderDOT(w, g)
	case Debug:
		return renderDebug(w, g)
	case BoxArt, HTML, SVG, VCG, GDL, GraphML, Txt:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
