package direction

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph/attrs"
)

// Flow is an absolute direction, a multiple of 90 degrees in [0,360).
type Flow int64

const (
	North Flow = 0
	East  Flow = 90
	South Flow = 180
	West  Flow = 270
)

func (f Flow) String() string {
	switch normalize(f) {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Side maps f to the matching celltype cardinal side.
func (f Flow) Side() celltype.Side {
	switch normalize(f) {
	case North:
		return celltype.North
	case East:
		return celltype.East
	case South:
		return celltype.South
	default:
		return celltype.West
	}
}

func normalize(f Flow) Flow { return Flow(((int64(f) % 360) + 360) % 360) }

// AsDirection implements spec §4.2's "_flow_as_direction(in, dir)": an
// absolute dir returns itself; a relative dir (forward/right/back/left)
// returns (in + modifier) mod 360. v must be a validated attrs.KindFlow
// value (Schema.Validate's output for a flow attribute).
func AsDirection(in Flow, v attrs.Value) Flow {
	if !v.Relative {
		return normalize(Flow(v.Int))
	}
	return normalize(in + Flow(v.Int))
}

// AsSide is AsDirection followed by Side, spec §4.2's "_flow_as_side".
func AsSide(in Flow, v attrs.Value) celltype.Side {
	return AsDirection(in, v).Side()
}
