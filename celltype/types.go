package celltype

import "fmt"

// Base is one of the sixteen cell shapes spec §4.7 enumerates.
type Base uint8

const (
	// Hor is a straight horizontal run.
	Hor Base = iota + 1
	// Ver is a straight vertical run.
	Ver
	// Cross marks a cell where two unrelated edges cross (HOR+VER in one cell).
	Cross
	// NE, NW, SE, SW are the four right-angle corners, named by the two
	// sides the bend connects (North/East/South/West).
	NE
	NW
	SE
	SW
	// JointSEW, JointNEW, JointENS, JointWNS are three-way joints: a cell
	// with one incoming side and two outgoing sides (or vice versa), used
	// when a shared port fans in/out without drawing a new edge.
	JointSEW
	JointNEW
	JointENS
	JointWNS
	// LoopNWS, LoopSWN, LoopESW, LoopWSE are the corner blocks used by the
	// four fixed self-loop shapes (one per node flow direction).
	LoopNWS
	LoopSWN
	LoopESW
	LoopWSE
	// Hole is the reserved second half of a Cross: it keeps the owning
	// edge's cell list length in sync with the other edge's without
	// occupying a visible glyph.
	Hole
)

func (b Base) String() string {
	switch b {
	case Hor:
		return "HOR"
	case Ver:
		return "VER"
	case Cross:
		return "CROSS"
	case NE:
		return "N_E"
	case NW:
		return "N_W"
	case SE:
		return "S_E"
	case SW:
		return "S_W"
	case JointSEW:
		return "S_E_W"
	case JointNEW:
		return "N_E_W"
	case JointENS:
		return "E_N_S"
	case JointWNS:
		return "W_N_S"
	case LoopNWS:
		return "N_W_S"
	case LoopSWN:
		return "S_W_N"
	case LoopESW:
		return "E_S_W"
	case LoopWSE:
		return "W_S_E"
	case Hole:
		return "HOLE"
	default:
		return fmt.Sprintf("Base(%d)", uint8(b))
	}
}

// Crossable reports whether a cell of this base may be stepped over by an
// unrelated edge during routing (spec §4.6: "empty or a crossable HOR/VER
// edge cell owned by a different edge").
func (b Base) Crossable() bool {
	return b == Hor || b == Ver
}

// Flag is a bitwise-OR-able modifier independent of Base.
type Flag uint32

const (
	ArrowStartN Flag = 1 << iota
	ArrowStartS
	ArrowStartE
	ArrowStartW
	ArrowEndN
	ArrowEndS
	ArrowEndE
	ArrowEndW
	// Label marks the single cell of an edge that carries its label text.
	Label
	// Short marks a small helper cell used for joint stubs or shared-port
	// fan-out helpers; renderers draw it thinner than a regular cell.
	Short
)

// ArrowStart packs a cardinal direction into the matching ArrowStart* flag.
func ArrowStart(side Side) Flag {
	switch side {
	case North:
		return ArrowStartN
	case South:
		return ArrowStartS
	case East:
		return ArrowStartE
	default:
		return ArrowStartW
	}
}

// ArrowEnd packs a cardinal direction into the matching ArrowEnd* flag.
func ArrowEnd(side Side) Flag {
	switch side {
	case North:
		return ArrowEndN
	case South:
		return ArrowEndS
	case East:
		return ArrowEndE
	default:
		return ArrowEndW
	}
}

// Side is one of the four cardinal directions a port or bend can face.
type Side int

const (
	North Side = iota
	East
	South
	West
)

func (s Side) String() string {
	return [...]string{"north", "east", "south", "west"}[s]
}

// Type is the full classification of one routed edge cell: a shape plus
// independent flags. Zero value is the invalid type (Base 0).
type Type struct {
	Base  Base
	Flags Flag
}

// Has reports whether all bits of want are set in t's Flags.
func (t Type) Has(want Flag) bool { return t.Flags&want == want }

// With returns a copy of t with extra bits OR-ed into Flags.
func (t Type) With(extra Flag) Type { return Type{Base: t.Base, Flags: t.Flags | extra} }

// Valid reports whether t carries a recognised Base.
func (t Type) Valid() bool { return t.Base >= Hor && t.Base <= Hole }

// JointMissing returns the three-way joint Base whose name lists every
// side except missing, spec §4.6 "Joint creation". It is how the router
// picks a Joint* base once it knows the one cardinal direction the
// upgraded cell does NOT connect to.
func JointMissing(missing Side) Base {
	switch missing {
	case North:
		return JointSEW
	case South:
		return JointNEW
	case East:
		return JointWNS
	default: // West
		return JointENS
	}
}
