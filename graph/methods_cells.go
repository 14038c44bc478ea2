package graph

// CellAt returns the cell map entry at c, if any.
func (g *Graph) CellAt(c Coord) (CellRef, bool) {
	ref, ok := g.cells[c]
	return ref, ok
}

// Free reports whether c has no cell map entry at all.
func (g *Graph) Free(c Coord) bool {
	_, ok := g.cells[c]
	return !ok
}

// Crossable reports whether c is occupied by a HOR/VER edge cell belonging
// to an edge other than exclude — the condition spec §4.6 requires for a
// router to step onto an already-drawn edge ("empty or a crossable HOR/VER
// edge cell owned by a different edge").
func (g *Graph) Crossable(c Coord, exclude EdgeID) bool {
	ref, ok := g.cells[c]
	if !ok || ref.Kind != CellEdgeKind || ref.Edge == exclude {
		return false
	}
	e := g.edges[ref.Edge]
	for _, cell := range e.cells {
		if cell.X == c.X && cell.Y == c.Y {
			return cell.Type.Base.Crossable()
		}
	}
	return false
}

func (g *Graph) placeCellRef(c Coord, ref CellRef) {
	g.cells[c] = ref
}

func (g *Graph) clearCell(c Coord) {
	delete(g.cells, c)
}
