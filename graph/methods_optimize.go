package graph

// SetOptimizedCells installs the coalesced cell list the optimizer (C9)
// computed for e. Unlike ReplaceEdgeCells, it leaves the cell map alone:
// every original single-cell coordinate already claims the edge, so a
// coalesced run's absorbed coordinates keep acting as occupancy
// placeholders for renderers even though they no longer appear in the
// edge's own cell list (spec §4.9).
func (g *Graph) SetOptimizedCells(id EdgeID, cells []EdgeCell) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	e.cells = cells
	g.touch()
	return nil
}
