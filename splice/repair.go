package splice

import (
	"github.com/nodegrid/manhattan/celltype"
	"github.com/nodegrid/manhattan/graph"
)

// Repair runs the full C8 pass: double the grid, stub the joints
// doubling exposed, then fill group cells. It is the function a
// Scheduler's Splice action calls (schedule.SpliceFunc).
func Repair(g *graph.Graph) error {
	if err := g.DoubleGrid(); err != nil {
		return err
	}
	if err := stubJoints(g); err != nil {
		return err
	}
	return g.FillGroupCells()
}

// stubJoints implements spec §4.8's special case for joints: a HOLE
// placeholder (router.tryPortJoint's marker for the edge that taps into a
// neighbour's cell, spec §4.6) sits two grid steps from its own edge's
// first real cell once DoubleGrid has run, and DoubleGrid's generic
// re-stitch (gapCell) already closes that gap with a plain HOR/VER cell.
// That cell is the joint's emergent side, not an ordinary continuation, so
// it is re-flagged Short ("SHORT_CELL") to mark it as a stub.
func stubJoints(g *graph.Graph) error {
	for _, e := range g.Edges() {
		cells := e.Cells()
		if len(cells) == 0 {
			continue
		}
		updated := append([]graph.EdgeCell(nil), cells...)
		var touched bool
		for i, cell := range cells {
			if cell.Type.Base != celltype.Hole {
				continue
			}
			for _, j := range [2]int{i - 1, i + 1} {
				if j < 0 || j >= len(cells) {
					continue
				}
				if cells[j].Type.Base == celltype.Hole || updated[j].Type.Has(celltype.Short) {
					continue
				}
				updated[j].Type.Flags |= celltype.Short
				touched = true
			}
		}
		if touched {
			if err := g.ReplaceEdgeCells(e.ID(), updated); err != nil {
				return err
			}
		}
	}
	return nil
}
