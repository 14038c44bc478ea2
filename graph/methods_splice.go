package graph

import (
	"sort"

	"github.com/nodegrid/manhattan/celltype"
)

// DoubleGrid implements the first half of spec §4.8's repair pass: every
// occupied (x,y) becomes (2x,2y), leaving the odd rows/columns empty for
// group boundary cells and label whitespace. Node interiors and edge runs
// that the doubling pulls apart are immediately restored/re-stitched so
// the graph stays internally consistent at the new scale. Must run once,
// after all TraceEdge actions and before group-cell filling.
func (g *Graph) DoubleGrid() error {
	type nodeSnap struct {
		id         NodeID
		x, y       int
		cx, cy     int
	}
	var nodeSnaps []nodeSnap
	for _, n := range g.Nodes() {
		if !n.placed {
			continue
		}
		nodeSnaps = append(nodeSnaps, nodeSnap{n.id, n.x, n.y, n.cx, n.cy})
	}

	type edgeSnap struct {
		id    EdgeID
		cells []EdgeCell
	}
	var edgeSnaps []edgeSnap
	for _, e := range g.Edges() {
		if len(e.cells) == 0 {
			continue
		}
		cp := make([]EdgeCell, len(e.cells))
		copy(cp, e.cells)
		edgeSnaps = append(edgeSnaps, edgeSnap{e.id, cp})
	}

	g.cells = make(map[Coord]CellRef, len(g.cells)*3)

	for _, ns := range nodeSnaps {
		n := g.nodes[ns.id]
		n.x, n.y = ns.x*2, ns.y*2
		maxI, maxJ := 0, 0
		if ns.cx > 1 {
			maxI = 2 * (ns.cx - 1)
		}
		if ns.cy > 1 {
			maxJ = 2 * (ns.cy - 1)
		}
		for i := 0; i <= maxI; i++ {
			for j := 0; j <= maxJ; j++ {
				c := Coord{n.x + i, n.y + j}
				kind := CellNodeFillerKind
				if i == 0 && j == 0 {
					kind = CellNodeKind
				}
				g.placeCellRef(c, CellRef{Kind: kind, Node: ns.id})
			}
		}
	}

	for _, es := range edgeSnaps {
		e, ok := g.edges[es.id]
		if !ok {
			continue
		}
		doubled := make([]EdgeCell, 0, len(es.cells)*2)
		for i, cell := range es.cells {
			nc := cell
			nc.X, nc.Y = cell.X*2, cell.Y*2
			if i > 0 {
				prev := doubled[len(doubled)-1]
				if gap, ok := gapCell(prev, nc); ok {
					doubled = append(doubled, gap)
				}
			}
			doubled = append(doubled, nc)
		}
		e.cells = doubled
		for _, c := range doubled {
			coord := Coord{c.X, c.Y}
			if _, occupied := g.cells[coord]; !occupied {
				g.placeCellRef(coord, CellRef{Kind: CellEdgeKind, Edge: es.id})
			}
		}
	}

	g.touch()
	g.invalidateBBox()
	return nil
}

// gapCell synthesises the re-stitching cell spec §4.8 calls for: two edge
// cells that were orthogonally adjacent before doubling land two apart
// afterwards, so the cell between them must be filled with a same-oriented
// plain cell or the edge would visibly break.
func gapCell(a, b EdgeCell) (EdgeCell, bool) {
	switch {
	case a.Y == b.Y && abs(a.X-b.X) == 2:
		mid := (a.X + b.X) / 2
		return EdgeCell{X: mid, Y: a.Y, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Hor}}, true
	case a.X == b.X && abs(a.Y-b.Y) == 2:
		mid := (a.Y + b.Y) / 2
		return EdgeCell{X: a.X, Y: mid, CX: 1, CY: 1, Type: celltype.Type{Base: celltype.Ver}}, true
	default:
		return EdgeCell{}, false
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FillGroupCells implements spec §4.8's group-fill repair: for every node
// belonging to a group, paint its eight surrounding cells with GroupCell
// entries, close single-cell holes left inside the group's footprint, and
// tag each painted cell with the boundary mask spec §4.8 describes
// (compared against its four orthogonal neighbours), then pick the
// label-anchor cell. Must run after DoubleGrid.
func (g *Graph) FillGroupCells() error {
	for _, grp := range g.Groups() {
		members := grp.Members()
		if len(members) == 0 {
			continue
		}
		footprint := make(map[Coord]bool)
		for _, nid := range members {
			n, ok := g.nodes[nid]
			if !ok || !n.placed {
				continue
			}
			for i := 0; i < n.cx; i++ {
				for j := 0; j < n.cy; j++ {
					footprint[Coord{n.x + 2*i, n.y + 2*j}] = true
				}
			}
		}
		if len(footprint) == 0 {
			continue
		}

		candidates := make(map[Coord]bool)
		for c := range footprint {
			for _, d := range eightNeighbors {
				nc := Coord{c.X + d[0], c.Y + d[1]}
				if footprint[nc] {
					continue
				}
				if ref, occ := g.cells[nc]; occ && ref.Kind != CellGroupKind {
					continue
				}
				candidates[nc] = true
			}
		}
		closeHoles(footprint, candidates)

		cells := make(map[Coord]GroupSide, len(candidates))
		for c := range candidates {
			cells[c] = boundaryMask(footprint, candidates, c)
		}
		if err := g.SetGroupCells(grp.id, cells); err != nil {
			return err
		}
		if anchor, ok := pickAnchor(g, grp, footprint); ok {
			_ = g.SetGroupAnchor(grp.id, anchor)
		}
	}
	return nil
}

var eightNeighbors = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// closeHoles fills any cell fully surrounded by footprint/candidate cells
// that DoubleGrid's odd-coordinate spacing left as a single-cell hole
// inside the group's silhouette.
func closeHoles(footprint, candidates map[Coord]bool) {
	minX, minY, maxX, maxY := boundsOf(footprint)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			c := Coord{x, y}
			if footprint[c] || candidates[c] {
				continue
			}
			surrounded := true
			for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nc := Coord{c.X + d[0], c.Y + d[1]}
				if !footprint[nc] && !candidates[nc] {
					surrounded = false
					break
				}
			}
			if surrounded {
				candidates[c] = true
			}
		}
	}
}

func boundsOf(cells map[Coord]bool) (minX, minY, maxX, maxY int) {
	first := true
	for c := range cells {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return
}

// boundaryMask compares c against its four orthogonal neighbours to decide
// which of spec §4.8's gt/gb/gl/gr/ga/gi tags apply: a side bit is set when
// that neighbour is NOT part of the group's footprint, i.e. c is exposed
// (faces outward) on that side. A cell exposed on every side ("ga") is an
// isolated corner touching the group only diagonally; a cell exposed on no
// side ("gi") is a hole fully enclosed by the footprint.
func boundaryMask(footprint, candidates map[Coord]bool, c Coord) GroupSide {
	var m GroupSide
	if !footprint[Coord{c.X, c.Y - 1}] {
		m |= GroupTop
	}
	if !footprint[Coord{c.X, c.Y + 1}] {
		m |= GroupBottom
	}
	if !footprint[Coord{c.X - 1, c.Y}] {
		m |= GroupLeft
	}
	if !footprint[Coord{c.X + 1, c.Y}] {
		m |= GroupRight
	}
	return m
}

// pickAnchor implements spec §4.8's label-anchor rule: the top-most cell
// of the group's footprint, then by the group's align attribute (left ->
// minimum x, right -> maximum x, center -> x nearest the row midpoint).
func pickAnchor(g *Graph, grp *Group, footprint map[Coord]bool) (Coord, bool) {
	if len(footprint) == 0 {
		return Coord{}, false
	}
	minX, _, maxX, _ := boundsOf(footprint)
	topY := 0
	first := true
	for c := range footprint {
		if first || c.Y < topY {
			topY = c.Y
			first = false
		}
	}
	var row []int
	for c := range footprint {
		if c.Y == topY {
			row = append(row, c.X)
		}
	}
	sort.Ints(row)

	align := g.GroupAttribute(grp.id, "align")
	switch align.Str {
	case "right":
		return Coord{row[len(row)-1], topY}, true
	case "left":
		return Coord{row[0], topY}, true
	default:
		mid := (minX + maxX) / 2
		best := row[0]
		for _, x := range row {
			if abs(x-mid) < abs(best-mid) {
				best = x
			}
		}
		return Coord{best, topY}, true
	}
}
