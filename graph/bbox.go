package graph

// BBox is the axis-aligned extent of every occupied cell, spec §4.6/§4.8:
// routing and splice both need "the current bounding box expanded by one".
type BBox struct {
	MinX, MinY, MaxX, MaxY int
	Empty                  bool
}

// Expand returns b grown by n cells on every side (n may be negative).
func (b BBox) Expand(n int) BBox {
	if b.Empty {
		return b
	}
	b.MinX -= n
	b.MinY -= n
	b.MaxX += n
	b.MaxY += n
	return b
}

// Contains reports whether c lies within b, inclusive.
func (b BBox) Contains(c Coord) bool {
	if b.Empty {
		return false
	}
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// invalidateBBox drops the memoised bounding box; it is recomputed lazily
// by BoundingBox the next time it is asked for (mirrors the Score cache).
func (g *Graph) invalidateBBox() {
	g.bboxValid = false
}

// BoundingBox returns the smallest box covering every occupied cell in the
// graph. Result is memoised until the next mutation touches the cell map.
func (g *Graph) BoundingBox() BBox {
	if g.bboxValid {
		return g.bbox
	}
	b := BBox{Empty: true}
	first := true
	for c := range g.cells {
		if first {
			b.MinX, b.MaxX = c.X, c.X
			b.MinY, b.MaxY = c.Y, c.Y
			b.Empty = false
			first = false
			continue
		}
		if c.X < b.MinX {
			b.MinX = c.X
		}
		if c.X > b.MaxX {
			b.MaxX = c.X
		}
		if c.Y < b.MinY {
			b.MinY = c.Y
		}
		if c.Y > b.MaxY {
			b.MaxY = c.Y
		}
	}
	g.bbox = b
	g.bboxValid = true
	return b
}
