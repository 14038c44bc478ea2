package graph

// touch invalidates the cached layout score (spec §8 invariant 9: "Setting
// any layout-affecting attribute invalidates the cached score"). Queued
// warnings are left as they are.
func (g *Graph) touch() {
	g.score = nil
	g.scoreValid = false
}

// Score returns the cached layout score and whether one has been computed
// since the last mutation. The layout package sets it via SetScore after a
// successful run; any subsequent graph mutation clears it again.
func (g *Graph) Score() (int, bool) {
	if !g.scoreValid || g.score == nil {
		return 0, false
	}
	return *g.score, true
}

// SetScore records a freshly computed layout score. Called by the layout
// package, not by callers mutating the graph.
func (g *Graph) SetScore(score int) {
	s := score
	g.score = &s
	g.scoreValid = true
}
