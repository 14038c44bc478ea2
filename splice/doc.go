// Package splice implements component C8 (spec §4.8): the post-routing
// repair pass that doubles the grid to make room for group boundary
// cells and label whitespace, then paints each group's surrounding
// GroupCell entries and picks its label anchor. The coordinate-doubling
// and edge re-stitching, which need direct cell-map access, live on
// Graph itself (graph.DoubleGrid); this package is the thin C8
// orchestrator the scheduler's Splice action calls.
package splice
