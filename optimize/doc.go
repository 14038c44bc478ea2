// Package optimize implements component C9 (spec §4.9): walking each
// edge's cell list and coalescing contiguous HOR/VER runs into a single
// wider cell, preserving LABEL_CELL/SHORT_CELL flags on the survivor.
// Running it twice in a row must not change the layout further.
package optimize
