// Package celltype classifies a single routed edge cell.
//
// What:
//
//   - Type is a base shape (one of 16: straight runs, four corners, four
//     three-way joints, four self-loop corner blocks, and the CROSS/HOLE
//     pair for crossings) combined with independent bit flags (arrowheads,
//     label cell, short helper cell).
//   - Resolve derives the base shape from the two delta vectors formed by
//     three consecutive routed points (prev→cur, cur→next). It is a total
//     function over the twelve (dx1,dy1,dx2,dy2) combinations a router can
//     ever produce on a 4-connected grid.
//
// Why:
//
//   - Every renderer (ascii glyphs, SVG path data, DOT-adjacent shapes)
//     dispatches on exactly this (Base, Flags) pair, so the router and the
//     optimizer both need a single authoritative place to compute and
//     combine it.
//
// Complexity: Resolve is O(1); Type is a value type cheap to copy and to
// use as a map value inside the cell map.
package celltype
