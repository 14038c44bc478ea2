// Package router implements the A*-based edge path finder of spec §4.6
// (component C6): given two already-placed node boundaries, it finds a
// sequence of grid cells connecting them using only axis-aligned segments
// and right-angle bends, preferring the straight/one-bend/self-loop
// shortcuts before falling back to full A* search (spec §4.6).
package router
