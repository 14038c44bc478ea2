// Package placement implements component C5 (spec §4.5): picking grid
// coordinates for a node given an optional parent, the node's effective
// flow, and any shared ports it must leave room for, plus the node-growth
// pass that widens a node to fit its port-constrained edges before it is
// placed.
package placement
