// Package schedule implements component C4 (spec §4.4): the FIFO action
// stack that drives a layout to completion. It owns the PlaceNode,
// ChainNode, TraceEdge and Splice action kinds, the retry/backtrack loop
// on action failure, the global try-budget, and the wall-clock timeout.
package schedule
