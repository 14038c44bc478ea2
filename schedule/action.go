package schedule

import "github.com/nodegrid/manhattan/graph"

// Kind discriminates the four action kinds of spec §4.4.
type Kind uint8

const (
	PlaceNode Kind = iota
	ChainNode
	TraceEdge
	Splice
)

func (k Kind) String() string {
	switch k {
	case PlaceNode:
		return "place-node"
	case ChainNode:
		return "chain-node"
	case TraceEdge:
		return "trace-edge"
	case Splice:
		return "splice"
	default:
		return "unknown"
	}
}

// Action is one entry of the scheduler's FIFO stack. Which fields are
// meaningful depends on Kind: PlaceNode uses Node; ChainNode uses Node,
// Parent, Edge; TraceEdge uses Edge; Splice uses none.
type Action struct {
	Kind   Kind
	Node   graph.NodeID
	Parent graph.NodeID
	Edge   graph.EdgeID
	Try    int
}
