package schedule

import (
	"context"
	"sort"

	"github.com/nodegrid/manhattan/chain"
	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
	"github.com/nodegrid/manhattan/placement"
)

// MaxTriesPerAction caps how many times a single action is re-queued
// before it is dropped and surfaced as a warning, independent of the
// global try-budget.
const MaxTriesPerAction = 8

// SpliceFunc runs the repair/splice pass (component C8). Scheduler takes
// it as a dependency rather than importing the splice package directly,
// so it can be unit-tested without a full splice implementation wired in.
type SpliceFunc func(*graph.Graph) error

// Scheduler executes the FIFO action stack of spec §4.4.
type Scheduler struct {
	g          *graph.Graph
	r          *direction.Resolver
	splice     SpliceFunc
	tryBudget  int
	queue      []Action
	done       []Action
	warnings   []error
	score      int
}

// New creates a Scheduler bound to g. tryBudget is the global retry
// allowance (spec §4.4); splice may be nil, in which case the Splice
// action is a no-op.
func New(g *graph.Graph, r *direction.Resolver, tryBudget int, splice SpliceFunc) *Scheduler {
	if tryBudget <= 0 {
		tryBudget = 64
	}
	return &Scheduler{g: g, r: r, splice: splice, tryBudget: tryBudget}
}

// Warnings returns non-fatal diagnostics accumulated while running.
func (s *Scheduler) Warnings() []error { return s.warnings }

// Score returns the sum of every successful action's score delta.
func (s *Scheduler) Score() int { return s.score }

// Build assembles the initial stack from chains.Find's result: per spec
// §4.4, the root first, then each chain's PlaceNode/ChainNode/TraceEdge
// actions, then left-over nodes/edges not covered by any chain, finally
// one Splice action.
func (s *Scheduler) Build(result *chain.Result) {
	s.queue = s.queue[:0]
	s.done = s.done[:0]
	placed := make(map[graph.NodeID]bool)
	traced := make(map[graph.EdgeID]bool)

	for _, c := range result.Chains {
		if len(c.Nodes) == 0 {
			continue
		}
		s.queue = append(s.queue, Action{Kind: PlaceNode, Node: c.Nodes[0]})
		placed[c.Nodes[0]] = true
		for i := 1; i < len(c.Nodes); i++ {
			s.queue = append(s.queue, Action{
				Kind:   ChainNode,
				Node:   c.Nodes[i],
				Parent: c.Nodes[i-1],
				Edge:   c.Edges[i-1],
			})
			placed[c.Nodes[i]] = true
		}
		for _, eid := range c.Edges {
			s.queue = append(s.queue, Action{Kind: TraceEdge, Edge: eid})
			traced[eid] = true
		}
	}

	var leftoverNodes []*graph.Node
	for _, n := range s.g.Nodes() {
		if !placed[n.ID()] {
			leftoverNodes = append(leftoverNodes, n)
		}
	}
	sort.Slice(leftoverNodes, func(i, j int) bool { return leftoverNodes[i].Name() < leftoverNodes[j].Name() })
	for _, n := range leftoverNodes {
		s.queue = append(s.queue, Action{Kind: PlaceNode, Node: n.ID()})
	}

	var leftoverEdges []*graph.Edge
	for _, e := range s.g.Edges() {
		if !traced[e.ID()] {
			leftoverEdges = append(leftoverEdges, e)
		}
	}
	sort.Slice(leftoverEdges, func(i, j int) bool { return leftoverEdges[i].ID() < leftoverEdges[j].ID() })
	for _, e := range leftoverEdges {
		s.queue = append(s.queue, Action{Kind: TraceEdge, Edge: e.ID()})
	}

	s.queue = append(s.queue, Action{Kind: Splice})
}

// Run drains the action stack, spec §4.4's execution model: pop head,
// execute, on failure undo placement side-effects and re-queue with an
// incremented try-counter, decrementing the global try-budget. Cancelling
// ctx (wall-clock timeout, per spec §5) stops the run between actions,
// rolls back every action this run committed (see rollback) and returns
// ErrTimeout so the caller can re-seed and retry against a clean graph.
// Returns ErrBudgetExhausted when the budget runs out before the stack
// empties; the graph still holds the partial layout in that case.
func (s *Scheduler) Run(ctx context.Context) error {
	for len(s.queue) > 0 {
		select {
		case <-ctx.Done():
			s.rollback()
			return ErrTimeout
		default:
		}

		a := s.queue[0]
		s.queue = s.queue[1:]

		delta, err := s.execute(a)
		if err == nil {
			s.score += delta
			s.done = append(s.done, a)
			continue
		}

		s.undo(a)
		if a.Try+1 >= MaxTriesPerAction {
			s.warnings = append(s.warnings, err)
			continue
		}
		if s.tryBudget <= 0 {
			s.warnings = append(s.warnings, ErrBudgetExhausted)
			return ErrBudgetExhausted
		}
		s.tryBudget--
		a.Try++
		s.queue = append(s.queue, a)
	}
	return nil
}

// rollback discards every action committed so far this run (spec §5:
// "cancellation at timeout discards the partial cell map and rolls score
// to None"), undoing them in reverse commit order so a ChainNode's parent
// is never unplaced before its own placement is undone, then zeroing the
// score so a subsequent Build/Run starts clean.
func (s *Scheduler) rollback() {
	for i := len(s.done) - 1; i >= 0; i-- {
		s.undo(s.done[i])
	}
	s.done = s.done[:0]
	s.score = 0
}

func (s *Scheduler) execute(a Action) (int, error) {
	switch a.Kind {
	case PlaceNode:
		if err := placement.Place(s.g, s.r, a.Node, nil, nil, 1); err != nil {
			return 0, err
		}
		return 1, nil
	case ChainNode:
		minlen := int(s.g.EdgeAttribute(a.Edge, "minlen").Int)
		parent := a.Parent
		edge := a.Edge
		if err := placement.Place(s.g, s.r, a.Node, &parent, &edge, minlen); err != nil {
			return 0, err
		}
		return 1, nil
	case TraceEdge:
		return s.traceEdge(a.Edge)
	case Splice:
		if s.splice == nil {
			return 0, nil
		}
		if err := s.splice(s.g); err != nil {
			return 0, err
		}
		return 0, nil
	default:
		return 0, nil
	}
}

// undo reverses an action's placement side-effects before a retry, the
// scheduler's "_unplace" step (spec §4.4).
func (s *Scheduler) undo(a Action) {
	switch a.Kind {
	case PlaceNode, ChainNode:
		if n, ok := s.g.Node(a.Node); ok {
			if _, _, placed := n.Position(); placed {
				_ = s.g.UnplaceNode(a.Node)
			}
		}
	case TraceEdge:
		if e, ok := s.g.Edge(a.Edge); ok && len(e.Cells()) > 0 {
			_ = s.g.ReplaceEdgeCells(a.Edge, nil)
		}
	}
}
