package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/nodegrid/manhattan/chain"
	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
	"github.com/stretchr/testify/require"
)

func buildChainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("b")
	require.NoError(t, err)
	c, err := g.AddNode("c")
	require.NoError(t, err)
	_, err = g.AddEdge(a.ID(), b.ID())
	require.NoError(t, err)
	_, err = g.AddEdge(b.ID(), c.ID())
	require.NoError(t, err)
	return g
}

func TestSchedulerRunsChainToCompletion(t *testing.T) {
	g := buildChainGraph(t)
	r := direction.NewResolver(g)
	result := chain.Find(g)

	var splicedCalls int
	sch := New(g, r, 32, func(*graph.Graph) error { splicedCalls++; return nil })
	sch.Build(result)

	err := sch.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, sch.Warnings())
	require.Equal(t, 1, splicedCalls)

	for _, n := range g.Nodes() {
		_, _, placed := n.Position()
		require.True(t, placed, "node %s should be placed", n.Name())
	}
	for _, e := range g.Edges() {
		require.NotEmpty(t, e.Cells(), "edge should be routed")
	}
}

// TestSchedulerRollbackUndoesCommittedActions covers spec §5: cancellation
// at timeout discards the partial cell map and rolls the score to None, so
// a caller can safely re-seed and retry. Exercises rollback directly against
// a run that has genuinely committed actions, rather than racing a context
// deadline against the (synchronous, effectively instantaneous) action loop.
func TestSchedulerRollbackUndoesCommittedActions(t *testing.T) {
	g := buildChainGraph(t)
	r := direction.NewResolver(g)
	result := chain.Find(g)

	sch := New(g, r, 32, nil)
	sch.Build(result)

	for len(sch.done) < 2 && len(sch.queue) > 0 {
		a := sch.queue[0]
		sch.queue = sch.queue[1:]
		delta, err := sch.execute(a)
		require.NoError(t, err)
		sch.score += delta
		sch.done = append(sch.done, a)
	}
	require.NotEmpty(t, sch.done)
	require.NotZero(t, sch.score)

	sch.rollback()

	require.Empty(t, sch.done)
	require.Zero(t, sch.score)
	for _, n := range g.Nodes() {
		_, _, placed := n.Position()
		require.False(t, placed, "node %s should be unplaced after rollback", n.Name())
	}
}

func TestSchedulerRunRollsBackOnTimeout(t *testing.T) {
	g := buildChainGraph(t)
	r := direction.NewResolver(g)
	result := chain.Find(g)

	sch := New(g, r, 32, nil)
	sch.Build(result)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	time.Sleep(time.Millisecond)

	err := sch.Run(ctx)
	require.ErrorIs(t, err, ErrTimeout)
	require.Empty(t, sch.done)
	require.Zero(t, sch.Score())
}

func TestSchedulerNoSpliceFuncIsNoop(t *testing.T) {
	g := buildChainGraph(t)
	r := direction.NewResolver(g)
	result := chain.Find(g)

	sch := New(g, r, 32, nil)
	sch.Build(result)
	require.NoError(t, sch.Run(context.Background()))
}
