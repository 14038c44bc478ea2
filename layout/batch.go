package layout

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nodegrid/manhattan/graph"
)

// Batch lays out several independent graphs concurrently, spec §5: "each
// Graph owns a disjoint cell map and RNG state", so nothing shared needs
// locking. optsFor, when non-nil, lets the caller vary options per graph
// (e.g. a tighter timeout for a known-small graph); nil means every graph
// uses the same opts. The first error cancels the rest via errgroup's
// shared context, same as a normal errgroup.Group fan-out.
func Batch(ctx context.Context, graphs []*graph.Graph, optsFor func(int) []Option) ([]*Result, error) {
	results := make([]*Result, len(graphs))
	grp, gctx := errgroup.WithContext(ctx)
	for i, g := range graphs {
		i, g := i, g
		grp.Go(func() error {
			var opts []Option
			if optsFor != nil {
				opts = optsFor(i)
			}
			r, err := New(g, opts...).Run(gctx)
			results[i] = r
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
