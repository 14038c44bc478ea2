package layout

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nodegrid/manhattan/chain"
	"github.com/nodegrid/manhattan/direction"
	"github.com/nodegrid/manhattan/graph"
	"github.com/nodegrid/manhattan/optimize"
	"github.com/nodegrid/manhattan/schedule"
	"github.com/nodegrid/manhattan/splice"
)

// Engine drives one Graph through the full C1-C9 pipeline.
type Engine struct {
	g *graph.Graph

	timeout   time.Duration
	tryBudget int

	logOut io.Writer
	logger *log.Logger
}

// New builds an Engine for g with the given options, spec §6.4's
// `new(...)` constructor (strict/fatal_errors live on the Graph itself;
// the Engine owns the timeout, the try budget and debug tracing).
func New(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{
		g:         g,
		timeout:   DefaultTimeout,
		tryBudget: DefaultTryBudget,
		logOut:    os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is what Run returns: the scheduler's score and any warnings
// accumulated along the way (spec §7: budget exhaustion, unrouteable
// edges and attribute errors in non-fatal mode all surface here instead
// of failing the call).
type Result struct {
	Score    int
	Warnings []error
}

// Run executes the pipeline: chain discovery, the scheduler's FIFO action
// stack (placement + routing + splice), then the C9 optimizer. spec §4.4's
// timeout and cancellation semantics apply: exceeding the wall-clock budget
// returns schedule.ErrTimeout after the scheduler has rolled back every
// action it committed this run, per spec §5 ("cancellation at timeout
// discards the partial cell map and rolls score to None") — the caller can
// safely re-seed and retry against a clean graph.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.g.GraphAttribute("type").Str == "force" {
		return nil, ErrForceLayoutUnimplemented
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	r := direction.NewResolver(e.g)
	result := chain.Find(e.g)
	e.trace("chains found", "count", len(result.Chains))

	sch := schedule.New(e.g, r, e.tryBudget, splice.Repair)
	sch.Build(result)

	warnings := func() []error { return append(e.g.Warnings(), sch.Warnings()...) }

	err := sch.Run(ctx)
	e.trace("scheduler finished", "score", sch.Score(), "warnings", len(sch.Warnings()))
	if err != nil && !errors.Is(err, schedule.ErrBudgetExhausted) {
		return &Result{Score: sch.Score(), Warnings: warnings()}, err
	}

	if optErr := optimize.Optimize(e.g); optErr != nil {
		return &Result{Score: sch.Score(), Warnings: warnings()}, optErr
	}
	e.trace("optimizer done")

	e.g.SetScore(sch.Score())
	return &Result{Score: sch.Score(), Warnings: warnings()}, err
}

func (e *Engine) trace(msg string, kv ...any) {
	if e.logger == nil {
		return
	}
	e.logger.Debug(msg, kv...)
}
