package layout

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout is spec §5/§6.4's "per-layout wall clock" default.
const DefaultTimeout = 5 * time.Second

// DefaultTryBudget bounds how many action retries a layout may spend
// before surfacing a partial result (spec §4.4).
const DefaultTryBudget = 256

// Option configures a layout Engine, matching the same functional-options
// idiom as graph.Option and graph.EdgeOption.
type Option func(*Engine)

// WithTimeout overrides the default 5s wall-clock budget (spec §6.4).
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithTryBudget overrides the global action-retry budget (spec §4.4).
func WithTryBudget(n int) Option {
	return func(e *Engine) { e.tryBudget = n }
}

// WithDebug turns on structured stderr tracing of scheduler actions via
// charmbracelet/log (spec's ambient "debug" option). Off by default: the
// Engine's logger stays nil and every trace call is a no-op.
func WithDebug(debug bool) Option {
	return func(e *Engine) {
		if !debug {
			e.logger = nil
			return
		}
		e.logger = log.NewWithOptions(e.logOut, log.Options{ReportTimestamp: true, TimeFormat: "15:04:05.00", Level: log.DebugLevel})
	}
}

// WithLogOutput redirects debug tracing away from stderr, primarily for
// tests.
func WithLogOutput(w io.Writer) Option {
	return func(e *Engine) { e.logOut = w }
}
