// Package layout is the engine's public entry point: it wires the chain
// finder (C3), flow resolver, action scheduler (C4), placement (C5),
// router (C6/C7), splice (C8) and optimizer (C9) together into one
// New(g, opts...).Run(ctx) call, and exposes Batch for laying out several
// independent graphs concurrently (spec §5).
package layout
