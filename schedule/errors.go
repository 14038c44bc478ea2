package schedule

import "errors"

// ErrBudgetExhausted marks spec §7 kind 5 (LayoutBudgetExceeded): the
// global try-budget ran out before the action stack emptied. The caller
// still receives whatever partial layout had been built.
var ErrBudgetExhausted = errors.New("schedule: try budget exhausted")

// ErrTimeout marks spec §7 kind 4 (LayoutTimeout): the wall-clock budget
// elapsed between two actions.
var ErrTimeout = errors.New("schedule: layout timed out")

// ErrUnrouteable marks spec §7 kind 6 for a specific edge that could not
// be routed even after a fresh try.
var ErrUnrouteable = errors.New("schedule: edge unrouteable after retry")
