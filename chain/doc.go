// Package chain implements rank assignment and chain discovery, spec §4.3
// (component C3): it partitions a graph's nodes into maximal non-branching
// sequences used by the scheduler as the primary placement unit.
package chain
