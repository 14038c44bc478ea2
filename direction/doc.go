// Package direction implements the flow algebra of spec §4.2 (component
// C2): absolute/relative direction conversion and the propagation rule
// that gives every Node and Edge an effective flow even when neither sets
// one explicitly.
package direction
