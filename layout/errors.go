package layout

import "errors"

// ErrForceLayoutUnimplemented is returned by Run when the graph's "type"
// attribute is "force": spec §6.4 reserves the name but only "adhoc" is
// implemented.
var ErrForceLayoutUnimplemented = errors.New("layout: force layout type is reserved and not implemented")
