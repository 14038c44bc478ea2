// Package render implements spec §6.3's renderer interface: pure
// functions that consume a laid-out Graph (nodes with x/y/cx/cy, edges
// with a cell list, groups with a cell set and label anchor) and produce
// deterministic bytes. Only ascii, graphviz (DOT) and debug are
// implemented; the remaining seven formats (boxart, html, svg, vcg, gdl,
// graphml, txt) are interface stubs returning ErrUnsupportedFormat.
package render
