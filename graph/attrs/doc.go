// Package attrs implements the attribute schema spec §6.1: typed
// attribute definitions namespaced by class ("graph", "node", "edge",
// "group" and user subclasses like "node.city"), a validator per type tag,
// and the colour table/normalisation backing the `color`/`fill` attributes.
//
// What:
//
//   - Schema holds one AttrDef per (class, name) pair and validates raw
//     strings into a canonical Value.
//   - Colour values accept named (a W3C/X11 subset), #rrggbb, #rgb,
//     rgb(...), hsv(...), hsl(...) and normalise to #rrggbb/#rrggbbaa via
//     github.com/lucasb-eyer/go-colorful.
//
// Why:
//
//   - The graph package (C1) needs *some* concrete schema to validate
//     set_attribute calls against; this package is the external
//     "attribute validator and colour/colourscheme tables" collaborator
//     spec.md §1 scopes out of the core, given a minimal but real home.
//
// Non-goals: the full W3C/X11/ColorBrewer name tables from the original
// implementation are not reproduced here — only a representative subset
// (see color.go) — since the original source was not available in this
// retrieval (see DESIGN.md).
package attrs
