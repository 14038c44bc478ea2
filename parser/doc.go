// Package parser reads the native Graph::Easy-style dialect spec §6.2
// describes ("native Graph::Easy text, Graphviz DOT, and VCG/GDL; all
// normalised to the same in-memory model") and builds a *graph.Graph from
// it. Only the native dialect is implemented; DOT and VCG/GDL input is
// detected and rejected with ErrDialectUnsupported, consistent with
// spec.md treating the parser as an external collaborator the core
// doesn't depend on.
package parser
