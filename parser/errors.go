package parser

import "errors"

// ErrDialectUnsupported is returned when the input looks like DOT
// (`digraph`/`graph` ... `{`) or VCG/GDL (`graph:` ... `{`) rather than
// the native bracket dialect this parser actually implements.
var ErrDialectUnsupported = errors.New("parser: only the native dialect is implemented")

// ErrSyntax marks a malformed native-dialect line.
var ErrSyntax = errors.New("parser: syntax error")
