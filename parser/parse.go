package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nodegrid/manhattan/graph"
)

// Parse reads the native dialect from r and builds a Graph, spec §6.2:
// ordered node insertion (nodes are created in first-seen order) and a
// single SetNodeAttribute/SetEdgeAttribute call per (object, name) pair.
//
// Grammar, one statement per line:
//
//	statement := nodeRef (edgeOp nodeRef)*
//	nodeRef   := '[' name ']' attrs?
//	edgeOp    := ('->' | '<-' | '<->' | '--') attrs?
//	attrs     := '{' pair (';' pair)* '}'
//	pair      := key ':' value
//
// Blank lines and lines starting with '#' are ignored.
func Parse(r io.Reader, opts ...graph.Option) (*graph.Graph, error) {
	g := graph.New(opts...)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if dialect := detectForeignDialect(line); dialect {
			return nil, fmt.Errorf("parser: line %d: %w", lineNo, ErrDialectUnsupported)
		}
		if err := parseLine(g, line); err != nil {
			return nil, fmt.Errorf("parser: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// detectForeignDialect flags input that looks like DOT ("digraph"/"graph"
// ... "{") or VCG/GDL ("graph:" ... "{") rather than the bracket dialect.
func detectForeignDialect(line string) bool {
	low := strings.ToLower(line)
	return strings.HasPrefix(low, "digraph ") || strings.HasPrefix(low, "digraph{") ||
		strings.HasPrefix(low, "graph ") || strings.HasPrefix(low, "graph{") ||
		strings.HasPrefix(low, "graph:")
}

func parseLine(g *graph.Graph, line string) error {
	toks, err := tokenize(line)
	if err != nil {
		return err
	}
	p := &lineParser{toks: toks, g: g}
	return p.statement()
}

type lineParser struct {
	toks []token
	pos  int
	g    *graph.Graph

	lastNode graph.NodeID
	haveLast bool
}

func (p *lineParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *lineParser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *lineParser) statement() error {
	nid, err := p.nodeRef()
	if err != nil {
		return err
	}
	p.lastNode, p.haveLast = nid, true

	for {
		t, ok := p.peek()
		if !ok {
			return nil
		}
		if t.kind != tokEdge {
			return fmt.Errorf("%w: expected edge operator, got %q", ErrSyntax, t.text)
		}
		p.pos++
		edgeAttrs, err := p.maybeAttrs()
		if err != nil {
			return err
		}
		toID, err := p.nodeRef()
		if err != nil {
			return err
		}
		opts := edgeOptsFor(t.text)
		e, err := p.g.AddEdge(p.lastNode, toID, opts...)
		if err != nil {
			return err
		}
		for _, kv := range edgeAttrs {
			if err := p.g.SetEdgeAttribute(e.ID(), kv.key, kv.value); err != nil {
				return err
			}
		}
		p.lastNode = toID
	}
}

func edgeOptsFor(op string) []graph.EdgeOption {
	switch op {
	case "<->":
		return []graph.EdgeOption{graph.Bidirectional()}
	case "--":
		return []graph.EdgeOption{graph.Undirected()}
	default:
		return nil
	}
}

func (p *lineParser) nodeRef() (graph.NodeID, error) {
	open, ok := p.next()
	if !ok || open.kind != tokLBracket {
		return 0, fmt.Errorf("%w: expected '['", ErrSyntax)
	}
	name, ok := p.next()
	if !ok || name.kind != tokIdent {
		return 0, fmt.Errorf("%w: expected node name", ErrSyntax)
	}
	closeTok, ok := p.next()
	if !ok || closeTok.kind != tokRBracket {
		return 0, fmt.Errorf("%w: expected ']'", ErrSyntax)
	}

	n, ok := p.g.NodeByName(name.text)
	if !ok {
		var err error
		n, err = p.g.AddNode(name.text)
		if err != nil {
			return 0, err
		}
	}

	attrs, err := p.maybeAttrs()
	if err != nil {
		return 0, err
	}
	for _, kv := range attrs {
		if err := p.g.SetNodeAttribute(n.ID(), kv.key, kv.value); err != nil {
			return 0, err
		}
	}
	return n.ID(), nil
}

type kv struct{ key, value string }

func (p *lineParser) maybeAttrs() ([]kv, error) {
	t, ok := p.peek()
	if !ok || t.kind != tokLBrace {
		return nil, nil
	}
	p.pos++
	var out []kv
	for {
		t, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("%w: unterminated attribute block", ErrSyntax)
		}
		if t.kind == tokRBrace {
			return out, nil
		}
		if t.kind != tokIdent {
			return nil, fmt.Errorf("%w: expected attribute name, got %q", ErrSyntax, t.text)
		}
		key := t.text
		colon, ok := p.next()
		if !ok || colon.kind != tokColon {
			return nil, fmt.Errorf("%w: expected ':' after %q", ErrSyntax, key)
		}
		val, ok := p.next()
		if !ok || val.kind != tokIdent {
			return nil, fmt.Errorf("%w: expected value for %q", ErrSyntax, key)
		}
		out = append(out, kv{key: key, value: val.text})
		if sep, ok := p.peek(); ok && sep.kind == tokSemi {
			p.pos++
		}
	}
}
