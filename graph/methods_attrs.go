package graph

import (
	"errors"

	"github.com/nodegrid/manhattan/graph/attrs"
)

// objClass returns "node"/"edge"/"group", optionally suffixed with the
// object's own "class" attribute value ("node.city"), for schema lookup
// and class-attribute inheritance (spec §4.1's attribute()).
func objClass(base string, own map[string]attrValue) string {
	if v, ok := own["class"]; ok && v.Str != "" {
		return base + "." + v.Str
	}
	return base
}

func (g *Graph) validate(class, name, raw string) (attrValue, error) {
	return g.schema.Validate(class, name, raw)
}

// recordAttrError classifies err per spec §7 and either returns it (when
// strict validation is enforced and fatal_errors is set) or downgrades it
// to a queued warning.
func (g *Graph) recordAttrError(class, name, raw string, err error) error {
	kind := KindInvalidAttributeValue
	if isUnknownName(err) {
		kind = KindInvalidAttributeName
	}
	wrapped := &AttrError{Kind: kind, Class: class, Name: name, Value: raw, Err: err}

	if g.strict && g.fatalErrors {
		if g.catching {
			g.fatals = append(g.fatals, wrapped)
		}
		return wrapped
	}
	g.warnings = append(g.warnings, wrapped)
	return nil
}

func isUnknownName(err error) bool {
	return errors.Is(err, attrs.ErrUnknownName)
}

// SetGraphAttribute validates and stores a graph-level attribute.
func (g *Graph) SetGraphAttribute(name, raw string) error {
	v, err := g.validate("graph", name, raw)
	if err != nil {
		return g.recordAttrError("graph", name, raw, err)
	}
	return g.setGraphAttributeValue(name, v)
}

func (g *Graph) setGraphAttributeValue(name string, v attrValue) error {
	g.graphAttrs[name] = v
	g.touch()
	return nil
}

// GraphAttribute resolves a graph-level attribute to its effective value
// (falling back to the schema default), spec §4.1 attribute().
func (g *Graph) GraphAttribute(name string) attrValue {
	if v, ok := g.graphAttrs[name]; ok {
		return v
	}
	return g.schema.Default("graph", name)
}

// RawGraphAttribute returns the graph-level attribute only if explicitly set.
func (g *Graph) RawGraphAttribute(name string) (attrValue, bool) {
	v, ok := g.graphAttrs[name]
	return v, ok
}

// SetClassAttribute sets a default for every object of class (e.g. "node"
// or the subclass "node.city").
func (g *Graph) SetClassAttribute(class, name, raw string) error {
	v, err := g.validate(class, name, raw)
	if err != nil {
		return g.recordAttrError(class, name, raw, err)
	}
	if g.classAttrs[class] == nil {
		g.classAttrs[class] = make(map[string]attrValue)
	}
	g.classAttrs[class][name] = v
	g.touch()
	return nil
}

func (g *Graph) classAttribute(class, name string) (attrValue, bool) {
	if m, ok := g.classAttrs[class]; ok {
		if v, ok := m[name]; ok {
			return v, true
		}
	}
	return attrValue{}, false
}

// resolve implements spec §4.1's inheritance chain: object -> subclass ->
// base class -> schema default.
func (g *Graph) resolve(base string, own map[string]attrValue, name string) attrValue {
	if v, ok := own[name]; ok {
		return v
	}
	class := objClass(base, own)
	if class != base {
		if v, ok := g.classAttribute(class, name); ok {
			return v
		}
	}
	if v, ok := g.classAttribute(base, name); ok {
		return v
	}
	return g.schema.Default(class, name)
}

// --- node ---

// SetNodeAttribute validates and stores a node-instance attribute.
func (g *Graph) SetNodeAttribute(id NodeID, name, raw string) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	class := objClass("node", n.attrs)
	v, err := g.validate(class, name, raw)
	if err != nil {
		return g.recordAttrError(class, name, raw, err)
	}
	n.attrs[name] = v
	g.touch()
	return nil
}

// NodeAttribute resolves a node attribute with full inheritance.
func (g *Graph) NodeAttribute(id NodeID, name string) attrValue {
	n, ok := g.nodes[id]
	if !ok {
		return attrValue{}
	}
	return g.resolve("node", n.attrs, name)
}

// RawNodeAttribute returns a node's own attribute only if explicitly set.
func (g *Graph) RawNodeAttribute(id NodeID, name string) (attrValue, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return attrValue{}, false
	}
	v, ok := n.attrs[name]
	return v, ok
}

// --- edge ---

// SetEdgeAttribute validates and stores an edge-instance attribute.
func (g *Graph) SetEdgeAttribute(id EdgeID, name, raw string) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	class := objClass("edge", e.attrs)
	v, err := g.validate(class, name, raw)
	if err != nil {
		return g.recordAttrError(class, name, raw, err)
	}
	e.attrs[name] = v
	g.touch()
	return nil
}

// EdgeAttribute resolves an edge attribute with full inheritance.
func (g *Graph) EdgeAttribute(id EdgeID, name string) attrValue {
	e, ok := g.edges[id]
	if !ok {
		return attrValue{}
	}
	return g.resolve("edge", e.attrs, name)
}

// RawEdgeAttribute returns an edge's own attribute only if explicitly set.
func (g *Graph) RawEdgeAttribute(id EdgeID, name string) (attrValue, bool) {
	e, ok := g.edges[id]
	if !ok {
		return attrValue{}, false
	}
	v, ok := e.attrs[name]
	return v, ok
}

// --- group ---

// SetGroupAttribute validates and stores a group-instance attribute.
func (g *Graph) SetGroupAttribute(id GroupID, name, raw string) error {
	grp, ok := g.groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	class := objClass("group", grp.attrs)
	v, err := g.validate(class, name, raw)
	if err != nil {
		return g.recordAttrError(class, name, raw, err)
	}
	grp.attrs[name] = v
	g.touch()
	return nil
}

// GroupAttribute resolves a group attribute with full inheritance.
func (g *Graph) GroupAttribute(id GroupID, name string) attrValue {
	grp, ok := g.groups[id]
	if !ok {
		return attrValue{}
	}
	return g.resolve("group", grp.attrs, name)
}

// Warnings returns every non-fatal issue recorded since the graph was
// created (spec §7: accumulated when strict/fatal_errors allow it).
func (g *Graph) Warnings() []error { return append([]error(nil), g.warnings...) }

// SetCatchErrors toggles whether fatal attribute errors are additionally
// queued (retrievable via FatalErrors) instead of only being returned to
// the immediate caller, spec §7's "catch mode".
func (g *Graph) SetCatchErrors(catch bool) { g.catching = catch }

// FatalErrors returns every fatal error queued while catch mode was on.
func (g *Graph) FatalErrors() []error { return append([]error(nil), g.fatals...) }
