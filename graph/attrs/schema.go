package attrs

import (
	"fmt"
	"strconv"
	"strings"
)

// AttrDef describes one attribute of one class.
type AttrDef struct {
	Name         string
	Kind         Kind
	Default      string // raw default, validated on each Schema.Default call (not cached)
	Enum         []string
	MultiAllowed bool
}

// Schema is a namespaced registry of AttrDef, one map per class
// ("graph", "node", "edge", "group", or a subclass like "node.city").
// Subclasses without their own AttrDef fall back to the base class's defs
// for validation (a subclass never introduces attribute types the base
// class doesn't have; it only layers instance values, see graph.attribute).
type Schema struct {
	classes map[string]map[string]AttrDef
}

// NewSchema builds the default schema used by this module: the attribute
// classes and concrete attribute set the layout engine itself reads or
// writes (spec §6.1).
func NewSchema() *Schema {
	s := &Schema{classes: map[string]map[string]AttrDef{
		"graph": {},
		"node":  {},
		"edge":  {},
		"group": {},
	}}

	s.define("graph", AttrDef{Name: "flow", Kind: KindFlow, Default: "east"})
	s.define("graph", AttrDef{Name: "root", Kind: KindString})
	s.define("graph", AttrDef{Name: "type", Kind: KindEnum, Enum: []string{"adhoc", "force"}, Default: "adhoc"})
	s.define("graph", AttrDef{Name: "undirected", Kind: KindBool, Default: "0"})

	s.define("node", AttrDef{Name: "flow", Kind: KindFlow})
	s.define("node", AttrDef{Name: "rank", Kind: KindUint})
	s.define("node", AttrDef{Name: "size", Kind: KindSize, Default: "1,1"})
	s.define("node", AttrDef{Name: "origin", Kind: KindString})
	s.define("node", AttrDef{Name: "offset", Kind: KindOffset, Default: "0,0"})
	s.define("node", AttrDef{Name: "group", Kind: KindString})
	s.define("node", AttrDef{Name: "label", Kind: KindText})
	s.define("node", AttrDef{Name: "align", Kind: KindEnum, Enum: []string{"left", "center", "right"}, Default: "center"})
	s.define("node", AttrDef{Name: "class", Kind: KindString})
	s.define("node", AttrDef{Name: "color", Kind: KindColor, Default: "black"})
	s.define("node", AttrDef{Name: "fill", Kind: KindColor, Default: "white"})
	s.define("node", AttrDef{Name: "border", Kind: KindEnum, Enum: []string{"solid", "dashed", "dotted", "none", "bold", "double"}, Default: "solid"})
	s.define("node", AttrDef{Name: "shape", Kind: KindEnum, Enum: []string{"rect", "rounded", "circle", "diamond", "none"}, Default: "rect"})

	s.define("edge", AttrDef{Name: "flow", Kind: KindFlow})
	s.define("edge", AttrDef{Name: "minlen", Kind: KindUint, Default: "1"})
	s.define("edge", AttrDef{Name: "start", Kind: KindPort, MultiAllowed: true})
	s.define("edge", AttrDef{Name: "end", Kind: KindPort, MultiAllowed: true})
	s.define("edge", AttrDef{Name: "label", Kind: KindText})
	s.define("edge", AttrDef{Name: "color", Kind: KindColor, Default: "black"})
	s.define("edge", AttrDef{Name: "style", Kind: KindEnum, Enum: []string{"solid", "dashed", "dotted", "bold", "double"}, Default: "solid"})
	s.define("edge", AttrDef{Name: "class", Kind: KindString})

	s.define("group", AttrDef{Name: "label", Kind: KindText})
	s.define("group", AttrDef{Name: "align", Kind: KindEnum, Enum: []string{"left", "center", "right"}, Default: "left"})
	s.define("group", AttrDef{Name: "class", Kind: KindString})
	s.define("group", AttrDef{Name: "color", Kind: KindColor, Default: "black"})
	s.define("group", AttrDef{Name: "fill", Kind: KindColor, Default: "none"})

	return s
}

func (s *Schema) define(class string, def AttrDef) {
	s.classes[class][def.Name] = def
}

// baseOf returns the base class name ("node" from "node.city").
func baseOf(class string) string {
	if i := strings.IndexByte(class, '.'); i >= 0 {
		return class[:i]
	}
	return class
}

// lookup finds the AttrDef for name under class, falling back to the base
// class's definitions when class is a subclass (spec §4.1 inheritance is
// about attribute *values*; attribute *definitions* always live on the base
// class, per spec §9's class-name re-architecture note).
func (s *Schema) lookup(class, name string) (AttrDef, bool) {
	if defs, ok := s.classes[class]; ok {
		if d, ok := defs[name]; ok {
			return d, true
		}
	}
	base := baseOf(class)
	if base == class {
		return AttrDef{}, false
	}
	defs, ok := s.classes[base]
	if !ok {
		return AttrDef{}, false
	}
	d, ok := defs[name]
	return d, ok
}

// Validate parses raw for attribute name of class, returning the canonical
// Value or one of ErrUnknownName / ErrInvalidValue / ErrMultipleNotAllowed.
func (s *Schema) Validate(class, name, raw string) (Value, error) {
	def, ok := s.lookup(class, name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q has no %q attribute", ErrUnknownName, class, name)
	}

	if strings.Contains(raw, "|") {
		if !def.MultiAllowed {
			return Value{}, fmt.Errorf("%w: attribute %q does not accept '|'-separated values", ErrMultipleNotAllowed, name)
		}
		parts := strings.Split(raw, "|")
		vals := make([]Value, 0, len(parts))
		for _, p := range parts {
			v, err := validateScalar(def, strings.TrimSpace(p))
			if err != nil {
				return Value{}, err
			}
			vals = append(vals, v)
		}
		return Value{Kind: def.Kind, List: vals}, nil
	}

	return validateScalar(def, raw)
}

// Default returns the canonical default Value for (class, name), or the
// zero Value if no default is registered.
func (s *Schema) Default(class, name string) Value {
	def, ok := s.lookup(class, name)
	if !ok || def.Default == "" {
		return Value{}
	}
	v, err := validateScalar(def, def.Default)
	if err != nil {
		return Value{}
	}
	return v
}

func validateScalar(def AttrDef, raw string) (Value, error) {
	switch def.Kind {
	case KindColor:
		return ValidateColor(raw)
	case KindEnum:
		low := strings.ToLower(strings.TrimSpace(raw))
		for _, allowed := range def.Enum {
			if low == allowed {
				return Value{Kind: KindEnum, Str: allowed}, nil
			}
		}
		return Value{}, fmt.Errorf("%w: %q is not a valid %s for attribute %q", ErrInvalidValue, raw, enumList(def.Enum), def.Name)
	case KindUint:
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 31)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a non-negative integer for attribute %q", ErrInvalidValue, raw, def.Name)
		}
		return Value{Kind: KindUint, Int: int64(n)}, nil
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "1", "true", "yes", "on":
			return Value{Kind: KindBool, Int: 1}, nil
		case "0", "false", "no", "off", "":
			return Value{Kind: KindBool, Int: 0}, nil
		}
		return Value{}, fmt.Errorf("%w: %q is not a boolean for attribute %q", ErrInvalidValue, raw, def.Name)
	case KindAngle:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n%90 != 0 {
			return Value{}, fmt.Errorf("%w: %q is not a multiple of 90 for attribute %q", ErrInvalidValue, raw, def.Name)
		}
		return Value{Kind: KindAngle, Int: int64(((n % 360) + 360) % 360)}, nil
	case KindFlow:
		return validateFlow(raw)
	case KindPort:
		return validatePort(raw)
	case KindSize:
		return validatePair(raw, KindSize, 1, 1)
	case KindOffset:
		return validatePair(raw, KindOffset, 0, 0)
	case KindURL:
		if strings.TrimSpace(raw) == "" {
			return Value{}, fmt.Errorf("%w: url attribute %q must not be empty", ErrInvalidValue, def.Name)
		}
		return Value{Kind: KindURL, Str: raw}, nil
	case KindLCText:
		return Value{Kind: KindLCText, Str: strings.ToLower(raw)}, nil
	default: // KindString, KindText
		return Value{Kind: def.Kind, Str: raw}, nil
	}
}

func enumList(enum []string) string {
	return strings.Join(enum, "|")
}

var flowKeywords = map[string]struct {
	degrees  int64
	relative bool
}{
	"north":   {0, false},
	"east":    {90, false},
	"south":   {180, false},
	"west":    {270, false},
	"forward": {0, true},
	"front":   {0, true},
	"right":   {90, true},
	"back":    {180, true},
	"left":    {270, true},
}

func validateFlow(raw string) (Value, error) {
	low := strings.ToLower(strings.TrimSpace(raw))
	if kw, ok := flowKeywords[low]; ok {
		if kw.relative {
			return Value{Kind: KindFlow, Str: low, Int: kw.degrees, Relative: true}, nil
		}
		return Value{Kind: KindFlow, Str: low, Int: kw.degrees}, nil
	}
	if n, err := strconv.Atoi(low); err == nil && n%90 == 0 {
		deg := int64(((n % 360) + 360) % 360)
		return Value{Kind: KindFlow, Str: degreesToSide(deg), Int: deg}, nil
	}
	return Value{}, fmt.Errorf("%w: %q is not a valid flow direction", ErrInvalidValue, raw)
}

func degreesToSide(deg int64) string {
	switch deg {
	case 0:
		return "north"
	case 90:
		return "east"
	case 180:
		return "south"
	default:
		return "west"
	}
}

func validatePort(raw string) (Value, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ",", 2)
	side := strings.ToLower(strings.TrimSpace(parts[0]))
	switch side {
	case "north", "south", "east", "west", "front", "back", "left", "right":
	default:
		return Value{}, fmt.Errorf("%w: %q is not a valid port side", ErrInvalidValue, raw)
	}
	v := Value{Kind: KindPort, Str: side}
	if len(parts) == 2 {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 31)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q has a non-numeric port slot", ErrInvalidValue, raw)
		}
		v.Aux = int64(n)
	}
	return v, nil
}

func validatePair(raw string, kind Kind, minA, minB int64) (Value, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.SplitN(raw, ",", 2)
	a, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 31)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q is not a valid pair", ErrInvalidValue, raw)
	}
	b := a
	if len(parts) == 2 {
		b, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 31)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid pair", ErrInvalidValue, raw)
		}
	}
	if a < minA || b < minB {
		return Value{}, fmt.Errorf("%w: %q is below the minimum for this attribute", ErrInvalidValue, raw)
	}
	return Value{Kind: kind, Int: a, Aux: b}, nil
}
