package attrs

import "errors"

// Sentinel errors for attribute validation. Callers branch with errors.Is;
// graph.SetXAttribute wraps these with the offending class/name/value for
// the templated user-facing message (spec §7).
var (
	// ErrUnknownName indicates no AttrDef is registered for (class, name).
	ErrUnknownName = errors.New("attrs: unknown attribute name")
	// ErrInvalidValue indicates raw failed the type-specific validator.
	ErrInvalidValue = errors.New("attrs: invalid attribute value")
	// ErrMultipleNotAllowed indicates a '|'-separated multi-value was given
	// for an attribute whose AttrDef does not allow multiple values.
	ErrMultipleNotAllowed = errors.New("attrs: multiple values not allowed for this attribute")
)
