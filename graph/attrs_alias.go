package graph

import (
	"strconv"

	"github.com/nodegrid/manhattan/graph/attrs"
)

// attrValue is a local alias so the rest of this package can stay terse;
// the canonical type lives in graph/attrs.
type attrValue = attrs.Value

const (
	attrKindText = attrs.KindText
)

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
