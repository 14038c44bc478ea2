package render

import "errors"

// ErrUnsupportedFormat is returned by Render for any Format this module
// does not implement a writer for.
var ErrUnsupportedFormat = errors.New("render: unsupported format")
