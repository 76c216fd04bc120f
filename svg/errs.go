package svg

import "errors"

var (
	ErrParse = errors.New("parse error")

	// ErrLink is returned when a link attribute cannot point at the
	// requested node.
	ErrLink = errors.New("link error")

	ErrDuplicateID     = errors.New("duplicate id")
	ErrStillReferenced = errors.New("node is still referenced")
	ErrInvariant       = errors.New("document invariant violated")
)
