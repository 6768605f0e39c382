package tree

import "github.com/vango-dev/tagtree/internal/errors"

// Sentinel errors. Errors returned by this package match them under
// errors.Is.
var (
	// ErrNoParent is returned by operations that need a parent on a root.
	ErrNoParent error = errors.New("E201")

	// ErrNoSibling is returned when a sibling position is out of range.
	ErrNoSibling error = errors.New("E202")

	// ErrCycle is returned when a node would become its own descendant.
	ErrCycle error = errors.New("E203")

	// ErrOutOfRange is returned for child indices outside the sequence.
	ErrOutOfRange error = errors.New("E301")
)
