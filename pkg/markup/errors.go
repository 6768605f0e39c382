package markup

import "github.com/vango-dev/tagtree/internal/errors"

// Sentinel errors. Errors returned by this package match them under
// errors.Is.
var (
	// ErrMissingAttribute is returned when a required attribute is absent
	// at construction.
	ErrMissingAttribute error = errors.New("E101")

	// ErrNoData is returned when reading an absent data key.
	ErrNoData error = errors.New("E302")

	// ErrNoClass is returned when removing a class that is not present.
	ErrNoClass error = errors.New("E303")
)
