package markup

import (
	"slices"
	"strings"

	"github.com/vango-dev/tagtree/internal/errors"
	"github.com/vango-dev/tagtree/pkg/attrs"
)

// Kind describes a concrete element type.
type Kind struct {
	// Tag is the element name written to markup.
	Tag string

	// Void elements have no closing tag and never render children.
	Void bool

	// Required lists attribute names that must be supplied to New.
	Required []string
}

// Missing returns the required names absent from bindings.
func (k Kind) Missing(bindings []attrs.Attr) []string {
	var missing []string
	names := attrs.List(bindings).Names()
	for _, req := range k.Required {
		if !slices.Contains(names, req) {
			missing = append(missing, req)
		}
	}
	return missing
}

func (k Kind) validate(bindings []attrs.Attr) error {
	missing := k.Missing(bindings)
	if len(missing) == 0 {
		return nil
	}
	return errors.New("E101").
		WithDetailf("<%s> requires %s", k.Tag, strings.Join(missing, ", "))
}
