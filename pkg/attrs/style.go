package attrs

import (
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Style is an ordered map of CSS property names to values.
type Style struct {
	props *orderedmap.OrderedMap[string, any]
}

// NewStyle returns an empty Style.
func NewStyle() *Style {
	return &Style{props: orderedmap.New[string, any]()}
}

// ParseStyle builds a Style from declarations of the form "k: v; k2: v2".
// Declarations without a colon are ignored.
func ParseStyle(decls string) *Style {
	s := NewStyle()
	for _, decl := range strings.Split(decls, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s.Set(name, strings.TrimSpace(value))
	}
	return s
}

// Set assigns a property, keeping its original position when it exists.
func (s *Style) Set(name string, value any) {
	s.props.Set(name, value)
}

// Get returns the value of a property.
func (s *Style) Get(name string) (any, bool) {
	return s.props.Get(name)
}

// Has reports whether a property is set.
func (s *Style) Has(name string) bool {
	_, ok := s.props.Get(name)
	return ok
}

// Delete removes a property. Missing properties are ignored.
func (s *Style) Delete(name string) {
	s.props.Delete(name)
}

// Len returns the number of properties.
func (s *Style) Len() int {
	return s.props.Len()
}

// Each implements Source so a Style can be merged into another.
func (s *Style) Each(fn func(name string, value any)) {
	for pair := s.props.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// All iterates properties in insertion order.
func (s *Style) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := s.props.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Merge sets every entry of src, in src's order.
func (s *Style) Merge(src Source) {
	src.Each(s.Set)
}

// Clone returns an independent copy.
func (s *Style) Clone() *Style {
	c := NewStyle()
	c.Merge(s)
	return c
}

// String renders the declarations as "k: v; k2: v2".
func (s *Style) String() string {
	var b strings.Builder
	for name, value := range s.All() {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(ValueString(value))
	}
	return b.String()
}
