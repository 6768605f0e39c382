package attrs

import (
	"fmt"
	"sort"
)

// Attr is a single name/value binding.
type Attr struct {
	Key   string
	Value any
}

// A creates an Attr with the given key and value.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Source is anything that can be merged into a Map. Each must call fn once
// per entry, in the order the entries should be applied.
type Source interface {
	Each(fn func(name string, value any))
}

// List is an ordered sequence of bindings.
type List []Attr

// Each implements Source.
func (l List) Each(fn func(name string, value any)) {
	for _, a := range l {
		if !a.IsEmpty() {
			fn(a.Key, a.Value)
		}
	}
}

// Dict is an unordered set of bindings. Go maps have no stable order, so
// entries are applied sorted by name.
type Dict map[string]any

// Each implements Source.
func (d Dict) Each(fn func(name string, value any)) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, d[k])
	}
}

// Names returns the keys of the bindings in order.
func (l List) Names() []string {
	names := make([]string, 0, len(l))
	for _, a := range l {
		if !a.IsEmpty() {
			names = append(names, a.Key)
		}
	}
	return names
}

// ValueString converts an attribute value to its markup text.
func ValueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
