package attrs

import (
	"iter"
	"reflect"
	"slices"

	"github.com/mitchellh/copystructure"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// StyleKey is the reserved entry holding the element's *Style.
const StyleKey = "style"

// Config controls which names accumulate and how names are spelled in markup.
type Config struct {
	// MultiValued lists names whose writes append to a sequence.
	MultiValued []string

	// Rename maps internal names to their markup spelling.
	Rename map[string]string
}

// DefaultConfig is used by New.
var DefaultConfig = Config{
	MultiValued: []string{"class", "type"},
	Rename: map[string]string{
		"className": "class",
		"htmlFor":   "for",
	},
}

// Map is an insertion-ordered attribute map.
type Map struct {
	multi   map[string]bool
	rename  map[string]string
	entries *orderedmap.OrderedMap[string, any]
}

// New returns an empty Map using DefaultConfig.
func New() *Map {
	return NewWithConfig(DefaultConfig)
}

// NewWithConfig returns an empty Map using cfg. The "style" name is never
// multi-valued, even when cfg lists it.
func NewWithConfig(cfg Config) *Map {
	m := &Map{
		multi:   make(map[string]bool, len(cfg.MultiValued)),
		rename:  make(map[string]string, len(cfg.Rename)),
		entries: orderedmap.New[string, any](),
	}
	for _, name := range cfg.MultiValued {
		if name != StyleKey {
			m.multi[name] = true
		}
	}
	for k, v := range cfg.Rename {
		m.rename[k] = v
	}
	m.entries.Set(StyleKey, NewStyle())
	return m
}

// IsMultiValued reports whether writes to name accumulate.
func (m *Map) IsMultiValued(name string) bool {
	return m.multi[m.key(name)]
}

// key resolves name to the entry it is stored under. A renamed name whose
// markup spelling is multi-valued is an alias of that spelling, so
// className and class share one sequence.
func (m *Map) key(name string) string {
	if out, ok := m.rename[name]; ok && m.multi[out] {
		return out
	}
	return name
}

// OutputName returns the markup spelling of name.
func (m *Map) OutputName(name string) string {
	if out, ok := m.rename[name]; ok {
		return out
	}
	return name
}

// Set writes value under name. Multi-valued names append value to their
// sequence (each element when value is a slice); "style" replaces or merges
// the style map; every other name is overwritten.
func (m *Map) Set(name string, value any) {
	name = m.key(name)
	if name == StyleKey {
		m.setStyle(value)
		return
	}
	if !m.multi[name] {
		m.entries.Set(name, value)
		return
	}
	seq, _ := m.entries.Get(name)
	values, _ := seq.([]any)
	m.entries.Set(name, appendValues(values, value))
}

func appendValues(values []any, value any) []any {
	switch v := value.(type) {
	case []any:
		return append(values, v...)
	case []string:
		for _, s := range v {
			values = append(values, s)
		}
		return values
	}
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		for i := 0; i < rv.Len(); i++ {
			values = append(values, rv.Index(i).Interface())
		}
		return values
	}
	return append(values, value)
}

func (m *Map) setStyle(value any) {
	switch v := value.(type) {
	case *Style:
		m.entries.Set(StyleKey, v.Clone())
	case Source:
		m.Style().Merge(v)
	case map[string]any:
		m.Style().Merge(Dict(v))
	case string:
		m.entries.Set(StyleKey, ParseStyle(v))
	case nil:
		m.entries.Set(StyleKey, NewStyle())
	}
}

// Get returns the stored value for name. Multi-valued names yield []any.
func (m *Map) Get(name string) (any, bool) {
	return m.entries.Get(m.key(name))
}

// Has reports whether name has an entry.
func (m *Map) Has(name string) bool {
	_, ok := m.entries.Get(m.key(name))
	return ok
}

// Values returns a copy of the sequence stored under a multi-valued name.
func (m *Map) Values(name string) []any {
	v, _ := m.entries.Get(m.key(name))
	seq, _ := v.([]any)
	return slices.Clone(seq)
}

// Contains reports whether the sequence under name holds value.
func (m *Map) Contains(name string, value any) bool {
	v, _ := m.entries.Get(m.key(name))
	seq, _ := v.([]any)
	return slices.Contains(seq, value)
}

// RemoveValue deletes the first occurrence of value from the sequence under
// name and reports whether it was present.
func (m *Map) RemoveValue(name string, value any) bool {
	name = m.key(name)
	v, _ := m.entries.Get(name)
	seq, ok := v.([]any)
	if !ok {
		return false
	}
	i := slices.Index(seq, value)
	if i < 0 {
		return false
	}
	m.entries.Set(name, slices.Delete(slices.Clone(seq), i, i+1))
	return true
}

// Merge calls Set for each entry of src, then for each of kw.
// A nil src is allowed.
func (m *Map) Merge(src Source, kw ...Attr) {
	if src != nil {
		src.Each(m.Set)
	}
	List(kw).Each(m.Set)
}

// Remove deletes name. Removing "style" resets it to an empty Style.
func (m *Map) Remove(name string) {
	name = m.key(name)
	if name == StyleKey {
		m.entries.Set(StyleKey, NewStyle())
		return
	}
	m.entries.Delete(name)
}

// Style returns the live style map.
func (m *Map) Style() *Style {
	v, _ := m.entries.Get(StyleKey)
	s, ok := v.(*Style)
	if !ok {
		s = NewStyle()
		m.entries.Set(StyleKey, s)
	}
	return s
}

// Len returns the number of entries, including "style".
func (m *Map) Len() int {
	return m.entries.Len()
}

// Each implements Source, so one Map can be merged into another.
func (m *Map) Each(fn func(name string, value any)) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// All iterates entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Names returns the entry names in insertion order.
func (m *Map) Names() []string {
	names := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Clone returns an independent copy with the same configuration and order.
func (m *Map) Clone() *Map {
	c := &Map{
		multi:   m.multi,
		rename:  m.rename,
		entries: orderedmap.New[string, any](),
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		switch v := pair.Value.(type) {
		case *Style:
			c.entries.Set(pair.Key, v.Clone())
		case []any:
			seq := make([]any, len(v))
			for i, x := range v {
				seq[i] = CopyValue(x)
			}
			c.entries.Set(pair.Key, seq)
		default:
			c.entries.Set(pair.Key, CopyValue(v))
		}
	}
	return c
}

// CopyValue returns a deep copy of v. Scalars come back unchanged and a
// *Style is cloned. Values copystructure cannot walk are returned as-is.
func CopyValue(v any) any {
	switch x := v.(type) {
	case nil, string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	case *Style:
		return x.Clone()
	}
	c, err := copystructure.Copy(v)
	if err != nil {
		return v
	}
	return c
}
