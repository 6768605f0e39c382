package attrs

import (
	"strings"

	"github.com/vango-dev/tagtree/internal/escape"
)

// Markup returns the attributes as they appear inside an opening tag, each
// preceded by a space: ` id="main" class="a b"`.
//
// Sequences are space-joined, true booleans render as a bare name, and nil
// values, false booleans, empty sequences and an empty style are omitted.
func (m *Map) Markup() string {
	var b strings.Builder
	m.AppendMarkup(&b)
	return b.String()
}

// AppendMarkup writes the output of Markup to b.
func (m *Map) AppendMarkup(b *strings.Builder) {
	m.EachRendered(func(name, value string, bare bool) {
		b.WriteByte(' ')
		b.WriteString(name)
		if bare {
			return
		}
		b.WriteString(`="`)
		b.WriteString(escape.Attr(value))
		b.WriteByte('"')
	})
}

// EachRendered calls fn for every attribute that appears in markup, in
// insertion order, with its output name and unescaped value text. bare is
// true for attributes written without a value.
func (m *Map) EachRendered(fn func(name, value string, bare bool)) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		name := m.OutputName(pair.Key)

		switch v := pair.Value.(type) {
		case nil:
		case bool:
			if v {
				fn(name, "", true)
			}
		case *Style:
			if v.Len() > 0 {
				fn(name, v.String(), false)
			}
		case []any:
			if len(v) == 0 {
				continue
			}
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = ValueString(item)
			}
			fn(name, strings.Join(parts, " "), false)
		default:
			fn(name, ValueString(v), false)
		}
	}
}
