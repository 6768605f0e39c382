package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/tagtree/internal/escape"
	"github.com/vango-dev/tagtree/pkg/tree"
)

// Renderer is implemented by foreign child nodes that render themselves.
type Renderer interface {
	Render(pretty bool) string
}

// Texter is implemented by foreign child nodes with text content.
type Texter interface {
	Text() string
}

// Render returns the markup for e and its subtree.
func (e *Element) Render(pretty bool) string {
	var b strings.Builder
	e.render(&b, pretty)
	return b.String()
}

// RenderTo writes the markup for e and its subtree to w.
func (e *Element) RenderTo(w io.Writer, pretty bool) error {
	_, err := io.WriteString(w, e.Render(pretty))
	return err
}

// String implements fmt.Stringer with the compact markup.
func (e *Element) String() string {
	return e.Render(false)
}

// HTML returns the markup of e's children without e's own tags.
func (e *Element) HTML(pretty bool) string {
	var b strings.Builder
	e.renderChildren(&b, pretty)
	return b.String()
}

// Text returns the text content of the subtree with all markup stripped.
func (e *Element) Text() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) render(b *strings.Builder, pretty bool) {
	b.WriteByte('<')
	b.WriteString(e.kind.Tag)
	e.attrs.AppendMarkup(b)

	if e.kind.Void {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
		e.renderChildren(b, pretty)
		b.WriteString("</")
		b.WriteString(e.kind.Tag)
		b.WriteByte('>')
	}

	if pretty {
		b.WriteString(strings.Repeat("\t", e.Depth()))
		b.WriteByte('\n')
	}
}

func (e *Element) renderChildren(b *strings.Builder, pretty bool) {
	for _, child := range e.Contents() {
		switch v := child.(type) {
		case *Element:
			v.render(b, pretty)
		case Renderer:
			b.WriteString(v.Render(pretty))
		case Raw:
			b.WriteString(string(v))
		case tree.Treer:
		default:
			b.WriteString(escape.HTML(scalarString(v)))
		}
	}
}

func (e *Element) writeText(b *strings.Builder) {
	for _, child := range e.Contents() {
		switch v := child.(type) {
		case *Element:
			v.writeText(b)
		case Texter:
			b.WriteString(v.Text())
		case tree.Treer:
		default:
			b.WriteString(scalarString(v))
		}
	}
}

// scalarString returns the string form of an opaque child.
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case Raw:
		return string(s)
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
