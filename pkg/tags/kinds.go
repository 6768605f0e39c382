package tags

import (
	"sort"

	"github.com/vango-dev/tagtree/pkg/attrs"
	"github.com/vango-dev/tagtree/pkg/markup"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// required lists the attributes a kind cannot be built without.
var required = map[string][]string{
	"a":      {"href"},
	"img":    {"src"},
	"link":   {"href"},
	"source": {"src"},
}

var registry = map[string]markup.Kind{}

func init() {
	for _, tag := range []string{
		"html", "head", "body", "title", "meta", "link", "base", "style", "script",
		"header", "footer", "main", "nav", "section", "article", "aside",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"div", "p", "span", "pre", "blockquote", "ul", "ol", "li", "hr", "br", "wbr",
		"a", "strong", "em", "b", "i", "code", "small",
		"img", "picture", "source", "video", "audio", "track", "embed",
		"table", "thead", "tbody", "tr", "th", "td", "col", "area", "param",
		"form", "label", "input", "button", "select", "option", "textarea",
	} {
		Register(markup.Kind{Tag: tag, Void: voidElements[tag], Required: required[tag]})
	}
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Register adds or replaces a kind in the registry.
func Register(kind markup.Kind) {
	registry[kind.Tag] = kind
}

// Lookup returns the registered kind for tag.
func Lookup(tag string) (markup.Kind, bool) {
	k, ok := registry[tag]
	return k, ok
}

// KindFor returns the registered kind for tag, or a plain kind whose void
// flag follows the HTML void element list.
func KindFor(tag string) markup.Kind {
	if k, ok := registry[tag]; ok {
		return k
	}
	return markup.Kind{Tag: tag, Void: voidElements[tag]}
}

// Kinds returns every registered kind sorted by tag.
func Kinds() []markup.Kind {
	out := make([]markup.Kind, 0, len(registry))
	for _, k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// New builds an element for tag from a mix of attributes and children.
func New(tag string, args ...any) (*markup.Element, error) {
	return build(KindFor(tag), args)
}

// build splits args into attribute bindings and children.
// Arguments can be: nil, attrs.Attr, []attrs.Attr, attrs.List, or a child.
func build(kind markup.Kind, args []any) (*markup.Element, error) {
	var bindings []attrs.Attr
	var children []any

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue
		case attrs.Attr:
			if !v.IsEmpty() {
				bindings = append(bindings, v)
			}
		case []attrs.Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					bindings = append(bindings, a)
				}
			}
		case attrs.List:
			for _, a := range v {
				if !a.IsEmpty() {
					bindings = append(bindings, a)
				}
			}
		default:
			children = append(children, v)
		}
	}

	e, err := markup.New(kind, bindings...)
	if err != nil {
		return nil, err
	}
	return e.Append(children...), nil
}

func must(tag string, args []any) *markup.Element {
	e, err := New(tag, args...)
	if err != nil {
		panic(err)
	}
	return e
}
