package render

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/tagtree/pkg/markup"
	"github.com/vango-dev/tagtree/pkg/tree"
)

// ToHTMLNode converts el and its subtree to an x/net/html node tree.
//
// Attributes use their output names in insertion order; bare boolean
// attributes get an empty value. Raw children become html.RawNode, other
// scalars become text nodes, and foreign tree nodes are dropped unless they
// implement markup.Renderer, in which case their markup is kept raw.
func ToHTMLNode(el *markup.Element) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Tag(),
		DataAtom: atom.Lookup([]byte(el.Tag())),
	}

	el.Attrs().EachRendered(func(name, value string, _ bool) {
		n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
	})

	if el.IsVoid() {
		return n
	}

	for _, child := range el.Contents() {
		switch v := child.(type) {
		case *markup.Element:
			n.AppendChild(ToHTMLNode(v))
		case markup.Renderer:
			n.AppendChild(&html.Node{Type: html.RawNode, Data: v.Render(false)})
		case markup.Raw:
			n.AppendChild(&html.Node{Type: html.RawNode, Data: string(v)})
		case tree.Treer:
		case string:
			n.AppendChild(&html.Node{Type: html.TextNode, Data: v})
		case []byte:
			n.AppendChild(&html.Node{Type: html.TextNode, Data: string(v)})
		default:
			n.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v)})
		}
	}
	return n
}
