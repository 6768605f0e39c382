// Package markup provides Element, a tree node that renders to markup.
//
// An Element combines a tree.Node with an attribute map, a free-form data
// store and a Kind. The Kind fixes the tag name, whether the element is
// void, and which attributes must be supplied at construction:
//
//	var Link = markup.Kind{Tag: "a", Required: []string{"href"}}
//
//	a, err := markup.New(Link, attrs.A("href", "/home"))
//	if err != nil {
//	    return err // ErrMissingAttribute
//	}
//	a.AddClass("nav").Append("Home")
//	a.Render(false) // <a href="/home" class="nav">Home</a>
//
// # Rendering
//
// Non-void elements render as <tag attrs>children</tag>; void elements as
// <tag attrs/>, never writing children even when some are attached. Scalar
// children are written in their string form with markup characters escaped;
// wrap trusted markup in Raw to bypass escaping.
//
// With pretty set, each element's markup is followed by one tab per level
// of depth and a newline.
//
// # Stores
//
// Attributes (Attr, RemoveAttr, the class helpers), style properties
// (SetStyle, Hide, Show, Toggle) and caller data (Data, SetData) are three
// independent stores. Only the first two are rendered.
//
// Elements are not safe for concurrent use.
package markup
