package tags

import "github.com/vango-dev/tagtree/pkg/attrs"

// ID sets the id attribute.
func ID(id string) attrs.Attr { return attrs.A("id", id) }

// Class adds classes, each as its own entry of the class sequence.
func Class(classes ...string) attrs.Attr { return attrs.A("class", classes) }

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) attrs.Attr {
	if condition {
		return attrs.A("class", class)
	}
	return attrs.Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a attrs.Attr) attrs.Attr {
	if condition {
		return a
	}
	return attrs.Attr{}
}

// Href sets the href attribute.
func Href(url string) attrs.Attr { return attrs.A("href", url) }

// Src sets the src attribute.
func Src(url string) attrs.Attr { return attrs.A("src", url) }

// Alt sets the alt attribute.
func Alt(text string) attrs.Attr { return attrs.A("alt", text) }

// Type adds to the type attribute.
func Type(t string) attrs.Attr { return attrs.A("type", t) }

// Name sets the name attribute.
func Name(name string) attrs.Attr { return attrs.A("name", name) }

// Value sets the value attribute.
func Value(value string) attrs.Attr { return attrs.A("value", value) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) attrs.Attr { return attrs.A("title", title) }

// Rel sets the rel attribute.
func Rel(rel string) attrs.Attr { return attrs.A("rel", rel) }

// Target sets the target attribute.
func Target(target string) attrs.Attr { return attrs.A("target", target) }

// For sets the for attribute (for labels).
func For(id string) attrs.Attr { return attrs.A("htmlFor", id) }

// Lang sets the lang attribute.
func Lang(lang string) attrs.Attr { return attrs.A("lang", lang) }

// Role sets the role attribute.
func Role(role string) attrs.Attr { return attrs.A("role", role) }

// Width sets the width attribute.
func Width(w int) attrs.Attr { return attrs.A("width", w) }

// Height sets the height attribute.
func Height(h int) attrs.Attr { return attrs.A("height", h) }

// Disabled sets the disabled attribute.
func Disabled() attrs.Attr { return attrs.A("disabled", true) }

// Checked sets the checked attribute.
func Checked() attrs.Attr { return attrs.A("checked", true) }

// StyleAttr sets style declarations (named to avoid conflict with the style element).
func StyleAttr(decls string) attrs.Attr { return attrs.A(attrs.StyleKey, decls) }
