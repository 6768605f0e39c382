// Package tags provides concrete HTML element kinds and constructors.
//
// Constructors take a variadic mix of attributes and children, in the style
// of a component tree:
//
//	page := tags.Div(tags.Class("card"), tags.ID("main"),
//	    tags.H1("Title"),
//	    tags.P("Content"),
//	)
//
// Arguments of type attrs.Attr, []attrs.Attr or attrs.List become
// attributes; everything else is appended as a child. Kinds that require
// attributes (a, img, link, source) return an error when one is missing.
package tags
