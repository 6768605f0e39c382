// Package escape converts text into forms safe to embed in markup.
//
// Element.Render runs every string child through HTML and every attribute
// value through Attr. markup.Raw children are written without either.
package escape

import "strings"

var (
	textReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// Newlines and tabs are kept as entities so a parser reading the
	// attribute back does not normalize them to spaces.
	attrReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// HTML escapes a text child. Existing entities are escaped again, so "&amp;"
// becomes "&amp;amp;".
func HTML(s string) string {
	return textReplacer.Replace(s)
}

// Attr escapes an attribute value written between double quotes.
func Attr(s string) string {
	return attrReplacer.Replace(s)
}
