// Package attrs provides the ordered attribute map owned by every element.
//
// A Map keeps attributes in insertion order. Names listed as multi-valued in
// the map's Config (class and type by default) always hold a sequence, and
// every write to them appends instead of replacing:
//
//	m := attrs.New()
//	m.Set("class", "card")
//	m.Set("class", "wide")
//	m.Values("class") // ["card" "wide"]
//
// Every Map carries a reserved "style" entry holding a *Style, an ordered
// map of CSS property names to values. The entry exists from construction
// on and can be reset but never removed.
//
// A rename table maps internal names to their markup spelling (className is
// written as class, htmlFor as for). Renaming happens only when attributes
// are written out; the map itself keeps the internal name. The exception is a
// name whose spelling is multi-valued: className is an alias of class and
// writes to either accumulate into the same sequence.
//
// Maps are not safe for concurrent use.
package attrs
