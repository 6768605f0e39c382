// Package document loads element trees from YAML documents.
//
// A document is a single root node:
//
//	tag: div
//	class: [card, wide]
//	attrs:
//	  id: main
//	style: "color: red; margin: 0"
//	data:
//	  owner: docs
//	children:
//	  - tag: h1
//	    children: [Welcome]
//	  - plain text is escaped
//	  - raw: <b>written as is</b>
//	  - tag: img
//	    attrs: {src: logo.png}
//
// Known tags resolve through the tags registry, so required attributes are
// enforced; void may override the void flag of any tag. attrs given as a
// mapping are applied in sorted key order; give a sequence of single-key
// mappings to control the order. hidden: true sets display: none.
package document
