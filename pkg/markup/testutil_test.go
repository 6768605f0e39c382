package markup

import "github.com/vango-dev/tagtree/pkg/attrs"

var (
	divKind  = Kind{Tag: "div"}
	spanKind = Kind{Tag: "span"}
	imgKind  = Kind{Tag: "img", Void: true, Required: []string{"src"}}
	linkKind = Kind{Tag: "a", Required: []string{"href"}}
)

func div(bindings ...attrs.Attr) *Element  { return MustNew(divKind, bindings...) }
func span(bindings ...attrs.Attr) *Element { return MustNew(spanKind, bindings...) }
