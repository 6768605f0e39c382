package tags

import "github.com/vango-dev/tagtree/pkg/markup"

// Document structure

func Html(args ...any) *markup.Element  { return must("html", args) }
func Head(args ...any) *markup.Element  { return must("head", args) }
func Body(args ...any) *markup.Element  { return must("body", args) }
func Title(args ...any) *markup.Element { return must("title", args) }
func Meta(args ...any) *markup.Element  { return must("meta", args) }
func Script(args ...any) *markup.Element {
	return must("script", args)
}

// Sections

func Header(args ...any) *markup.Element  { return must("header", args) }
func Footer(args ...any) *markup.Element  { return must("footer", args) }
func Main(args ...any) *markup.Element    { return must("main", args) }
func Nav(args ...any) *markup.Element     { return must("nav", args) }
func Section(args ...any) *markup.Element { return must("section", args) }
func Article(args ...any) *markup.Element { return must("article", args) }
func H1(args ...any) *markup.Element      { return must("h1", args) }
func H2(args ...any) *markup.Element      { return must("h2", args) }
func H3(args ...any) *markup.Element      { return must("h3", args) }

// Grouping content

func Div(args ...any) *markup.Element  { return must("div", args) }
func P(args ...any) *markup.Element    { return must("p", args) }
func Span(args ...any) *markup.Element { return must("span", args) }
func Pre(args ...any) *markup.Element  { return must("pre", args) }
func Ul(args ...any) *markup.Element   { return must("ul", args) }
func Ol(args ...any) *markup.Element   { return must("ol", args) }
func Li(args ...any) *markup.Element   { return must("li", args) }
func Hr(args ...any) *markup.Element   { return must("hr", args) }
func Br(args ...any) *markup.Element   { return must("br", args) }

// Text-level semantics

func Strong(args ...any) *markup.Element { return must("strong", args) }
func Em(args ...any) *markup.Element     { return must("em", args) }
func Code(args ...any) *markup.Element   { return must("code", args) }

// Tables

func Table(args ...any) *markup.Element { return must("table", args) }
func Tr(args ...any) *markup.Element    { return must("tr", args) }
func Th(args ...any) *markup.Element    { return must("th", args) }
func Td(args ...any) *markup.Element    { return must("td", args) }

// Forms

func Form(args ...any) *markup.Element     { return must("form", args) }
func Label(args ...any) *markup.Element    { return must("label", args) }
func Input(args ...any) *markup.Element    { return must("input", args) }
func Button(args ...any) *markup.Element   { return must("button", args) }
func Textarea(args ...any) *markup.Element { return must("textarea", args) }

// Kinds with required attributes

// A builds an anchor. It fails without href.
func A(args ...any) (*markup.Element, error) { return New("a", args...) }

// Img builds an image. It fails without src.
func Img(args ...any) (*markup.Element, error) { return New("img", args...) }

// Link builds a link element. It fails without href.
func Link(args ...any) (*markup.Element, error) { return New("link", args...) }

// Source builds a media source. It fails without src.
func Source(args ...any) (*markup.Element, error) { return New("source", args...) }
