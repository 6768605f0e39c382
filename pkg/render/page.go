package render

import (
	"context"
	"io"

	"github.com/vango-dev/tagtree/pkg/attrs"
	"github.com/vango-dev/tagtree/pkg/markup"
	"github.com/vango-dev/tagtree/pkg/tags"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is appended to the page's body element. It is detached from any
	// previous parent.
	Body *markup.Element

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
	Charset  string // charset attribute
}

func (m MetaTag) attrs() []attrs.Attr {
	var out []attrs.Attr
	if m.Charset != "" {
		out = append(out, attrs.A("charset", m.Charset))
	}
	if m.Name != "" {
		out = append(out, attrs.A("name", m.Name))
	}
	if m.Property != "" {
		out = append(out, attrs.A("property", m.Property))
	}
	if m.Content != "" {
		out = append(out, attrs.A("content", m.Content))
	}
	return out
}

// Page builds the html element for page.
func Page(page PageData) (*markup.Element, error) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := tags.Head(
		tags.Meta(attrs.A("charset", "utf-8")),
		tags.Meta(tags.Name("viewport"), attrs.A("content", "width=device-width, initial-scale=1")),
	)
	if page.Title != "" {
		head.Append(tags.Title(page.Title))
	}
	for _, m := range page.Meta {
		head.Append(tags.Meta(m.attrs()))
	}
	for _, href := range page.StyleSheets {
		link, err := tags.Link(tags.Rel("stylesheet"), tags.Href(href))
		if err != nil {
			return nil, err
		}
		head.Append(link)
	}
	for _, css := range page.Styles {
		style, err := tags.New("style", markup.Raw(css))
		if err != nil {
			return nil, err
		}
		head.Append(style)
	}

	return tags.Html(tags.Lang(lang), head, tags.Body(page.Body)), nil
}

// RenderPage renders a complete HTML document, DOCTYPE included, to w.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page PageData) error {
	root, err := Page(page)
	if err != nil {
		return err
	}

	cfg := r.config
	cfg.Doctype = true
	return (&Renderer{config: cfg, tracer: r.tracer}).RenderToWriter(ctx, w, root)
}
