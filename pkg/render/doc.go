// Package render serializes markup trees to writers.
//
// The Renderer wraps Element rendering with the concerns of a serving
// process: an optional DOCTYPE preamble, an OpenTelemetry span per render,
// Prometheus metrics, and a choice of output engine.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(ctx, el)
//
// To stream to a writer:
//
//	err := renderer.RenderToWriter(ctx, w, el)
//
// # Engines
//
// EngineNative (the default) uses Element.Render and honors Pretty.
// EngineXNet converts the tree with ToHTMLNode and serializes it with
// golang.org/x/net/html; Pretty is ignored by that engine.
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(ctx, w, render.PageData{
//	    Title: "Home",
//	    Body:  body,
//	})
//
// # Observability
//
// Spans are started on RendererConfig.Tracer, or on the global tracer
// provider when it is nil. Metrics are recorded only when
// RendererConfig.Metrics is set:
//
//	m := render.NewMetrics(prometheus.DefaultRegisterer, "tagtree")
//	renderer := render.NewRenderer(render.RendererConfig{Metrics: m})
package render
