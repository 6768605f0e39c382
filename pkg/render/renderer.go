package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	"github.com/vango-dev/tagtree/pkg/markup"
)

// TracerName is the instrumentation name used when no tracer is configured.
const TracerName = "github.com/vango-dev/tagtree/pkg/render"

// Doctype is written before the root element when RendererConfig.Doctype
// is set.
const Doctype = "<!DOCTYPE html>\n"

// Engine selects the serializer used by a Renderer.
type Engine string

const (
	// EngineNative renders through Element.Render.
	EngineNative Engine = "native"

	// EngineXNet renders through golang.org/x/net/html. It ignores Pretty
	// and fails on an HTML void tag (br, img, ...) that has children, which
	// the native engine writes out as a normal open/close pair.
	EngineXNet Engine = "xnet"
)

// ParseEngine returns the engine named s. The empty string selects
// EngineNative.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineXNet:
		return EngineXNet, nil
	default:
		return "", fmt.Errorf("unknown render engine %q (want %q or %q)", s, EngineNative, EngineXNet)
	}
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	// Pretty appends depth-tab padding and a newline after every element.
	Pretty bool

	// Doctype writes "<!DOCTYPE html>" before the root element.
	Doctype bool

	// Engine selects the serializer. Defaults to EngineNative.
	Engine Engine

	// Tracer receives one span per render. Defaults to the global provider.
	Tracer trace.Tracer

	// Metrics is optional.
	Metrics *Metrics
}

// Renderer renders Element trees. A Renderer holds no per-render state and
// may be shared between goroutines as long as the trees are not.
type Renderer struct {
	config RendererConfig
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Engine == "" {
		config.Engine = EngineNative
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	return &Renderer{config: config, tracer: tracer}
}

// Config returns the renderer configuration with defaults applied.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders el to a string.
func (r *Renderer) RenderToString(ctx context.Context, el *markup.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(ctx, &buf, el); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams el to w. A nil element writes nothing.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, el *markup.Element) error {
	if el == nil {
		return nil
	}

	_, span := r.tracer.Start(ctx, "tagtree.render",
		trace.WithAttributes(
			attribute.String("tagtree.tag", el.Tag()),
			attribute.String("tagtree.engine", string(r.config.Engine)),
			attribute.Bool("tagtree.pretty", r.config.Pretty),
		),
	)
	defer span.End()

	start := time.Now()
	cw := &countingWriter{w: w}
	err := r.render(ctx, cw, el)

	span.SetAttributes(attribute.Int64("tagtree.bytes", cw.n))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	r.config.Metrics.observe(el.Tag(), cw.n, time.Since(start), err)

	return err
}

func (r *Renderer) render(ctx context.Context, w io.Writer, el *markup.Element) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.config.Doctype {
		if _, err := io.WriteString(w, Doctype); err != nil {
			return err
		}
	}

	switch r.config.Engine {
	case EngineNative:
		return el.RenderTo(w, r.config.Pretty)
	case EngineXNet:
		return html.Render(w, ToHTMLNode(el))
	default:
		return fmt.Errorf("unknown render engine %q", r.config.Engine)
	}
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
