package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/tagtree/internal/config"
	"github.com/vango-dev/tagtree/internal/document"
	"github.com/vango-dev/tagtree/internal/errors"
	"github.com/vango-dev/tagtree/pkg/render"
	"github.com/vango-dev/tagtree/pkg/tags"
)

// writeTimeout bounds each live preview write.
const writeTimeout = 5 * time.Second

func serveCmd(a *app) *cobra.Command {
	var (
		addr string
		docs string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered documents over HTTP",
		Long: `Serve every <name>.yaml in the document location at /<name>.

The location is a directory or an s3://bucket/prefix URL. /<name>/live
is a WebSocket that pushes the rendered markup whenever it changes.
Also exposes Prometheus metrics and a /healthz endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}
			if cmd.Flags().Changed("docs") {
				cfg.Serve.Docs = docs
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := &http.Server{
				Addr:              cfg.Serve.Addr,
				Handler:           newRouter(&cfg, newStore(&cfg), reg, a.logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return listenAndServe(ctx, srv, a.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default "+config.DefaultAddr+")")
	cmd.Flags().StringVar(&docs, "docs", "", "Document directory or s3://bucket/prefix")

	return cmd
}

// newStore picks the document store for cfg's document location.
func newStore(cfg *config.Config) document.Store {
	if bucket, prefix, ok := document.ParseS3URL(cfg.Serve.Docs); ok {
		return document.NewS3Store(newS3Client(cfg.Serve.S3), bucket, prefix)
	}
	return document.DirStore{Dir: cfg.DocsPath()}
}

// listenAndServe runs srv until ctx is done, then shuts it down gracefully.
func listenAndServe(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("serving documents", "addr", srv.Addr)

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// docServer renders documents from a store.
type docServer struct {
	store    document.Store
	renderer *render.Renderer
	upgrader websocket.Upgrader
	interval time.Duration
	logger   *slog.Logger
}

// newRouter builds the preview server's routes.
func newRouter(cfg *config.Config, store document.Store, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	eng, err := render.ParseEngine(cfg.Render.Engine)
	if err != nil {
		eng = render.EngineNative
	}

	s := &docServer{
		store:    store,
		logger:   logger,
		interval: cfg.LiveInterval(),
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty:  cfg.Render.Pretty,
			Doctype: cfg.Render.Doctype,
			Engine:  eng,
			Metrics: render.NewMetrics(reg, "tagtree"),
		}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, cfg.Serve.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/", s.index)
	r.Get("/{name}", s.page)
	r.Get("/{name}/live", s.live)

	return r
}

// requestLogger logs one line per request with its status and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// renderDoc loads and renders the document called name.
func (s *docServer) renderDoc(ctx context.Context, name string) ([]byte, error) {
	el, err := document.LoadFrom(ctx, s.store, name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderToWriter(ctx, &buf, el); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// statusOf maps a document error to an HTTP status.
func statusOf(err error) int {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.CategoryOf(err) == errors.CategoryDocument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// page renders the document named by the URL.
func (s *docServer) page(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	out, err := s.renderDoc(r.Context(), name)
	if err != nil {
		status := statusOf(err)
		if status == http.StatusNotFound {
			http.NotFound(w, r)
			return
		}
		s.logger.Warn("document failed to render", "name", name, "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// live pushes the rendered document over a WebSocket each time the output
// changes. Load failures are pushed as "error: ..." messages.
func (s *docServer) live(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !document.ValidName(name) {
		http.NotFound(w, r)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "name", name, "error", err)
		return
	}
	defer conn.Close()

	// The client never sends data; reading detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
					websocket.CloseNormalClosure) {
					s.logger.Warn("live read error", "name", name, "error", err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last []byte
	for {
		msg, err := s.renderDoc(r.Context(), name)
		if err != nil {
			msg = []byte("error: " + err.Error())
		}
		if last == nil || !bytes.Equal(msg, last) {
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
			last = msg
		}

		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

// index lists the available documents as a page of links.
func (s *docServer) index(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("listing documents failed", "error", err)
		http.Error(w, "cannot list documents", http.StatusInternalServerError)
		return
	}

	list := tags.Ul()
	for _, name := range names {
		link, err := tags.A(tags.Href("/"+name), name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		list.Append(tags.Li(link))
	}

	var buf bytes.Buffer
	err = s.renderer.RenderPage(r.Context(), &buf, render.PageData{
		Title: "Documents",
		Body:  tags.Main(tags.H1("Documents"), list),
	})
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
