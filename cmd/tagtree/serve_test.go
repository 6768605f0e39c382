package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tagtree/internal/config"
	"github.com/vango-dev/tagtree/internal/document"
)

func configLog(level, format string) config.LogConfig {
	return config.LogConfig{Level: level, Format: format}
}

func newTestRouter(t *testing.T) (http.Handler, *bytes.Buffer) {
	h, logs, _ := newTestRouterDir(t)
	return h, logs
}

func newTestRouterDir(t *testing.T) (http.Handler, *bytes.Buffer, string) {
	t.Helper()

	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	write("page.yaml", "tag: div\nclass: x\nchildren: [hello]\n")
	write("broken.yaml", "tag: img\n")
	write("notes.txt", "ignored")

	cfg := config.New()
	cfg.Serve.Docs = dir
	cfg.Serve.LiveInterval = "10ms"

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&syncWriter{w: &logs}, nil))
	return newRouter(cfg, newStore(cfg), prometheus.NewRegistry(), logger), &logs, dir
}

// syncWriter serializes writes from handler goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServeHealthz(t *testing.T) {
	h, logs := newTestRouter(t)

	rec := get(h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	assert.Contains(t, logs.String(), "path=/healthz")
	assert.Contains(t, logs.String(), "status=200")
}

func TestServePage(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(h, "/page")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `<div class="x">hello</div>`, rec.Body.String())
}

func TestServeErrors(t *testing.T) {
	h, logs := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, get(h, "/missing").Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/.hidden").Code)

	rec := get(h, "/broken")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "E503")
	assert.Contains(t, logs.String(), "document failed to render")
}

func TestServeIndex(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>\n"), body)
	assert.Contains(t, body, `<li><a href="/broken">broken</a></li><li><a href="/page">page</a></li>`)
	assert.NotContains(t, body, "notes")
}

func TestServeMetrics(t *testing.T) {
	h, _ := newTestRouter(t)

	get(h, "/page")
	get(h, "/page")

	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tagtree_renders_total{tag="div"} 2`)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.NoError(t, listenAndServe(ctx, srv, logger))
}

func TestServeLive(t *testing.T) {
	h, _, dir := newTestRouterDir(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/page/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, `<div class="x">hello</div>`, string(msg))

	// Replace atomically so the poller never sees a partial file.
	tmp := filepath.Join(dir, ".page.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("tag: p\nchildren: [changed]\n"), 0644))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, "page.yaml")))

	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, `<p>changed</p>`, string(msg))

	require.NoError(t, os.Remove(filepath.Join(dir, "page.yaml")))

	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "error: E501"), string(msg))
}

func TestServeLiveInvalidName(t *testing.T) {
	h, _ := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, get(h, "/.hidden/live").Code)
}

func TestNewStore(t *testing.T) {
	cfg := config.New()
	cfg.Serve.Docs = "s3://bucket/pages"
	_, ok := newStore(cfg).(*document.S3Store)
	assert.True(t, ok)

	cfg.Serve.Docs = t.TempDir()
	st, ok := newStore(cfg).(document.DirStore)
	require.True(t, ok)
	assert.Equal(t, cfg.Serve.Docs, st.Dir)
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	_, anonymous := envCredentials().(aws.AnonymousCredentials)
	assert.True(t, anonymous)

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := envCredentials().Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
