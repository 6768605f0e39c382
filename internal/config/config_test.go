package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vango-dev/tagtree/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Addr != DefaultAddr {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, DefaultAddr)
	}
	if cfg.Serve.MetricsPath != DefaultMetricsPath {
		t.Errorf("Serve.MetricsPath = %q, want %q", cfg.Serve.MetricsPath, DefaultMetricsPath)
	}
	if cfg.Serve.Docs != DefaultDocs {
		t.Errorf("Serve.Docs = %q, want %q", cfg.Serve.Docs, DefaultDocs)
	}
	if cfg.Render.Pretty || cfg.Render.Doctype {
		t.Error("render flags should default to false")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Serve.Addr != DefaultAddr {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, DefaultAddr)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configYAML := `render:
  pretty: true
  engine: xnet
serve:
  addr: 0.0.0.0:9000
  docs: pages
log:
  level: DEBUG
`
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Render.Pretty {
		t.Error("Render.Pretty should be true")
	}
	if cfg.Render.Engine != "xnet" {
		t.Errorf("Render.Engine = %q, want xnet", cfg.Render.Engine)
	}
	if cfg.Serve.Addr != "0.0.0.0:9000" {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}
	if cfg.Serve.MetricsPath != DefaultMetricsPath {
		t.Errorf("Serve.MetricsPath = %q, want default", cfg.Serve.MetricsPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.DocsPath() != filepath.Join(tmpDir, "pages") {
		t.Errorf("DocsPath() = %q", cfg.DocsPath())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(path, []byte("render: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if !stderrors.Is(err, errors.New("E402")) {
		t.Fatalf("LoadFile() error = %v, want E402", err)
	}
}

func TestLoadUnreadable(t *testing.T) {
	// A directory in place of the file fails to read with something other
	// than not-exist.
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if !stderrors.Is(err, errors.New("E401")) {
		t.Fatalf("LoadFile() error = %v, want E401", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"bad engine", func(c *Config) { c.Render.Engine = "dom" }, true},
		{"empty addr", func(c *Config) { c.Serve.Addr = "" }, true},
		{"relative metrics path", func(c *Config) { c.Serve.MetricsPath = "metrics" }, true},
		{"json format", func(c *Config) { c.Log.Format = "json" }, false},
		{"bad interval", func(c *Config) { c.Serve.LiveInterval = "soon" }, true},
		{"zero interval", func(c *Config) { c.Serve.LiveInterval = "0s" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.CategoryOf(err) != errors.CategoryConfig {
				t.Errorf("CategoryOf() = %q, want config", errors.CategoryOf(err))
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(path, []byte("serve:\n  metrics_path: metrics\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if !stderrors.Is(err, errors.New("E403")) {
		t.Fatalf("LoadFile() error = %v, want E403", err)
	}
	if cfg != nil {
		t.Error("LoadFile() should return nil config on error")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Render.Doctype = true
	cfg.Serve.Addr = ":7000"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !loaded.Render.Doctype || loaded.Serve.Addr != ":7000" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), nil, 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists() mismatch")
	}
}

func TestLiveInterval(t *testing.T) {
	cfg := New()
	if got := cfg.LiveInterval(); got != time.Second {
		t.Errorf("LiveInterval() = %v, want 1s", got)
	}
	cfg.Serve.LiveInterval = "250ms"
	if got := cfg.LiveInterval(); got != 250*time.Millisecond {
		t.Errorf("LiveInterval() = %v, want 250ms", got)
	}
	cfg.Serve.LiveInterval = "bogus"
	if got := cfg.LiveInterval(); got != time.Second {
		t.Errorf("LiveInterval() = %v, want fallback 1s", got)
	}
}

func TestDocsPathS3(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(path, []byte("serve:\n  docs: s3://bucket/pages\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DocsPath() != "s3://bucket/pages" {
		t.Errorf("DocsPath() = %q", cfg.DocsPath())
	}
	if cfg.Serve.S3.Region != DefaultS3Region {
		t.Errorf("S3.Region = %q, want %q", cfg.Serve.S3.Region, DefaultS3Region)
	}
}
