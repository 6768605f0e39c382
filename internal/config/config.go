package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tagtree/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tagtree.yaml"

	// DefaultAddr is the default preview server address.
	DefaultAddr = "localhost:8080"

	// DefaultMetricsPath is the default metrics endpoint.
	DefaultMetricsPath = "/metrics"

	// DefaultDocs is the default document directory.
	DefaultDocs = "."

	// DefaultLiveInterval is how often live previews re-render.
	DefaultLiveInterval = "1s"

	// DefaultS3Region is used for s3:// document locations without a region.
	DefaultS3Region = "us-east-1"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	engines    = []string{"native", "xnet"}
)

// Config represents the complete tagtree.yaml configuration.
type Config struct {
	// Render contains rendering options.
	Render RenderConfig `yaml:"render"`

	// Serve contains preview server options.
	Serve ServeConfig `yaml:"serve"`

	// Log contains logging options.
	Log LogConfig `yaml:"log"`

	// Internal: path to the config file
	configPath string
}

// RenderConfig contains rendering options.
type RenderConfig struct {
	// Pretty enables padded, newline-separated output.
	Pretty bool `yaml:"pretty"`

	// Doctype writes "<!DOCTYPE html>" before the document.
	Doctype bool `yaml:"doctype"`

	// Engine is "native" or "xnet".
	Engine string `yaml:"engine,omitempty"`
}

// ServeConfig contains preview server options.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// MetricsPath is where Prometheus metrics are exposed.
	MetricsPath string `yaml:"metrics_path"`

	// Docs is the directory holding <name>.yaml documents, or an
	// s3://bucket/prefix location.
	Docs string `yaml:"docs"`

	// LiveInterval is how often live previews re-render, as a duration.
	LiveInterval string `yaml:"live_interval"`

	// S3 configures the client for s3:// document locations.
	S3 S3Config `yaml:"s3,omitempty"`
}

// S3Config configures the S3 client. Credentials come from
// AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY; requests are anonymous
// without them.
type S3Config struct {
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`
}

// LogConfig contains logging options.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Engine: "native",
		},
		Serve: ServeConfig{
			Addr:         DefaultAddr,
			MetricsPath:  DefaultMetricsPath,
			Docs:         DefaultDocs,
			LiveInterval: DefaultLiveInterval,
			S3: S3Config{
				Region: DefaultS3Region,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for tagtree.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. A missing file
// returns the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.New("E401").WithDetail(path).Wrap(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E402").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E401").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E401").WithDetail(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// DocsPath returns the document directory, resolved against the config
// file's directory when relative. s3:// locations are returned unchanged.
func (c *Config) DocsPath() string {
	if filepath.IsAbs(c.Serve.Docs) || c.configPath == "" || strings.HasPrefix(c.Serve.Docs, "s3://") {
		return c.Serve.Docs
	}
	return filepath.Join(c.Dir(), c.Serve.Docs)
}

// applyDefaults fills in default values for fields the file left empty.
func (c *Config) applyDefaults() {
	if c.Render.Engine == "" {
		c.Render.Engine = "native"
	}
	if c.Serve.Docs == "" {
		c.Serve.Docs = DefaultDocs
	}
	if c.Serve.MetricsPath == "" {
		c.Serve.MetricsPath = DefaultMetricsPath
	}
	if c.Serve.LiveInterval == "" {
		c.Serve.LiveInterval = DefaultLiveInterval
	}
	if c.Serve.S3.Region == "" {
		c.Serve.S3.Region = DefaultS3Region
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch {
	case !slices.Contains(logLevels, c.Log.Level):
		return invalid("log.level", c.Log.Level, logLevels)
	case !slices.Contains(logFormats, c.Log.Format):
		return invalid("log.format", c.Log.Format, logFormats)
	case !slices.Contains(engines, c.Render.Engine):
		return invalid("render.engine", c.Render.Engine, engines)
	case c.Serve.Addr == "":
		return errors.New("E403").WithDetail("serve.addr must not be empty")
	case !strings.HasPrefix(c.Serve.MetricsPath, "/"):
		return errors.New("E403").
			WithDetailf("serve.metrics_path %q must start with /", c.Serve.MetricsPath)
	}

	if d, err := time.ParseDuration(c.Serve.LiveInterval); err != nil || d <= 0 {
		return errors.New("E403").
			WithDetailf("serve.live_interval %q must be a positive duration", c.Serve.LiveInterval)
	}
	return nil
}

// LiveInterval returns serve.live_interval as a duration. It falls back to
// the default when the value does not parse; Validate reports that case.
func (c *Config) LiveInterval() time.Duration {
	if d, err := time.ParseDuration(c.Serve.LiveInterval); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultLiveInterval)
	return d
}

func invalid(key, value string, allowed []string) error {
	return errors.New("E403").
		WithDetailf("%s %q is not one of %s", key, value, strings.Join(allowed, ", "))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the directory containing
// tagtree.yaml. It returns startDir's absolute form when none is found.
func FindProjectRoot(startDir string) (string, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest tagtree.yaml at or
// above the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
