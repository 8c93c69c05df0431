// File: internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Database() DatabaseConfig
	Extract() ExtractConfig
	Output() OutputConfig
	Pipeline() PipelineConfig

	// Extract Setters
	SetExtractMaxDepth(int)
	SetExtractCanonicalOrder(bool)

	// Output Setters
	SetOutputPath(string)
	SetOutputCompress(bool)
	SetOutputIndent(bool)

	// Pipeline Setters
	SetPipelineWorkers(int)

	// Database Setters
	SetDatabasePersist(bool)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	DatabaseCfg DatabaseConfig `mapstructure:"database" yaml:"database"`
	ExtractCfg  ExtractConfig  `mapstructure:"extract" yaml:"extract"`
	OutputCfg   OutputConfig   `mapstructure:"output" yaml:"output"`
	PipelineCfg PipelineConfig `mapstructure:"pipeline" yaml:"pipeline"`
}

var _ Interface = (*Config)(nil)

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerCfg }
func (c *Config) Database() DatabaseConfig { return c.DatabaseCfg }
func (c *Config) Extract() ExtractConfig   { return c.ExtractCfg }
func (c *Config) Output() OutputConfig     { return c.OutputCfg }
func (c *Config) Pipeline() PipelineConfig { return c.PipelineCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetExtractMaxDepth(d int)        { c.ExtractCfg.MaxDepth = d }
func (c *Config) SetExtractCanonicalOrder(b bool) { c.ExtractCfg.CanonicalOrder = b }
func (c *Config) SetOutputPath(p string)          { c.OutputCfg.Path = p }
func (c *Config) SetOutputCompress(b bool)        { c.OutputCfg.Compress = b }
func (c *Config) SetOutputIndent(b bool)          { c.OutputCfg.Indent = b }
func (c *Config) SetPipelineWorkers(n int)        { c.PipelineCfg.Workers = n }
func (c *Config) SetDatabasePersist(b bool)       { c.DatabaseCfg.Persist = b }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// DatabaseConfig holds the database connection details. Persist turns on
// saving every extraction run.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" yaml:"url"`
	Persist      bool   `mapstructure:"persist" yaml:"persist"`
	EnsureSchema bool   `mapstructure:"ensure_schema" yaml:"ensure_schema"`
}

// ExtractConfig tunes traversal and graph extraction.
type ExtractConfig struct {
	// MaxDepth bounds class expression and data range nesting. Zero means unbounded.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`
	// CanonicalOrder sorts components before extraction so index assignment
	// does not depend on the order the reader produced them in.
	CanonicalOrder bool `mapstructure:"canonical_order" yaml:"canonical_order"`
	// IndexLimit caps the number of distinct identifiers. Zero selects the
	// full 32-bit index space.
	IndexLimit uint64 `mapstructure:"index_limit" yaml:"index_limit"`
}

// OutputConfig controls where and how graphs are written. An empty Path
// means standard output.
type OutputConfig struct {
	Path     string `mapstructure:"path" yaml:"path"`
	Compress bool   `mapstructure:"compress" yaml:"compress"`
	Quality  int    `mapstructure:"quality" yaml:"quality"`
	Indent   bool   `mapstructure:"indent" yaml:"indent"`
}

// PipelineConfig configures batch extraction.
type PipelineConfig struct {
	// Workers bounds concurrent files. Zero selects GOMAXPROCS.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "horned-owl-serializer")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "red")

	// -- Database --
	v.SetDefault("database.url", "")
	v.SetDefault("database.persist", false)
	v.SetDefault("database.ensure_schema", true)

	// -- Extract --
	v.SetDefault("extract.max_depth", 512)
	v.SetDefault("extract.canonical_order", false)
	v.SetDefault("extract.index_limit", 0)

	// -- Output --
	v.SetDefault("output.path", "")
	v.SetDefault("output.compress", false)
	v.SetDefault("output.quality", 6)
	v.SetDefault("output.indent", false)

	// -- Pipeline --
	v.SetDefault("pipeline.workers", 0)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	// Bind environment variables for sensitive data
	_ = v.BindEnv("database.url", "HOS_DATABASE_URL", "DATABASE_URL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Manually load the URL if Unmarshal didn't pick it up
	if cfg.DatabaseCfg.Persist && cfg.DatabaseCfg.URL == "" {
		cfg.DatabaseCfg.URL = os.Getenv("HOS_DATABASE_URL")
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// expandPaths resolves a leading ~ in file paths.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.OutputCfg.Path, &c.LoggerCfg.LogFile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	switch c.LoggerCfg.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.LoggerCfg.Format)
	}
	if c.ExtractCfg.MaxDepth < 0 {
		return fmt.Errorf("extract.max_depth must not be negative")
	}
	if c.PipelineCfg.Workers < 0 {
		return fmt.Errorf("pipeline.workers must not be negative")
	}
	if err := c.OutputCfg.Validate(); err != nil {
		return fmt.Errorf("output configuration invalid: %w", err)
	}
	if err := c.DatabaseCfg.Validate(); err != nil {
		return fmt.Errorf("database configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the output configuration.
func (o *OutputConfig) Validate() error {
	if !o.Compress {
		return nil
	}
	if o.Quality < 0 || o.Quality > 11 {
		return fmt.Errorf("quality must be between 0 and 11")
	}
	return nil
}

// Validate checks the database configuration.
func (d *DatabaseConfig) Validate() error {
	if d.Persist && d.URL == "" {
		return fmt.Errorf("url is required when persist is enabled. Ensure HOS_DATABASE_URL is set")
	}
	return nil
}
