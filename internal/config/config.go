package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"project_path"`

	// Output settings
	OutputFile   string `yaml:"output_file"`
	OutputDir    string `yaml:"output_dir"`
	OutputFormat string `yaml:"output_format"`

	// Execution settings
	Processors int `yaml:"processors"`

	// Groups to leave out of a run
	SkipGroups []string `yaml:"skip_groups"`

	// Run history settings
	HistoryEnabled bool   `yaml:"history_enabled"`
	HistoryDriver  string `yaml:"history_driver"`
	HistoryDSN     string `yaml:"history_dsn"`

	LogLevel string `yaml:"log_level"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	Processors int
	NameFilter string
	FailFast   bool
	OnlyFailed bool
	Format     string
	Text       bool
	History    bool
	OpenFaills bool
	TestCases  bool
	Limit      int
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:   DefaultProjectPath,
		OutputFile:    DefaultOutputFile,
		OutputDir:     DefaultOutputDir,
		OutputFormat:  DefaultOutputFormat,
		Processors:    DefaultProcessors,
		HistoryDriver: DefaultHistoryDriver,
		LogLevel:      DefaultLogLevel,
		Flags:         Flags{Processors: DefaultProcessors, Limit: DefaultHistoryLimit},
	}
	// Copy default groups to skip
	cfg.SkipGroups = make([]string, len(DefaultSkipGroups))
	copy(cfg.SkipGroups, DefaultSkipGroups)
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.ApplyFlags(flags)
	return cfg
}

// LoadFile reads a YAML config file over the defaults, then applies .env and
// environment overrides. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv loads ProjectPath/.env, if present, into the process environment
// and applies the ALGOCAT_* overrides.
func (c *Config) ApplyEnv() error {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	if v := os.Getenv("ALGOCAT_PROCESSORS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ALGOCAT_PROCESSORS: %w", err)
		}
		c.Processors = n
	}
	if v := os.Getenv("ALGOCAT_OUTPUT_FORMAT"); v != "" {
		c.OutputFormat = strings.ToLower(v)
	}
	if v := os.Getenv("ALGOCAT_SKIP_GROUPS"); v != "" {
		c.SkipGroups = strings.Split(v, ",")
	}
	if v := os.Getenv("ALGOCAT_HISTORY_DRIVER"); v != "" {
		c.HistoryDriver = v
	}
	if v := os.Getenv("ALGOCAT_HISTORY_DSN"); v != "" {
		c.HistoryDSN = v
	}
	if v := os.Getenv("ALGOCAT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// ApplyFlags overlays command-line flags
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if flags.Format != "" {
		c.OutputFormat = strings.ToLower(flags.Format)
	}
	if flags.History {
		c.HistoryEnabled = true
	}
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if c.Processors < 1 {
		return fmt.Errorf("processors must be at least 1, got %d", c.Processors)
	}
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("unsupported output format %q (want one of %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	switch c.HistoryDriver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported history driver %q", c.HistoryDriver)
	}
	return nil
}

// GetOutputPath returns the full path to the report file (under project so run and faills use the same file).
// Resolves to an absolute path so run and faills always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputDir, c.OutputFile+"."+c.OutputFormat)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetHistoryDSN returns the data source name for the history database.
// Without an explicit DSN, sqlite uses a file next to the report and mysql is
// assembled from the DB_* environment variables.
func (c *Config) GetHistoryDSN() string {
	if c.HistoryDSN != "" {
		return c.HistoryDSN
	}
	if c.HistoryDriver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			envOr("DB_USERNAME", "root"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_HOST", "127.0.0.1"),
			envOr("DB_PORT", "3306"),
			envOr("DB_DATABASE", "algocat"),
		)
	}
	return filepath.Join(c.ProjectPath, c.OutputDir, DefaultHistoryFile)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
