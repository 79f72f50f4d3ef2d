// Package config resolves the proofreading settings once at startup.
//
// Sources, lowest to highest precedence: built-in defaults, an optional YAML
// file, the process environment (optionally seeded from a .env file), and
// finally command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "gpt-4.1-mini"
	DefaultBaseURL = "https://api.openai.com"
	DefaultTimeout = 60 * time.Second

	EnvAPIKey  = "OPENAI_API_KEY"
	EnvModel   = "OPENAI_MODEL"
	EnvBaseURL = "OPENAI_BASE_URL"
)

// ErrMissingAPIKey is returned by Validate when no credential was resolved.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " is not set")

// Config is the resolved, immutable configuration of one invocation.
type Config struct {
	Model       string
	Temperature float64
	APIKey      string //nolint:gosec // configuration field, not a hardcoded secret
	BaseURL     string
	Timeout     time.Duration
}

// File mirrors the optional YAML config file.
type File struct {
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
	APIKey      string   `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	BaseURL     string   `yaml:"base_url"`
	Timeout     string   `yaml:"timeout"` // Duration string, e.g. "30s".
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model:   DefaultModel,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// LoadDotEnv loads environment variables from a .env file.
// A missing file is not an error. Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}

	return nil
}

// LoadFile reads a YAML config file. Environment variables referenced as
// ${VAR} or $VAR are expanded before parsing, so secrets can stay in the
// environment.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return File{}, fmt.Errorf("config: load file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var f File
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return File{}, fmt.Errorf("config: parse file: %w", err)
	}

	return f, nil
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment as seen through getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}

		if err := cfg.merge(f); err != nil {
			return Config{}, err
		}
	}

	cfg.mergeEnv(getenv)

	return cfg, nil
}

func (c *Config) merge(f File) error {
	if f.Model != "" {
		c.Model = f.Model
	}
	if f.Temperature != nil {
		c.Temperature = *f.Temperature
	}
	if f.APIKey != "" {
		c.APIKey = f.APIKey
	}
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("config: invalid timeout %q: %w", f.Timeout, err)
		}
		c.Timeout = d
	}

	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}

	if v := getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
}

// Validate checks that the configuration can be used for a call.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return fmt.Errorf("config: model is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("config: base url is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config: temperature %g out of range [0, 2]", c.Temperature)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}

	return nil
}
