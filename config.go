package elasticemail

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey  = "ELASTICEMAIL_API_KEY"
	EnvBaseURL = "ELASTICEMAIL_BASE_URL"
	EnvFormat  = "ELASTICEMAIL_FORMAT"
	EnvTimeout = "ELASTICEMAIL_TIMEOUT"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the file or environment form of the client settings.
//
// Example YAML:
//
//	api_key: 00000000-0000-0000-0000-000000000000
//	base_url: https://api.elasticemail.com/v2
//	format: json
//	timeout: 30s
type Config struct {
	APIKey    string `yaml:"api_key" validate:"required"`
	BaseURL   string `yaml:"base_url" validate:"omitempty,url"`
	Format    string `yaml:"format" validate:"omitempty,oneof=json xml"`
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFromEnv builds a Config from ELASTICEMAIL_* environment variables.
// Each file in envFiles is loaded first if it exists; variables already set
// in the environment win over file values.
func ConfigFromEnv(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		APIKey:  os.Getenv(EnvAPIKey),
		BaseURL: os.Getenv(EnvBaseURL),
		Format:  os.Getenv(EnvFormat),
		Timeout: os.Getenv(EnvTimeout),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config. A missing API key is reported as ErrMissingAPIKey.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("invalid config: timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid config: timeout must be positive, got %s", c.Timeout)
		}
	}
	return nil
}

// Options converts the config to client options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.BaseURL != "" {
		opts = append(opts, WithBaseURL(c.BaseURL))
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(Format(c.Format)))
	}
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		opts = append(opts, WithTimeout(d))
	}
	if c.UserAgent != "" {
		opts = append(opts, WithUserAgent(c.UserAgent))
	}
	return opts
}

// NewFromConfig validates cfg and creates a client from it. opts are applied
// after the config, so they take precedence.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.APIKey, append(cfg.Options(), opts...)...)
}
