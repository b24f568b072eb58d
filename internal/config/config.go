// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting of the site. Fields map to HARMIANA_*
// variables; PORT is honoured for platforms that only inject a port.
type Config struct {
	Addr         string `env:"ADDR"`
	BaseURL      string `env:"BASE_URL"      envDefault:"http://localhost:8080"`
	ContactEmail string `env:"CONTACT_EMAIL" envDefault:"contact@harmiana.com"`

	Dev          bool   `env:"DEV"           envDefault:"false"`
	TemplatesDir string `env:"TEMPLATES_DIR"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LOG_FILE"`

	Metrics bool `env:"METRICS" envDefault:"true"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"  envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	ExportDir string `env:"EXPORT_DIR" envDefault:"dist"`
}

const (
	// Prefix is prepended to every variable except PORT.
	Prefix      = "HARMIANA_"
	DefaultAddr = ":8080"
)

// Load reads the process environment.
func Load() (Config, error) {
	return Parse(nil)
}

// Parse reads the given environment, or the process environment when
// environ is nil.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// PORT is unprefixed and only used when ADDR is unset.
	portOpts := env.Options{}
	if environ != nil {
		portOpts.Environment = environ
	}
	var port struct {
		Port string `env:"PORT"`
	}
	if err := env.ParseWithOptions(&port, portOpts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	switch {
	case cfg.Addr != "":
	case port.Port != "":
		cfg.Addr = ":" + strings.TrimPrefix(port.Port, ":")
	default:
		cfg.Addr = DefaultAddr
	}

	if cfg.Dev && cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if !cfg.Dev {
		cfg.TemplatesDir = ""
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, cfg.Validate()
}

// Validate checks values env cannot check on its own.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: BASE_URL must not be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("config: BASE_URL %q must be an http(s) URL", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive")
	}
	return nil
}
