// SPDX-License-Identifier: MIT

// Package config loads densecalc settings from DENSECALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "DENSECALC_"

// maxPrecision bounds the fraction digits of fixed-point output; float64
// carries no more than 17 significant decimal digits.
const maxPrecision = 17

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds process-wide settings shared by the CLI and the C library.
type Config struct {
	// LogLevel is the minimum slog level: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Output is the default CLI result format: text, yaml or json.
	Output string `env:"OUTPUT" envDefault:"text"`

	// Precision is the number of fraction digits in text output.
	Precision int `env:"PRECISION" envDefault:"2"`
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "text", Output: "text", Precision: 2}
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads settings from environ (keys include the DENSECALC_ prefix)
// instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its allowed set.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	switch c.Output {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidConfig, c.Output)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: precision %d not in [0,%d]", ErrInvalidConfig, c.Precision, maxPrecision)
	}

	return nil
}
