package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if PAYEQ_CONFIG is set
//  3. env (prefix PAYEQ_, double underscore nests: PAYEQ_SALARIED__THRESHOLD)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PAYEQ_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// PAYEQ_LOG_LEVEL -> log_level, PAYEQ_HOURLY__INPUT -> hourly.input
	envProvider := env.Provider("PAYEQ_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PAYEQ_"))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("%w: worker_count must be at least 1", ErrInvalidConfig)
	}
	if utf8.RuneCountInString(c.CSVSeparator) != 1 {
		return fmt.Errorf("%w: csv_separator must be a single rune", ErrInvalidConfig)
	}
	for name, p := range map[string]Population{"salaried": c.Salaried, "hourly": c.Hourly} {
		if p.Threshold < 0 {
			return fmt.Errorf("%w: %s.threshold must be non-negative", ErrInvalidConfig, name)
		}
		if p.CompensationColumn == "" {
			return fmt.Errorf("%w: %s.compensation_column must not be empty", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Separator returns the configured CSV separator as a rune.
func (c *Config) Separator() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVSeparator)
	return r
}
