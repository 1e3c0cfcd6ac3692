package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if EIGENCALC_CONFIG is set
//  3. env (prefix EIGENCALC_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("EIGENCALC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: EIGENCALC_CANVAS_SIZE -> canvas_size, keeping
	// underscores to match the koanf tags on the struct.
	envProvider := env.Provider("EIGENCALC_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "eigencalc_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects configurations the renderer would panic on or silently
// misdraw with.
func validate(cfg *Config) error {
	if cfg.CanvasSize <= 0 {
		return fmt.Errorf("%w: canvas_size must be > 0", ErrInvalidConfig)
	}
	if cfg.Padding < 0 {
		return fmt.Errorf("%w: padding must be >= 0", ErrInvalidConfig)
	}
	if cfg.Padding >= cfg.CanvasSize/2 {
		return fmt.Errorf("%w: padding leaves no drawing area", ErrInvalidConfig)
	}
	if cfg.BasisColor == "" || cfg.EigenvalueColor == "" {
		return fmt.Errorf("%w: arrow colors must not be empty", ErrInvalidConfig)
	}

	return nil
}
