package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HACKFEST_CONFIG is set
//  3. env (prefix HACKFEST_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HACKFEST_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: HACKFEST_ADDR, HACKFEST_STORAGE_TYPE, ...
	// Keys map to the flat koanf tags, underscores preserved.
	envProvider := env.Provider("HACKFEST_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "hackfest_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	switch cfg.StorageType {
	case "memory", "redis":
	default:
		return nil, errors.New("storage_type must be memory or redis")
	}
	return &cfg, nil
}
