package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix is stripped from environment variables before they are
// merged, so ROADREADY_CONTENT_DIR sets content-dir.
const envPrefix = "ROADREADY_"

// Config is the resolved application configuration. Precedence, lowest
// to highest: defaults, config file, environment, flags.
type Config struct {
	DBPath         string `koanf:"db-path"`
	ContentDir     string `koanf:"content-dir" validate:"required"`
	Collection     string `koanf:"collection"`
	FlashcardCount int    `koanf:"flashcard-count" validate:"gte=1,lte=100"`
	ReviewLimit    int    `koanf:"review-limit" validate:"gte=1,lte=100"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ContentDir:     "data",
		FlashcardCount: 20,
		ReviewLimit:    20,
	}
}

// DefaultPath returns the XDG location of the optional config file.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "roadready", "config.yaml")
}

// Load merges the config file at path (skipped silently when the
// default file is absent), ROADREADY_* environment variables and the
// given flag set over the defaults, then validates the result.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "_", "-")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
