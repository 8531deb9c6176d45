// Package config loads CLI settings from defaults, an optional TOML file and
// SPLASH_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. SPLASH_WORKERS.
const EnvPrefix = "SPLASH"

// Supported values.
var (
	Formats   = []string{"text", "json", "msgpack"}
	ColorMode = []string{"auto", "on", "off"}
	LogLevels = []string{"debug", "info", "warn", "error"}
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the CLI settings.
type Config struct {
	Workers  int    `toml:"workers" split_words:"true"`
	Format   string `toml:"format" split_words:"true"`
	Color    string `toml:"color" split_words:"true"`
	LogLevel string `toml:"log_level" split_words:"true"`
	Explain  bool   `toml:"explain" split_words:"true"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		Format:   "text",
		Color:    "auto",
		LogLevel: "warn",
	}
}

// Load returns Default overlaid with the TOML file at path (skipped when
// path is empty) and then with the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its supported values.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1: %d", ErrInvalid, c.Workers)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q, want one of %s", ErrInvalid, c.Format, strings.Join(Formats, "|"))
	}
	if !slices.Contains(ColorMode, c.Color) {
		return fmt.Errorf("%w: color %q, want one of %s", ErrInvalid, c.Color, strings.Join(ColorMode, "|"))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log level %q, want one of %s", ErrInvalid, c.LogLevel, strings.Join(LogLevels, "|"))
	}
	return nil
}
