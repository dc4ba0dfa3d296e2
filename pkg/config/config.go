package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/cubby/pkg/errors"
	"github.com/arthur-debert/cubby/pkg/paths"
)

// Known storage backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// CUBBY_BACKEND=memory or CUBBY_DIR=/tmp/settings.
const EnvPrefix = "CUBBY_"

// Config holds everything a caller needs to construct a store.
type Config struct {
	// Backend names the storage backend, "file" or "memory".
	Backend string `koanf:"backend" toml:"backend" comment:"storage backend: file or memory"`

	// Dir is the directory holding the setting files. Empty means the
	// default settings directory (CUBBY_DIR, else the XDG data home).
	Dir string `koanf:"dir" toml:"dir" comment:"directory holding the setting files; empty uses the XDG default"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: BackendFile,
		Dir:     "",
	}
}

// Load builds a Config from defaults, an optional TOML file and the
// environment. An explicit configPath must be loadable; with an empty
// configPath the default config file is used only if it exists.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	defaults := Default()
	err := k.Load(confmap.Provider(map[string]interface{}{
		"backend": defaults.Backend,
		"dir":     defaults.Dir,
	}, "."), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. TOML file
	explicit := configPath != ""
	if !explicit {
		configPath = paths.DefaultConfigPath()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load configuration from %s", configPath)
		}
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read configuration file %s", configPath)
	}

	// 3. Environment overrides
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values no backend can serve.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendMemory:
		return nil
	default:
		return errors.Newf(errors.ErrConfigInvalid, "unknown storage backend %q (expected %q or %q)",
			c.Backend, BackendFile, BackendMemory)
	}
}
