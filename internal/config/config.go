// Package config loads the optional graphwiz configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/graphwiz/config.toml
// (~/.config/graphwiz/config.toml when XDG_CONFIG_HOME is unset). Every
// setting has a default, so a missing file is not an error:
//
//	[render]
//	directed = true
//	strict = false
//	format = "dot"     # dot, svg, png, jpg or pdf
//	engine = "dot"     # Graphviz layout engine
//	responsive = false
//
//	[cache]
//	enabled = true
//	dir = ""           # default $XDG_CACHE_HOME/graphwiz
//	redis_url = ""     # use Redis instead of files when set
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//	max_body_size = 1048576
//	timeout = "30s"
//
// Unknown keys are rejected. Command-line flags override the file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphwiz/pkg/errors"
	"github.com/matzehuels/graphwiz/pkg/render/layout"
)

// AppName names the configuration and cache directories.
const AppName = "graphwiz"

// FormatDOT selects DOT text output instead of a Graphviz image.
const FormatDOT = "dot"

// Config is the decoded configuration file.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds defaults for rendering.
type RenderConfig struct {
	Directed   bool   `toml:"directed"`
	Strict     bool   `toml:"strict"`
	Format     string `toml:"format"`
	Engine     string `toml:"engine"`
	Responsive bool   `toml:"responsive"`
}

// CacheConfig selects where rendered layouts are cached.
type CacheConfig struct {
	Enabled  bool     `toml:"enabled"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// ServerConfig configures graphwiz serve.
type ServerConfig struct {
	Addr        string   `toml:"addr"`
	MaxBodySize int64    `toml:"max_body_size"`
	Timeout     Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a string such as "90s" or "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Directed: true,
			Format:   FormatDOT,
			Engine:   string(layout.EngineDot),
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     Duration{24 * time.Hour},
		},
		Server: ServerConfig{
			Addr:        ":8080",
			MaxBodySize: 1 << 20,
			Timeout:     Duration{30 * time.Second},
		},
	}
}

// Load reads the configuration at path. An empty path means [DefaultPath],
// which may be missing; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
			}
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the values that are restricted to a fixed set.
func (c *Config) Validate() error {
	if c.Render.Format != FormatDOT {
		if _, err := layout.ParseFormat(c.Render.Format); err != nil {
			return err
		}
	}
	if _, err := layout.ParseEngine(c.Render.Engine); err != nil {
		return err
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl cannot be negative")
	}
	if c.Server.MaxBodySize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_body_size must be positive")
	}
	return nil
}

// CacheDir returns the configured cache directory, or the XDG default.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return CacheDir()
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CacheDir returns the cache directory using XDG standard (~/.cache/graphwiz/).
func CacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, AppName), nil
}
