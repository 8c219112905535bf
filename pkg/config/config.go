// Package config loads qrgen settings from TOML or YAML files.
//
// Every field has a default, so a missing file is never an error; a file only
// needs the keys it wants to change:
//
//	# ~/.config/qrgen/config.toml
//	[render]
//	scale = 10
//	border = 2
//	level = "medium"
//
//	[server]
//	addr = "127.0.0.1:9000"
//	cache_ttl = "1h"
//
// Command-line flags override whatever the file sets.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/qr"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

// FileName is the default config file name inside the config directory.
const FileName = "config.toml"

// Config is the complete qrgen configuration.
type Config struct {
	Render Render `toml:"render" yaml:"render"`
	Server Server `toml:"server" yaml:"server"`
}

// Render holds rendering defaults shared by the CLI and the server.
type Render struct {
	Scale     int    `toml:"scale" yaml:"scale"`
	Border    int    `toml:"border" yaml:"border"`
	Level     string `toml:"level" yaml:"level"`
	MergeRuns bool   `toml:"merge_runs" yaml:"merge_runs"`
}

// Server holds settings for `qrgen serve`.
type Server struct {
	Addr     string   `toml:"addr" yaml:"addr"`
	CacheTTL Duration `toml:"cache_ttl" yaml:"cache_ttl"`
	NoCache  bool     `toml:"no_cache" yaml:"no_cache"`
}

// Duration is a time.Duration that reads as a string like "90s" or "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler (used by the TOML decoder).
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

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Default returns the built-in configuration: scale 8, border 4, level high,
// listening on :8080 with a one-day artifact cache.
func Default() Config {
	return Config{
		Render: Render{
			Scale:  geometry.DefaultScale,
			Border: geometry.DefaultBorder,
			Level:  string(qr.DefaultLevel),
		},
		Server: Server{
			Addr:     ":8080",
			CacheTTL: Duration{24 * time.Hour},
		},
	}
}

// Load reads the file at path over the defaults. The syntax is chosen by
// extension: .toml, or .yaml/.yml. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unsupported config file type %q (use .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads the file in the user config directory if it exists and
// returns the defaults otherwise.
func LoadDefault(appName string) (Config, string, error) {
	dir, err := Dir(appName)
	if err != nil {
		return Default(), "", nil
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Dir returns the config directory using the XDG standard
// (~/.config/<appName>/).
func Dir(appName string) (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Params returns the rendering parameters.
func (c Config) Params() geometry.Params {
	return geometry.Params{Scale: c.Render.Scale, Border: c.Render.Border}
}

// Level returns the parsed error-correction level.
func (c Config) Level() (qr.Level, error) {
	return qr.ParseLevel(c.Render.Level)
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Server.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.cache_ttl must be non-negative, got %s", c.Server.CacheTTL.Duration)
	}
	return nil
}
