package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/qr"
	"github.com/matzehuels/qrgen/pkg/render/geometry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if got := cfg.Params(); got != (geometry.Params{Scale: 8, Border: 4}) {
		t.Errorf("Params() = %+v, want scale 8 border 4", got)
	}
	level, err := cfg.Level()
	if err != nil || level != qr.LevelHigh {
		t.Errorf("Level() = %v, %v; want high", level, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[render]
scale = 10
level = "q"
merge_runs = true

[server]
addr = "127.0.0.1:9000"
cache_ttl = "90m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Render.Scale = 10
	want.Render.Level = "q"
	want.Render.MergeRuns = true
	want.Server.Addr = "127.0.0.1:9000"
	want.Server.CacheTTL = Duration{90 * time.Minute}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
render:
  border: 2
  level: low
server:
  cache_ttl: 30s
  no_cache: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Render.Border = 2
	want.Render.Level = "low"
	want.Server.CacheTTL = Duration{30 * time.Second}
	want.Server.NoCache = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("empty file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.Code
	}{
		{"negative border", "c.toml", "[render]\nborder = -1\n", errors.ErrCodeInvalidParams},
		{"zero scale", "c.yaml", "render:\n  scale: 0\n", errors.ErrCodeInvalidParams},
		{"bad level", "c.toml", "[render]\nlevel = \"ultra\"\n", errors.ErrCodeInvalidLevel},
		{"unknown toml key", "c.toml", "[render]\ncolour = \"red\"\n", errors.ErrCodeInvalidConfig},
		{"unknown yaml key", "c.yaml", "render:\n  colour: red\n", errors.ErrCodeInvalidConfig},
		{"bad duration", "c.toml", "[server]\ncache_ttl = \"soon\"\n", errors.ErrCodeInvalidConfig},
		{"negative ttl", "c.toml", "[server]\ncache_ttl = \"-1h\"\n", errors.ErrCodeInvalidConfig},
		{"syntax", "c.toml", "[render\n", errors.ErrCodeInvalidConfig},
		{"unknown extension", "c.ini", "scale=1", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	cfg, path, err := LoadDefault("qrgen")
	if err != nil || path != "" {
		t.Fatalf("LoadDefault without file = %q, %v", path, err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("LoadDefault without file should give defaults (-want +got):\n%s", diff)
	}

	dir := filepath.Join(home, "qrgen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[render]\nscale = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err = LoadDefault("qrgen")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q", path)
	}
	if cfg.Render.Scale != 3 {
		t.Errorf("Scale = %d, want 3", cfg.Render.Scale)
	}
}
