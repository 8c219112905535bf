package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/qrgen/pkg/cache"
)

func TestCacheClear(t *testing.T) {
	cacheHome := t.TempDir()
	dir := filepath.Join(cacheHome, appName)
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b"} {
		if err := fc.Set(context.Background(), k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	out := runWithCacheHome(t, cacheHome, "cache", "clear")
	if !strings.Contains(out, "Cleared 2 cached entries") {
		t.Errorf("output = %q", out)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}
}

func TestCacheClearEmpty(t *testing.T) {
	out := runWithCacheHome(t, t.TempDir(), "cache", "clear")
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("output = %q", out)
	}
}

func TestCachePath(t *testing.T) {
	cacheHome := t.TempDir()
	out := runWithCacheHome(t, cacheHome, "cache", "path")
	if got, want := strings.TrimSpace(out), filepath.Join(cacheHome, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

// runWithCacheHome runs the CLI with XDG_CACHE_HOME pinned to cacheHome.
func runWithCacheHome(t *testing.T, cacheHome string, args ...string) string {
	t.Helper()
	var out strings.Builder
	c := New(&out, LogInfo)
	c.SetOutput(&out)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	root := c.RootCommand()
	root.SetArgs(args)
	root.SilenceErrors = true
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}
