package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/qrgen/pkg/observability"
)

func TestDebugHooks(t *testing.T) {
	var buf bytes.Buffer
	installHooks(newLogger(&buf, LogDebug))
	defer observability.Reset()

	ctx := context.Background()
	observability.Pipeline().OnEncodeComplete(ctx, "high", 25, time.Millisecond, nil)
	observability.Pipeline().OnRenderComplete(ctx, "png", 0, 0, errors.New("disk full"))
	observability.Cache().OnCacheHit(ctx, "svg")

	out := buf.String()
	for _, want := range []string{"encode done", "modules=25", "render failed", "disk full", "cache hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugHooksSilentAtInfo(t *testing.T) {
	var buf bytes.Buffer
	installHooks(newLogger(&buf, LogInfo))
	defer observability.Reset()

	observability.Pipeline().OnRenderStart(context.Background(), "svg", 21)
	if buf.Len() != 0 {
		t.Errorf("info logger wrote %q", buf.String())
	}
}
