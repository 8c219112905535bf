package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrgen/pkg/observability"
)

// debugHooks reports pipeline and cache events at debug level.
type debugHooks struct {
	logger *log.Logger
}

func installHooks(logger *log.Logger) {
	h := debugHooks{logger: logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h debugHooks) OnEncodeStart(_ context.Context, level string, textLen int) {
	h.logger.Debug("encode start", "level", level, "chars", textLen)
}

func (h debugHooks) OnEncodeComplete(_ context.Context, level string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("encode failed", "level", level, "error", err)
		return
	}
	h.logger.Debug("encode done", "level", level, "modules", size, "duration", d)
}

func (h debugHooks) OnRenderStart(_ context.Context, format string, size int) {
	h.logger.Debug("render start", "format", format, "modules", size)
}

func (h debugHooks) OnRenderComplete(_ context.Context, format string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("render done", "format", format, "bytes", n, "duration", d)
}

func (h debugHooks) OnCacheHit(_ context.Context, format string) {
	h.logger.Debug("cache hit", "format", format)
}

func (h debugHooks) OnCacheMiss(_ context.Context, format string) {
	h.logger.Debug("cache miss", "format", format)
}

func (h debugHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.logger.Debug("cache set", "format", format, "bytes", size)
}
