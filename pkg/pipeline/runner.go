package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrgen/pkg/cache"
	"github.com/matzehuels/qrgen/pkg/grid"
	"github.com/matzehuels/qrgen/pkg/observability"
	"github.com/matzehuels/qrgen/pkg/qr"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the server use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Execute runs encode → render with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Format:      opts.Format,
		ContentType: ContentType(opts.Format),
	}

	key := cache.ArtifactKey(opts.artifactKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, opts.Format)
			r.Logger.Debug("artifact cache hit", "format", opts.Format, "bytes", len(data))
			result.Data = data
			result.Cached = true
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, opts.Format)
	}

	g, encodeTime, err := r.Encode(ctx, opts.Text, opts.Level)
	if err != nil {
		return nil, err
	}
	result.Stats.GridSize = g.Size()
	result.Stats.DarkCount = grid.DarkCount(g)
	result.Stats.EncodeTime = encodeTime

	renderStart := time.Now()
	data, err := RenderBytes(ctx, g, opts.RenderOptions())
	if err != nil {
		return nil, err
	}
	result.Data = data
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered artifact",
		"format", opts.Format,
		"modules", g.Size(),
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, opts.Format, len(data))
	}
	return result, nil
}

// Encode builds the module grid for text, firing the encode hooks.
func (r *Runner) Encode(ctx context.Context, text string, level qr.Level) (*grid.Bitmap, time.Duration, error) {
	hooks := observability.Pipeline()
	hooks.OnEncodeStart(ctx, string(level), len(text))

	start := time.Now()
	g, err := qr.Encode(text, level)
	elapsed := time.Since(start)

	size := 0
	if g != nil {
		size = g.Size()
	}
	hooks.OnEncodeComplete(ctx, string(level), size, elapsed, err)
	if err != nil {
		return nil, elapsed, err
	}
	return g, elapsed, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (o Options) artifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Text:      o.Text,
		Level:     string(o.Level),
		Format:    o.Format,
		Scale:     o.Params.Scale,
		Border:    o.Params.Border,
		MergeRuns: o.MergeRuns,
		Invert:    o.Invert,
	}
}

// RenderOptions returns the render-stage subset of the options.
func (o Options) RenderOptions() RenderOptions {
	return RenderOptions{
		Format:    o.Format,
		Params:    o.Params,
		MergeRuns: o.MergeRuns,
		Invert:    o.Invert,
	}
}
