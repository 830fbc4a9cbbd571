package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/capfig/pkg/cache"
	"github.com/matzehuels/capfig/pkg/observability"
)

// Key types reported to the cache hooks.
const (
	artifactKeyType = "artifact"
	packingKeyType  = "packing"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute builds and renders one figure, using cached artifacts when every
// requested format is available.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Logger == nil {
		req.Logger = r.Logger
	}
	res, err := req.resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	name := res.figure.Name

	if !res.refresh {
		if out, ok := r.lookup(ctx, res); ok {
			res.logger.Debug("served from cache", "figure", name, "formats", res.formats)
			return out, nil
		}
	}

	hooks := observability.Pipeline()
	out := &Result{Figure: res.figure, Artifacts: make(map[string][]byte, len(res.formats))}

	hooks.OnBuildStart(ctx, name)
	start := time.Now()
	built, err := res.figure.Build(ctx, res.cfg)
	out.Timing.Build = time.Since(start)
	hooks.OnBuildComplete(ctx, name, out.Timing.Build, err)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	out.Stats = built.Stats
	res.logger.Debug("built figure", "figure", name, "duration", out.Timing.Build)
	for _, s := range built.Stats {
		res.logger.Debug("figure stat", "figure", name, "name", s.Name, "value", s.Value)
	}

	hooks.OnRenderStart(ctx, name, res.formats)
	start = time.Now()
	artifacts, err := Render(ctx, built, res.formats, res.dpi)
	out.Timing.Render = time.Since(start)
	hooks.OnRenderComplete(ctx, name, res.formats, out.Timing.Render, err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	out.Artifacts = artifacts
	res.logger.Debug("rendered figure", "figure", name, "formats", res.formats, "duration", out.Timing.Render)

	r.store(ctx, res, out)
	return out, nil
}

// Render is a convenience wrapper that calls Execute and returns only the
// artifacts, keyed by format.
func (r *Runner) Render(ctx context.Context, req Request) (map[string][]byte, error) {
	out, err := r.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return out.Artifacts, nil
}

// lookup returns the cached result when every format and the stats hit.
func (r *Runner) lookup(ctx context.Context, res *resolved) (*Result, bool) {
	hooks := observability.Cache()
	out := &Result{Figure: res.figure, Artifacts: make(map[string][]byte, len(res.formats)), CacheHit: true}
	for _, format := range res.formats {
		key := res.key(r.Keyer, format)
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, artifactKeyType)
			return nil, false
		}
		hooks.OnCacheHit(ctx, artifactKeyType)
		out.Artifacts[format] = data
	}
	if data, hit, err := r.Cache.Get(ctx, res.key(r.Keyer, statsFormat)); err == nil && hit {
		if json.Unmarshal(data, &out.Stats) != nil {
			out.Stats = nil
		}
	}
	return out, true
}

// store caches every artifact and the stats. Cache failures are logged and
// otherwise ignored.
func (r *Runner) store(ctx context.Context, res *resolved, out *Result) {
	hooks := observability.Cache()
	put := func(key string, data []byte) {
		if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
			res.logger.Warn("cache write failed", "key", key, "error", err)
			return
		}
		hooks.OnCacheSet(ctx, artifactKeyType, len(data))
	}
	for format, data := range out.Artifacts {
		put(res.key(r.Keyer, format), data)
	}
	if data, err := json.Marshal(out.Stats); err == nil {
		put(res.key(r.Keyer, statsFormat), data)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
