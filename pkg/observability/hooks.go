// Package observability provides hooks for metrics, tracing and logging.
//
// Libraries emit events through the registered hooks; by default every hook
// is a no-op. A binary that wants instrumentation registers its own
// implementations once at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetPackingHooks(&myPackingHooks{})
//	    // ... run application
//	}
//
// Emitting an event:
//
//	observability.Pipeline().OnBuildStart(ctx, "fig3")
//	// ... build the figure ...
//	observability.Pipeline().OnBuildComplete(ctx, "fig3", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the figure pipeline.
type PipelineHooks interface {
	// Build events: synthesizing the model and drawing the panels.
	OnBuildStart(ctx context.Context, figure string)
	OnBuildComplete(ctx context.Context, figure string, duration time.Duration, err error)

	// Render events: encoding one figure into one or more formats.
	OnRenderStart(ctx context.Context, figure string, formats []string)
	OnRenderComplete(ctx context.Context, figure string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Packing Hooks
// =============================================================================

// PackingHooks receives events from disk packing runs.
type PackingHooks interface {
	// OnPackComplete records one finished packing run. regime names the
	// run, e.g. "uniform" or "cluster-2".
	OnPackComplete(ctx context.Context, regime string, accepted, attempts int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// NoopPackingHooks is a no-op implementation of PackingHooks.
type NoopPackingHooks struct{}

func (NoopPackingHooks) OnPackComplete(context.Context, string, int, int, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	packingHooks  PackingHooks  = NoopPackingHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetPackingHooks registers custom packing hooks.
func SetPackingHooks(h PackingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		packingHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Packing returns the registered packing hooks.
func Packing() PackingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return packingHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	packingHooks = NoopPackingHooks{}
	cacheHooks = NoopCacheHooks{}
}
