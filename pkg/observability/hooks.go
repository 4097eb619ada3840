// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about chart building, layout, rendering and
// cache operations.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetChartHooks(&myChartHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Chart().OnLayoutStart(ctx, kind, pointCount)
//	// ... compute placements ...
//	observability.Chart().OnLayoutComplete(ctx, kind, nonConverged, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ChartHooks receives events from the chart pipeline.
type ChartHooks interface {
	// Build events: turning a chart description into elements.
	OnBuildStart(ctx context.Context, elementCount int)
	OnBuildComplete(ctx context.Context, elementCount int, duration time.Duration, err error)

	// Layout events: computing swarm placements. nonConverged counts points
	// that hit the relaxation iteration cap.
	OnLayoutStart(ctx context.Context, kind string, pointCount int)
	OnLayoutComplete(ctx context.Context, kind string, nonConverged int, duration time.Duration, err error)

	// Render events: serializing into output formats.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopChartHooks is a no-op implementation of ChartHooks.
type NoopChartHooks struct{}

func (NoopChartHooks) OnBuildStart(context.Context, int)                               {}
func (NoopChartHooks) OnBuildComplete(context.Context, int, time.Duration, error)      {}
func (NoopChartHooks) OnLayoutStart(context.Context, string, int)                      {}
func (NoopChartHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopChartHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopChartHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	chartHooks ChartHooks = NoopChartHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetChartHooks registers custom chart hooks.
// This should be called once at application startup before any chart operations.
func SetChartHooks(h ChartHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		chartHooks = h
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

// Chart returns the registered chart hooks.
func Chart() ChartHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return chartHooks
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
	chartHooks = NoopChartHooks{}
	cacheHooks = NoopCacheHooks{}
}
