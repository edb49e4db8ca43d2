// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about positioning decisions, pipeline execution, cache
// operations, and served HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The positioning engine is synchronous and context-free, so [PositionHooks]
// take no context. The remaining hooks follow the request context.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPositionHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Position().OnFlip("auto", observability.AxisHorizontal)
package observability

import (
	"context"
	"sync"
	"time"
)

// Axis names used in position events.
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// =============================================================================
// Position Hooks
// =============================================================================

// PositionHooks receives events from positioning strategies.
type PositionHooks interface {
	// OnFit records the viewport fit test of an initial call.
	OnFit(strategy string, fitHorizontal, fitVertical bool)

	// OnFlip records a direction flip on one axis.
	OnFlip(strategy, axis string)

	// OnPush records a translation applied to bring content back into view.
	OnPush(strategy, axis string, amount float64)

	// OnResize records an elastic resize.
	OnResize(strategy string, width, height float64)

	// OnArrow records the placement a tooltip arrow was positioned for.
	OnArrow(placement string)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the scene pipeline.
type PipelineHooks interface {
	OnResolveStart(ctx context.Context, scene, strategy string)
	OnResolveComplete(ctx context.Context, scene, strategy string, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, scene string)
	OnRenderComplete(ctx context.Context, scene string, size int, duration time.Duration, err error)
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
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP service.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response status and latency.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPositionHooks is a no-op implementation of PositionHooks.
type NoopPositionHooks struct{}

func (NoopPositionHooks) OnFit(string, bool, bool)          {}
func (NoopPositionHooks) OnFlip(string, string)             {}
func (NoopPositionHooks) OnPush(string, string, float64)    {}
func (NoopPositionHooks) OnResize(string, float64, float64) {}
func (NoopPositionHooks) OnArrow(string)                    {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnResolveStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnResolveComplete(context.Context, string, string, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, string) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	positionHooks PositionHooks = NoopPositionHooks{}
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetPositionHooks registers custom position hooks.
// This should be called once at application startup before any positioning.
func SetPositionHooks(h PositionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		positionHooks = h
	}
}

// SetPipelineHooks registers custom pipeline hooks.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Position returns the registered position hooks.
func Position() PositionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return positionHooks
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	positionHooks = NoopPositionHooks{}
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
