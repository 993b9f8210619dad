// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about cache operations, upstream API calls, and card
// rendering.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the library packages free of framework dependencies while the
// serve command installs logging-backed hooks at startup:
//
//	func main() {
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    observability.SetUpstreamHooks(&myUpstreamHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// CacheHooks receives events from freshness-cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit for a username key.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)

	// OnCacheError records a backend failure. Backend failures are always
	// absorbed as misses; this hook is the only place they surface.
	OnCacheError(ctx context.Context, key string, err error)
}

// UpstreamHooks receives events from the GitHub profile client.
type UpstreamHooks interface {
	// OnRequest records an outgoing profile lookup.
	OnRequest(ctx context.Context, username string)

	// OnResponse records the upstream response.
	OnResponse(ctx context.Context, username string, statusCode int, duration time.Duration)

	// OnError records a transport-level failure (network error, timeout).
	OnError(ctx context.Context, username string, err error)
}

// RenderHooks receives events from the card renderer.
type RenderHooks interface {
	// OnCardRender records a successful card render.
	OnCardRender(ctx context.Context, username string, duration time.Duration)

	// OnErrorCardRender records an error-card render with the failure code.
	OnErrorCardRender(ctx context.Context, code string)
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)          {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (NoopCacheHooks) OnCacheError(context.Context, string, error) {}

// NoopUpstreamHooks is a no-op implementation of UpstreamHooks.
type NoopUpstreamHooks struct{}

func (NoopUpstreamHooks) OnRequest(context.Context, string)                      {}
func (NoopUpstreamHooks) OnResponse(context.Context, string, int, time.Duration) {}
func (NoopUpstreamHooks) OnError(context.Context, string, error)                 {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnCardRender(context.Context, string, time.Duration) {}
func (NoopRenderHooks) OnErrorCardRender(context.Context, string)           {}

var (
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	upstreamHooks UpstreamHooks = NoopUpstreamHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	hooksMu       sync.RWMutex
)

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetUpstreamHooks registers custom upstream hooks.
// This should be called once at application startup before any upstream calls.
func SetUpstreamHooks(h UpstreamHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		upstreamHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Upstream returns the registered upstream hooks.
func Upstream() UpstreamHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return upstreamHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	cacheHooks = NoopCacheHooks{}
	upstreamHooks = NoopUpstreamHooks{}
	renderHooks = NoopRenderHooks{}
}
