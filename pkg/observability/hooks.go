// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about bake execution and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBakeHooks(&myBakeHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bake().OnComputeStart(ctx, width, height, threads)
//	// ... bake the field ...
//	observability.Bake().OnComputeComplete(ctx, width, height, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Bake Hooks
// =============================================================================

// BakeHooks receives events from the bake pipeline.
type BakeHooks interface {
	// Rasterize events
	OnRasterizeStart(ctx context.Context, input string, sourceSize int)
	OnRasterizeComplete(ctx context.Context, input string, width, height int, duration time.Duration, err error)

	// Compute events
	OnComputeStart(ctx context.Context, width, height, threads int)
	OnComputeComplete(ctx context.Context, width, height int, duration time.Duration, err error)

	// Resample events
	OnResampleStart(ctx context.Context, width, height int)
	OnResampleComplete(ctx context.Context, width, height int, duration time.Duration, err error)
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

// NoopBakeHooks is a no-op implementation of BakeHooks.
type NoopBakeHooks struct{}

func (NoopBakeHooks) OnRasterizeStart(context.Context, string, int) {}
func (NoopBakeHooks) OnRasterizeComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopBakeHooks) OnComputeStart(context.Context, int, int, int)                      {}
func (NoopBakeHooks) OnComputeComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopBakeHooks) OnResampleStart(context.Context, int, int)                          {}
func (NoopBakeHooks) OnResampleComplete(context.Context, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	bakeHooks  BakeHooks  = NoopBakeHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetBakeHooks registers custom bake hooks.
// This should be called once at application startup before any bake operations.
func SetBakeHooks(h BakeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		bakeHooks = h
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

// Bake returns the registered bake hooks.
func Bake() BakeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return bakeHooks
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
	bakeHooks = NoopBakeHooks{}
	cacheHooks = NoopCacheHooks{}
}
