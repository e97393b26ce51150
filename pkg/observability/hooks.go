// Package observability lets embedders instrument the pipeline without
// tying the library to any metrics or tracing backend.
//
// The library calls into a process-wide hook registry at interesting
// points (enumeration start/finish, render start/finish, cache
// hit/miss/write). Defaults are no-ops; an application that wants
// metrics registers implementations once at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&promPipelineHooks{})
//	    observability.SetCacheHooks(&promCacheHooks{})
//	    // ...
//	}
//
// Registration lives in main and not in the library packages, which
// keeps the dependency direction one-way and the core free of
// framework imports.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the two pipeline stages. The
// enumeration events carry the variant and permutation so a backend can
// label series per orbit family.
type PipelineHooks interface {
	OnEnumStart(ctx context.Context, variant string, perm []int)
	OnEnumComplete(ctx context.Context, variant string, gridCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache events. keyType is "orbit" or "artifact",
// matching the two key kinds the pipeline derives.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks discards all pipeline events.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnEnumStart(context.Context, string, []int)                        {}
func (NoopPipelineHooks) OnEnumComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopCacheHooks discards all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	hooksMu       sync.RWMutex
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
)

// SetPipelineHooks registers pipeline hooks. Call once at startup,
// before the first pipeline run; nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = h
}

// SetCacheHooks registers cache hooks. Call once at startup, before the
// first cache operation; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	cacheHooks = h
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

// Reset restores the no-op defaults. Test helper.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
