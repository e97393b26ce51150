package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/bumpless/pkg/bpd"
	"github.com/matzehuels/bumpless/pkg/cache"
	"github.com/matzehuels/bumpless/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the batch runner use this to avoid duplicating
// caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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

// Execute runs the complete enumerate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Enumerate
	enumStart := time.Now()
	grids, orbitHit, err := r.EnumerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	result.Grids = grids
	result.Stats.EnumTime = time.Since(enumStart)
	result.Stats.GridCount = len(grids)
	result.CacheInfo.OrbitHit = orbitHit

	// Compute orbit hash for cache keys and batch summaries
	if orbitData, err := MarshalOrbit(grids); err == nil {
		result.OrbitHash = cache.Hash(orbitData)
	}

	r.Logger.Info("enumerated orbit",
		"variant", opts.Variant,
		"grids", len(grids),
		"duration", result.Stats.EnumTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, grids, result.OrbitHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// EnumerateWithCacheInfo enumerates the orbit with caching and returns
// cache hit info.
func (r *Runner) EnumerateWithCacheInfo(ctx context.Context, opts Options) ([]bpd.Grid, bool, error) {
	if err := opts.ValidateForEnumerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.OrbitKey(opts.Variant, opts.Perm, opts.OrbitKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if grids, err := UnmarshalOrbit(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "orbit")
				return grids, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "orbit")
	}

	// Enumerate
	grids, err := Enumerate(ctx, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := MarshalOrbit(grids); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLOrbit); err == nil {
			observability.Cache().OnCacheSet(ctx, "orbit", len(data))
		}
	}

	return grids, false, nil // Cache miss
}

// Enumerate is a convenience wrapper that calls EnumerateWithCacheInfo
// and discards the cache hit info.
func (r *Runner) Enumerate(ctx context.Context, opts Options) ([]bpd.Grid, error) {
	grids, _, err := r.EnumerateWithCacheInfo(ctx, opts)
	return grids, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. The orbitHash keys the artifacts; pass the hash of the
// serialized orbit, or empty to recompute it here.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, grids []bpd.Grid, orbitHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if orbitHash == "" {
		data, err := MarshalOrbit(grids)
		if err != nil {
			return nil, false, fmt.Errorf("serialize orbit for cache key: %w", err)
		}
		orbitHash = cache.Hash(data)
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(orbitHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(grids, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(orbitHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, grids []bpd.Grid, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, grids, "", opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
