package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bumpless/pkg/cache"
)

func testRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewRunner(c, nil, logger)
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil {
		t.Error("nil cache should fall back to NullCache")
	}
	if r.Keyer == nil {
		t.Error("nil keyer should fall back to DefaultKeyer")
	}
	if r.Logger == nil {
		t.Error("nil logger should fall back to the default logger")
	}
}

func TestRunnerExecute(t *testing.T) {
	r := testRunner(t, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Perm:    []int{3, 2, 5, 1, 4},
		Variant: "k",
		Formats: []string{FormatText, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID not set")
	}
	if result.Stats.GridCount != 4 {
		t.Errorf("GridCount = %d, want 4", result.Stats.GridCount)
	}
	if result.OrbitHash == "" {
		t.Error("OrbitHash not set")
	}
	if len(result.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(result.Artifacts))
	}
	if result.CacheInfo.OrbitHit || result.CacheInfo.RenderHit {
		t.Error("null cache should never report hits")
	}
}

func TestRunnerExecuteRejectsBadOptions(t *testing.T) {
	r := testRunner(t, nil)
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{Perm: []int{1, 1}}); err == nil {
		t.Error("Execute should reject an invalid permutation")
	}
}

func TestRunnerCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := testRunner(t, fc)
	defer r.Close()

	opts := Options{
		Perm:    []int{3, 2, 5, 1, 4},
		Variant: "droop",
		Formats: []string{FormatText},
	}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.OrbitHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.OrbitHit {
		t.Error("second run should hit the orbit cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if second.OrbitHash != first.OrbitHash {
		t.Error("orbit hash should be stable across runs")
	}

	// Refresh bypasses the orbit cache
	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.OrbitHit {
		t.Error("refresh run should not hit the orbit cache")
	}
}

func TestRunnerRenderStage(t *testing.T) {
	r := testRunner(t, nil)
	defer r.Close()

	grids, err := r.Enumerate(context.Background(), Options{Perm: []int{2, 1}})
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(grids) != 1 {
		t.Fatalf("orbit size = %d, want 1", len(grids))
	}

	artifacts, err := r.Render(context.Background(), grids, Options{
		Perm:    []int{2, 1},
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(artifacts[FormatDOT]) == 0 {
		t.Error("dot artifact is empty")
	}
}
