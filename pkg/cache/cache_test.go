package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before any write
	if _, hit, err := c.Get(ctx, "orbit:abc"); err != nil || hit {
		t.Fatalf("expected clean miss, got hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "orbit:abc", []byte("grids"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "orbit:abc")
	if err != nil || !hit {
		t.Fatalf("expected hit, got hit=%v err=%v", hit, err)
	}
	if string(data) != "grids" {
		t.Errorf("Get returned %q", data)
	}

	if err := c.Delete(ctx, "orbit:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "orbit:abc"); hit {
		t.Error("expected miss after delete")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should be a miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "key2", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key2"); !hit {
		t.Error("zero-TTL entry should persist")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always return an empty miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// Identical inputs give identical keys
	o1 := k.OrbitKey("plain", []int{3, 2, 5, 1, 4}, OrbitKeyOpts{})
	o2 := k.OrbitKey("plain", []int{3, 2, 5, 1, 4}, OrbitKeyOpts{})
	if o1 != o2 {
		t.Error("OrbitKey should be deterministic")
	}

	// Any differing component changes the key
	if o1 == k.OrbitKey("k", []int{3, 2, 5, 1, 4}, OrbitKeyOpts{}) {
		t.Error("different variants should produce different keys")
	}
	if o1 == k.OrbitKey("plain", []int{3, 2, 5, 4, 1}, OrbitKeyOpts{}) {
		t.Error("different permutations should produce different keys")
	}
	if o1 == k.OrbitKey("plain", []int{3, 2, 5, 1, 4}, OrbitKeyOpts{Limit: 10}) {
		t.Error("different limits should produce different keys")
	}

	a1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	a2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "dot"})
	if a1 == a2 {
		t.Error("different formats should produce different keys")
	}
	a3 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "dot", Variant: "k"})
	if a2 == a3 {
		t.Error("different variants should produce different artifact keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "job:123:")
	key := scoped.OrbitKey("flat", []int{2, 1}, OrbitKeyOpts{})
	if len(key) < 8 || key[:8] != "job:123:" {
		t.Errorf("ScopedKeyer key should be prefixed: %s", key)
	}

	// Nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "p:")
	if fallback.OrbitKey("flat", []int{2, 1}, OrbitKeyOpts{}) != "p:"+NewDefaultKeyer().OrbitKey("flat", []int{2, 1}, OrbitKeyOpts{}) {
		t.Error("nil inner should behave like the default keyer")
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return a wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	calls := 0
	if err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	}); err != nil {
		t.Errorf("should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("should call once: %d", calls)
	}

	// Non-retryable errors stop immediately
	calls = 0
	if err := RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	}); err != ErrNotFound {
		t.Errorf("should return the non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("should not retry a non-retryable error: %d", calls)
	}

	calls = 0
	if err := RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	}); err != nil {
		t.Errorf("should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("should return the context error: %v", err)
	}
}
