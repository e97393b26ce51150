// Package cache provides pluggable byte caches for enumeration results and
// rendered artifacts, plus the key derivation shared by all backends.
//
// Orbits are pure functions of a permutation and a move variant, so cached
// entries never go stale in the semantic sense; TTLs exist only to bound
// disk usage and to age out encodings from older releases.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind.
const (
	// TTLOrbit applies to serialized enumeration results.
	TTLOrbit = 30 * 24 * time.Hour

	// TTLArtifact applies to rendered outputs, which are cheaper to
	// recompute and more sensitive to renderer changes.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with per-entry TTLs. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// OrbitKeyOpts distinguishes orbits enumerated under different settings.
type OrbitKeyOpts struct {
	// Limit caps the number of grids enumerated; 0 means unbounded.
	Limit int
}

// ArtifactKeyOpts distinguishes rendered artifacts of the same orbit.
// Variant is part of the key because graph formats draw the variant's
// move edges between grids.
type ArtifactKeyOpts struct {
	Format  string
	Variant string
	Unicode bool
}

// Keyer derives cache keys for the two pipeline stages. Implementations
// must produce identical keys for identical inputs across processes.
type Keyer interface {
	// OrbitKey identifies the enumeration of a permutation under a
	// move variant.
	OrbitKey(variant string, perm []int, opts OrbitKeyOpts) string

	// ArtifactKey identifies a rendered artifact, keyed off the hash of
	// the serialized orbit it was produced from.
	ArtifactKey(orbitHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives keys by hashing the JSON encoding of the key
// components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

func (*DefaultKeyer) OrbitKey(variant string, perm []int, opts OrbitKeyOpts) string {
	return hashKey("orbit", variant, perm, opts)
}

func (*DefaultKeyer) ArtifactKey(orbitHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", orbitHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
