package cache

// ScopedKeyer wraps a Keyer with a prefix, giving callers that share one
// cache backend separate namespaces. Batch runs use this so per-job entries
// stay distinguishable even when jobs enumerate the same permutation.
//
// Example usage:
//
//	jobKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "job:nightly:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key
// generated by inner. A nil inner falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// OrbitKey generates a prefixed key for enumeration results.
func (k *ScopedKeyer) OrbitKey(variant string, perm []int, opts OrbitKeyOpts) string {
	return k.prefix + k.inner.OrbitKey(variant, perm, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(orbitHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(orbitHash, opts)
}

// Ensure ScopedKeyer implements Keyer.
var _ Keyer = (*ScopedKeyer)(nil)
