// Package cache provides artifact caching for rendered charts. Rendering a
// figure is deterministic, so a cache entry keyed by the hash of the chart
// description, its data and the output options can be replayed safely.
//
// Three implementations cover the deployment modes: FileCache for the CLI,
// RedisCache for server deployments, and NullCache to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Default TTLs per entry class. Rendered artifacts are immutable for a given
// key, so the TTL only bounds disk/memory growth.
const (
	TTLArtifact  = 7 * 24 * time.Hour
	TTLPlacement = 24 * time.Hour
)

// Keyer builds cache keys for the cacheable pipeline stages.
type Keyer interface {
	// ArtifactKey keys a rendered output by the chart hash and format options.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string

	// PlacementKey keys computed swarm placements by the chart hash.
	PlacementKey(chartHash string) string
}

// ArtifactKeyOpts distinguishes renders of the same chart into different
// outputs.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer is the standard key scheme: a type prefix plus a hash of the
// identifying parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}

func (DefaultKeyer) PlacementKey(chartHash string) string {
	return hashKey("placement", chartHash)
}

// ScopedKeyer prefixes every key of an inner keyer, isolating tenants that
// share one cache backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner so all keys carry prefix. A nil inner uses the
// default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(chartHash, opts)
}

func (k *ScopedKeyer) PlacementKey(chartHash string) string {
	return k.prefix + k.inner.PlacementKey(chartHash)
}
