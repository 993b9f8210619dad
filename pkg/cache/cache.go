// Package cache provides the freshness cache for fetched profile records.
//
// The cache is a TTL-bounded key/value store: entries are stored with an
// expiry that the backend itself enforces, so an expired entry is simply
// absent on the next Get. Three backends are provided:
//
//   - RedisCache: the production backend, using Redis key expiry
//   - MemoryCache: an in-process map for tests and single-binary deployments
//   - NullCache: a no-op backend for disabling caching entirely
//
// Values are opaque byte slices; callers own serialization.
package cache

import (
	"context"
	"time"
)

// Cache is a TTL key/value store.
//
// Get returns (nil, false, nil) for both missing and expired keys. A non-nil
// error indicates a backend failure; callers are expected to treat backend
// failures as misses rather than surfacing them.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A zero or negative
	// ttl stores the value without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
