package github

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pixelquest/rpgcard/pkg/cache"
	"github.com/pixelquest/rpgcard/pkg/observability"
)

// DefaultTTL is the server-side freshness window for cached records.
// Long enough to keep upstream call volume well under the unauthenticated
// rate limit, short enough that profile edits show up within minutes.
const DefaultTTL = 10 * time.Minute

// Store layers the freshness cache over user records. It owns serialization
// and the key scheme; the backend stays an opaque byte store.
//
// Backend failures never escape: a failed read is a miss, a failed write is
// dropped. The worst case is an extra upstream call.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewStore creates a record store on the given cache backend.
// A non-positive ttl falls back to DefaultTTL.
func NewStore(c cache.Cache, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{cache: c, ttl: ttl}
}

// TTL returns the configured freshness window.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the cached record for a username, or ok=false on a miss.
// Expired entries are absent by backend contract; corrupt entries are
// deleted and treated as misses.
func (s *Store) Get(ctx context.Context, username string) (*UserRecord, bool) {
	key := recordKey(username)

	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		observability.Cache().OnCacheError(ctx, key, err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}

	var record UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		_ = s.cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}

	observability.Cache().OnCacheHit(ctx, key)
	return &record, true
}

// Set stores a record under its login. Intended to be called from a
// detached goroutine after the response is already on the wire, so it
// reports failures only through the cache hooks. Concurrent writes for the
// same login are last writer wins.
func (s *Store) Set(ctx context.Context, record *UserRecord) {
	key := recordKey(record.Login)

	data, err := json.Marshal(record)
	if err != nil {
		observability.Cache().OnCacheError(ctx, key, err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		observability.Cache().OnCacheError(ctx, key, err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}

// recordKey builds the cache key for a username.
func recordKey(username string) string {
	return "user:" + username
}
