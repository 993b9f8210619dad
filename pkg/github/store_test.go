package github

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixelquest/rpgcard/pkg/cache"
)

// failingCache simulates an unavailable backend.
type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("backend down")
}
func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("backend down")
}
func (failingCache) Delete(context.Context, string) error { return errors.New("backend down") }
func (failingCache) Close() error                         { return nil }

func TestStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(cache.NewMemoryCache(), time.Minute)

	record := &UserRecord{
		Login:     "alice",
		Bio:       "hi",
		Followers: 10,
		Following: 5,
		CreatedAt: "2020-01-01T00:00:00Z",
	}
	store.Set(ctx, record)

	got, ok := store.Get(ctx, "alice")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if got.Login != "alice" || got.Bio != "hi" || got.Followers != 10 {
		t.Errorf("record content changed through the cache: %+v", got)
	}
}

func TestStoreMiss(t *testing.T) {
	store := NewStore(cache.NewMemoryCache(), time.Minute)
	if _, ok := store.Get(context.Background(), "nobody"); ok {
		t.Error("expected a miss for an unknown user")
	}
}

func TestStoreBackendFailureIsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewStore(failingCache{}, time.Minute)

	// A failing read is a miss, never an error.
	if _, ok := store.Get(ctx, "alice"); ok {
		t.Error("backend failure should read as a miss")
	}

	// A failing write is swallowed.
	store.Set(ctx, &UserRecord{Login: "alice"})
}

func TestStoreCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	backend := cache.NewMemoryCache()
	store := NewStore(backend, time.Minute)

	backend.Set(ctx, "user:alice", []byte("{corrupt"), time.Minute)
	if _, ok := store.Get(ctx, "alice"); ok {
		t.Error("corrupt entry should read as a miss")
	}

	// The corrupt entry is dropped so the next write starts clean.
	if _, hit, _ := backend.Get(ctx, "user:alice"); hit {
		t.Error("corrupt entry should be deleted")
	}
}

func TestStoreDefaultTTL(t *testing.T) {
	store := NewStore(cache.NewNullCache(), 0)
	if store.TTL() != DefaultTTL {
		t.Errorf("TTL = %v, want %v", store.TTL(), DefaultTTL)
	}
}
