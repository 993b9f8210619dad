package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMemoryCacheRoundtrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "user:alice", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "user:alice")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected a hit for a fresh entry")
	}
	if !bytes.Equal(data, []byte("payload")) {
		t.Errorf("Get returned %q", data)
	}

	// Unknown key is a plain miss.
	_, hit, err = c.Get(ctx, "user:bob")
	if err != nil || hit {
		t.Errorf("unknown key: hit=%v err=%v", hit, err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	now := time.Now()
	c.SetClock(func() time.Time { return now })

	if err := c.Set(ctx, "user:alice", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Still fresh just before the TTL.
	now = now.Add(59 * time.Second)
	if _, hit, _ := c.Get(ctx, "user:alice"); !hit {
		t.Error("entry should still be fresh before TTL")
	}

	// Expired entries are treated as absent.
	now = now.Add(2 * time.Second)
	if _, hit, _ := c.Get(ctx, "user:alice"); hit {
		t.Error("entry should expire after TTL")
	}
}

func TestMemoryCacheZeroTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	now := time.Now()
	c.SetClock(func() time.Time { return now })

	if err := c.Set(ctx, "user:alice", []byte("payload"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	now = now.Add(24 * time.Hour)
	if _, hit, _ := c.Get(ctx, "user:alice"); !hit {
		t.Error("zero TTL should mean no expiry")
	}
}

func TestMemoryCacheReplace(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	c.Set(ctx, "user:alice", []byte("v1"), time.Minute)
	c.Set(ctx, "user:alice", []byte("v2"), time.Minute)

	data, _, _ := c.Get(ctx, "user:alice")
	if string(data) != "v2" {
		t.Errorf("entries are replaced wholesale, got %q", data)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	c.Set(ctx, "user:alice", []byte("payload"), time.Minute)
	if err := c.Delete(ctx, "user:alice"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "user:alice"); hit {
		t.Error("deleted entry should be a miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "user:ghost"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}
