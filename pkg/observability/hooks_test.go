package observability

import (
	"context"
	"testing"
	"time"
)

type countingCacheHooks struct {
	hits, misses, sets, errors int
}

func (c *countingCacheHooks) OnCacheHit(context.Context, string)          { c.hits++ }
func (c *countingCacheHooks) OnCacheMiss(context.Context, string)         { c.misses++ }
func (c *countingCacheHooks) OnCacheSet(context.Context, string, int)     { c.sets++ }
func (c *countingCacheHooks) OnCacheError(context.Context, string, error) { c.errors++ }

func TestDefaultHooksAreNoops(t *testing.T) {
	Reset()
	ctx := context.Background()

	// None of these should panic.
	Cache().OnCacheHit(ctx, "alice")
	Cache().OnCacheError(ctx, "alice", nil)
	Upstream().OnRequest(ctx, "alice")
	Upstream().OnResponse(ctx, "alice", 200, time.Millisecond)
	Render().OnCardRender(ctx, "alice", time.Millisecond)
	Render().OnErrorCardRender(ctx, "NOT_FOUND")
}

func TestSetCacheHooks(t *testing.T) {
	Reset()
	defer Reset()

	h := &countingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "alice")
	Cache().OnCacheMiss(ctx, "bob")
	Cache().OnCacheSet(ctx, "bob", 128)

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hook counts unexpected: %+v", h)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	Reset()
	defer Reset()

	h := &countingCacheHooks{}
	SetCacheHooks(h)
	SetCacheHooks(nil)

	Cache().OnCacheHit(context.Background(), "alice")
	if h.hits != 1 {
		t.Error("nil registration should not replace existing hooks")
	}
}

func TestReset(t *testing.T) {
	h := &countingCacheHooks{}
	SetCacheHooks(h)
	Reset()

	Cache().OnCacheHit(context.Background(), "alice")
	if h.hits != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
