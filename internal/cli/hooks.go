package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pixelquest/rpgcard/pkg/observability"
)

// logHooks backs the observability registry with debug-level logging.
// Installed once by the serve command; the library packages stay unaware of
// the logger.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnCacheHit(ctx context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(ctx context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(ctx context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

func (h logHooks) OnCacheError(ctx context.Context, key string, err error) {
	// The failure was absorbed as a miss; this is the only trace of it.
	h.logger.Warn("cache backend error", "key", key, "error", err)
}

func (h logHooks) OnRequest(ctx context.Context, username string) {
	h.logger.Debug("upstream request", "user", username)
}

func (h logHooks) OnResponse(ctx context.Context, username string, statusCode int, duration time.Duration) {
	h.logger.Debug("upstream response", "user", username, "status", statusCode,
		"duration", duration.Round(time.Millisecond))
}

func (h logHooks) OnError(ctx context.Context, username string, err error) {
	h.logger.Warn("upstream transport error", "user", username, "error", err)
}

func (h logHooks) OnCardRender(ctx context.Context, username string, duration time.Duration) {
	h.logger.Debug("card rendered", "user", username, "duration", duration.Round(time.Millisecond))
}

func (h logHooks) OnErrorCardRender(ctx context.Context, code string) {
	h.logger.Debug("error card rendered", "code", code)
}

// installHooks registers the logging hooks for every event category.
func installHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetCacheHooks(h)
	observability.SetUpstreamHooks(h)
	observability.SetRenderHooks(h)
}
