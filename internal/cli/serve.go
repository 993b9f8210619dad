package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelquest/rpgcard/pkg/analytics"
	"github.com/pixelquest/rpgcard/pkg/buildinfo"
	"github.com/pixelquest/rpgcard/pkg/cache"
	"github.com/pixelquest/rpgcard/pkg/github"
	"github.com/pixelquest/rpgcard/pkg/server"
)

// shutdownGrace bounds how long in-flight requests may finish after the
// process is signalled.
const shutdownGrace = 10 * time.Second

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var configPath string
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the status-card HTTP server",
		Long:  "Serve renders GitHub profiles as retro RPG status cards over HTTP until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			installHooks(logger)

			backend, err := newCacheBackend(ctx, cfg.Cache)
			if err != nil {
				return err
			}
			defer backend.Close()

			recorder, err := newRecorder(ctx, cfg.Analytics)
			if err != nil {
				// Analytics is best-effort from the first moment: a dead
				// Mongo should not keep cards from being served.
				logger.Warn("analytics disabled", "error", err)
				recorder = nil
			}
			if recorder != nil {
				defer recorder.Close(context.Background())
			}

			store := github.NewStore(backend, cfg.Cache.TTL.Duration)
			client := github.NewClient(cfg.Upstream.BaseURL, buildinfo.UserAgent(), cfg.Upstream.Timeout.Duration)
			srv := server.New(store, client, recorder, logger, cfg.HTTP.BrowserMaxAge.Duration)

			httpServer := &http.Server{
				Addr:    cfg.Listen,
				Handler: srv.Router(),
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			logger.Info("listening", "addr", cfg.Listen,
				"cache", cfg.Cache.Backend, "ttl", cfg.Cache.TTL.Duration,
				"analytics", recorder != nil)

			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("shut down cleanly")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	return cmd
}

// newCacheBackend builds the configured freshness-cache backend.
func newCacheBackend(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisDB)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return cache.NewMemoryCache(), nil
	}
}

// newRecorder builds the analytics recorder, or nil when disabled.
func newRecorder(ctx context.Context, cfg AnalyticsConfig) (*analytics.Recorder, error) {
	if cfg.MongoURI == "" {
		return nil, nil
	}
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return analytics.NewRecorder(connectCtx, cfg.MongoURI, cfg.Database)
}
