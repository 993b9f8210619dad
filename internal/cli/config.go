package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pixelquest/rpgcard/pkg/github"
	"github.com/pixelquest/rpgcard/pkg/server"
)

// Duration is a time.Duration that decodes from TOML strings ("10m", "2s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config is the full service configuration. Values come from defaults,
// then an optional TOML file, then environment variables, in that order.
type Config struct {
	Listen    string          `toml:"listen"`
	HTTP      HTTPConfig      `toml:"http"`
	Upstream  UpstreamConfig  `toml:"upstream"`
	Cache     CacheConfig     `toml:"cache"`
	Analytics AnalyticsConfig `toml:"analytics"`
}

// HTTPConfig controls response behavior.
type HTTPConfig struct {
	// BrowserMaxAge is the Cache-Control max-age on successful cards.
	// Keep it shorter than cache.ttl.
	BrowserMaxAge Duration `toml:"browser_max_age"`
}

// UpstreamConfig controls the GitHub client.
type UpstreamConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

// CacheConfig selects and tunes the freshness-cache backend.
type CacheConfig struct {
	// Backend is one of "redis", "memory", or "none".
	Backend   string   `toml:"backend"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
	TTL       Duration `toml:"ttl"`
}

// AnalyticsConfig controls the MongoDB side-channel. An empty URI disables
// it.
type AnalyticsConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// defaultConfig returns the configuration used when no file or environment
// overrides are present: memory cache, public GitHub API, no analytics.
func defaultConfig() Config {
	return Config{
		Listen: ":8080",
		HTTP: HTTPConfig{
			BrowserMaxAge: Duration{server.DefaultBrowserMaxAge},
		},
		Upstream: UpstreamConfig{
			BaseURL: github.DefaultBaseURL,
			Timeout: Duration{github.DefaultTimeout},
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			TTL:       Duration{github.DefaultTTL},
		},
		Analytics: AnalyticsConfig{
			Database: "rpgcard",
		},
	}
}

// loadConfig builds the effective configuration. path may be empty to skip
// the file layer.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	switch cfg.Cache.Backend {
	case "redis", "memory", "none":
	default:
		return cfg, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Environment wins over
// the file so containerized deployments need no config file at all.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RPGCARD_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("RPGCARD_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("RPGCARD_REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("RPGCARD_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Cache.RedisDB = db
		}
	}
	if v := os.Getenv("RPGCARD_MONGO_URI"); v != "" {
		cfg.Analytics.MongoURI = v
	}
	if v := os.Getenv("RPGCARD_MONGO_DATABASE"); v != "" {
		cfg.Analytics.Database = v
	}
	if v := os.Getenv("RPGCARD_GITHUB_BASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
}
