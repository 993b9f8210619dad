package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("default listen = %q", cfg.Listen)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("default cache backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 10*time.Minute {
		t.Errorf("default TTL = %v", cfg.Cache.TTL.Duration)
	}
	// Browser caching stays shorter than the server-side TTL.
	if cfg.HTTP.BrowserMaxAge.Duration >= cfg.Cache.TTL.Duration {
		t.Errorf("browser max-age %v should be below cache TTL %v",
			cfg.HTTP.BrowserMaxAge.Duration, cfg.Cache.TTL.Duration)
	}
	if cfg.Analytics.MongoURI != "" {
		t.Error("analytics should be disabled by default")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpgcard.toml")
	content := `
listen = ":9000"

[cache]
backend = "redis"
redis_addr = "redis:6379"
ttl = "5m"

[upstream]
timeout = "3s"

[analytics]
mongo_uri = "mongodb://localhost:27017"
database = "cards"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("listen = %q", cfg.Listen)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 5*time.Minute {
		t.Errorf("TTL = %v", cfg.Cache.TTL.Duration)
	}
	if cfg.Upstream.Timeout.Duration != 3*time.Second {
		t.Errorf("timeout = %v", cfg.Upstream.Timeout.Duration)
	}
	if cfg.Analytics.MongoURI == "" || cfg.Analytics.Database != "cards" {
		t.Errorf("analytics config = %+v", cfg.Analytics)
	}

	// Unset fields keep their defaults.
	if cfg.Upstream.BaseURL == "" {
		t.Error("unset base_url should keep its default")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("RPGCARD_LISTEN", ":7777")
	t.Setenv("RPGCARD_CACHE_BACKEND", "none")
	t.Setenv("RPGCARD_MONGO_URI", "mongodb://env:27017")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Listen != ":7777" {
		t.Errorf("env listen = %q", cfg.Listen)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("env cache backend = %q", cfg.Cache.Backend)
	}
	if cfg.Analytics.MongoURI != "mongodb://env:27017" {
		t.Errorf("env mongo uri = %q", cfg.Analytics.MongoURI)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("RPGCARD_CACHE_BACKEND", "memcached")
	if _, err := loadConfig(""); err == nil {
		t.Error("unknown cache backends should be rejected")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig("/does/not/exist.toml"); err == nil {
		t.Error("missing config files should be an error")
	}
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("90s")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("parsed %v", d.Duration)
	}
	if err := d.UnmarshalText([]byte("not a duration")); err == nil {
		t.Error("invalid durations should fail to parse")
	}
}
