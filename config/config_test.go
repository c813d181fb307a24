package config

import (
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "http://localhost:5000/api/v1" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}
	if !cfg.API.AttemptUnauthenticated {
		t.Fatal("expected unauthenticated attempts to default on")
	}
	if cfg.API.Timeout != 0 {
		t.Fatalf("expected no timeout by default, got %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != SessionBackendFile {
		t.Fatalf("expected file backend, got %q", cfg.Session.Backend)
	}
	if cfg.Session.FilePath != "" && filepath.Base(cfg.Session.FilePath) != sessionFileName {
		t.Fatalf("unexpected session file %q", cfg.Session.FilePath)
	}
	if cfg.BlobStore.IsEnabled() {
		t.Fatal("blob store must be disabled without a bucket")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %#v", cfg.Log)
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.learnhub.example/v1/ ")
	t.Setenv("API_TIMEOUT", "15s")
	t.Setenv("API_ATTEMPT_UNAUTHENTICATED", "false")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("REDIS_URI", "redis://:pw@cache:6379/2")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("BLOB_ENABLED", "true")
	t.Setenv("BLOB_BUCKET", "library-docs")
	t.Setenv("BLOB_ENDPOINT", "http://minio:9000")
	t.Setenv("BLOB_PATH_STYLE", "true")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://api.learnhub.example/v1" {
		t.Fatalf("base url not trimmed: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second || cfg.API.AttemptUnauthenticated {
		t.Fatalf("unexpected api config %#v", cfg.API)
	}

	expectedSession := SessionConfig{
		Backend:     SessionBackendRedis,
		RedisPrefix: "console:session:",
		TTL:         12 * time.Hour,
	}
	if !reflect.DeepEqual(cfg.Session, expectedSession) {
		t.Fatalf("unexpected session configuration:\nexpected: %#v\ngot:      %#v", expectedSession, cfg.Session)
	}
	if cfg.Redis.URI != "redis://:pw@cache:6379/2" || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected redis config %#v", cfg.Redis)
	}
	if !cfg.BlobStore.IsEnabled() || !cfg.BlobStore.PathStyle || cfg.BlobStore.Prefix != "library" {
		t.Fatalf("unexpected blob store config %#v", cfg.BlobStore)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestSessionBackend_UnmarshalText(t *testing.T) {
	var b SessionBackend
	if err := b.UnmarshalText([]byte("postgres")); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if err := b.UnmarshalText([]byte(" MEMORY ")); err != nil || b != SessionBackendMemory {
		t.Fatalf("got %q, %v", b, err)
	}
}

func TestAPIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{"valid", "https://api.example.com", ""},
		{"empty", "", "required"},
		{"relative", "/api", "http or https"},
		{"no host", "https://", "host"},
		{"ftp", "ftp://files.example.com", "http or https"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := APIConfig{BaseURL: tt.baseURL}
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSessionConfig_Sanitize(t *testing.T) {
	c := SessionConfig{Backend: SessionBackendFile, FilePath: "  /tmp/console.json ", TTL: -time.Second}
	c.Sanitize()
	if c.FilePath != "/tmp/console.json" || c.TTL != 0 {
		t.Fatalf("unexpected sanitized config %#v", c)
	}

	mem := SessionConfig{Backend: SessionBackendMemory}
	mem.Sanitize()
	if mem.FilePath != "" {
		t.Fatalf("memory backend should not derive a file path, got %q", mem.FilePath)
	}
	if err := mem.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLogConfig(t *testing.T) {
	tests := []struct {
		name      string
		in        LogConfig
		isDev     bool
		wantLevel slog.Level
		wantFmt   string
	}{
		{"defaults", LogConfig{}, false, slog.LevelInfo, "json"},
		{"dev defaults to debug", LogConfig{}, true, slog.LevelDebug, "json"},
		{"explicit warn text", LogConfig{Level: "WARN", Format: "Text"}, true, slog.LevelWarn, "text"},
		{"unknown level", LogConfig{Level: "loud", Format: "xml"}, false, slog.LevelInfo, "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Sanitize(tt.isDev)
			if got := c.SlogLevel(); got != tt.wantLevel {
				t.Fatalf("level: expected %v, got %v", tt.wantLevel, got)
			}
			if c.Format != tt.wantFmt {
				t.Fatalf("format: expected %q, got %q", tt.wantFmt, c.Format)
			}
		})
	}
}

func TestBlobStoreConfig_Sanitize(t *testing.T) {
	c := BlobStoreConfig{Enabled: true, Bucket: "  "}
	c.Sanitize()
	if c.IsEnabled() {
		t.Fatal("expected blob store disabled without bucket")
	}
}

func TestMetricsConfig_Sanitize(t *testing.T) {
	cfg := MetricsConfig{Enabled: true, StatsdAddress: " "}
	cfg.Sanitize()
	if cfg.IsEnabled() {
		t.Fatalf("expected metrics to be disabled without an address")
	}

	cfg = MetricsConfig{Enabled: true, StatsdAddress: " statsd:1234 "}
	cfg.Sanitize()
	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
}
