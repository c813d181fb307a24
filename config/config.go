package config

import (
	"errors"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: backend API client configuration
//   - session.go: session persistence configuration
//   - redis.go: Redis connection configuration
//   - blobstore.go: object storage for uploads
//   - logging.go: structured logging
//   - metrics.go: StatsD metrics for backend calls
type AppConfig struct {
	// IsDev controls development mode behavior (debug logging by default).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	Log     LogConfig
	Metrics MetricsConfig

	// Backend API client configuration
	API APIConfig

	// Session persistence configuration
	Session SessionConfig

	Redis     RedisConfig     `envPrefix:"REDIS_"`
	BlobStore BlobStoreConfig `envPrefix:"BLOB_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.detectDevMode()

	c.Log.Sanitize(c.IsDev)
	c.Metrics.Sanitize()
	c.API.Sanitize()
	c.Session.Sanitize()
	c.BlobStore.Sanitize()
}

// Validate reports configuration that cannot be used to start the console.
func (c *AppConfig) Validate() error {
	return errors.Join(c.API.Validate(), c.Session.Validate())
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
