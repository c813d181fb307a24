package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// APIConfig contains the backend API client configuration.
type APIConfig struct {
	// BaseURL is the backend root every resource path is joined to.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5000/api/v1"`

	// Timeout bounds each call. Zero keeps the transport default (no timeout).
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"0s"`

	UserAgent string `env:"API_USER_AGENT" envDefault:"learnhub-admin-console"`

	// AttemptUnauthenticated sends calls with an empty bearer value when no
	// session exists and lets the backend answer 401. Disable to fail locally.
	AttemptUnauthenticated bool `env:"API_ATTEMPT_UNAUTHENTICATED" envDefault:"true"`

	// CookieJar keeps backend cookies between calls in one process.
	CookieJar bool `env:"API_COOKIE_JAR" envDefault:"true"`

	// Envelope expressions (JMESPath) locating error fields in failed responses.
	EnvelopeMessage string `env:"API_ENVELOPE_MESSAGE" envDefault:"message"`
	EnvelopeError   string `env:"API_ENVELOPE_ERROR"   envDefault:"error"`
	EnvelopeDetails string `env:"API_ENVELOPE_DETAILS" envDefault:"details"`
}

// Sanitize applies guardrails to API configuration values.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.UserAgent = strings.TrimSpace(c.UserAgent)
	if c.Timeout < 0 {
		c.Timeout = 0
	}
}

// Validate checks that the base URL is absolute.
func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("API_BASE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("API_BASE_URL must include a host")
	}
	return nil
}
