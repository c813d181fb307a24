package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionBackend selects where the console session is persisted.
type SessionBackend string

const (
	// SessionBackendMemory keeps the session for the process lifetime only.
	SessionBackendMemory SessionBackend = "memory"
	// SessionBackendFile writes the session to a local JSON file.
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis stores the session in Redis (shared operator hosts).
	SessionBackendRedis SessionBackend = "redis"
)

const sessionFileName = "session.json"

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "memory", "file", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: memory, file, redis)", v)
	}
}

// SessionConfig controls session persistence.
type SessionConfig struct {
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"file"`

	// FilePath is the session file for the file backend.
	// Empty uses <user config dir>/learnhub-console/session.json.
	FilePath string `env:"SESSION_FILE"`

	// RedisPrefix namespaces session keys for the redis backend.
	RedisPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"console:session:"`

	// TTL expires redis session keys. Zero keeps them until logout.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"0s"`
}

// Sanitize fills derived defaults.
func (c *SessionConfig) Sanitize() {
	if c.Backend == "" {
		c.Backend = SessionBackendFile
	}
	c.FilePath = strings.TrimSpace(c.FilePath)
	if c.Backend == SessionBackendFile && c.FilePath == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			c.FilePath = filepath.Join(dir, "learnhub-console", sessionFileName)
		}
	}
	if c.TTL < 0 {
		c.TTL = 0
	}
}

// Validate checks backend-specific requirements.
func (c *SessionConfig) Validate() error {
	if c.Backend == SessionBackendFile && c.FilePath == "" {
		return errors.New("SESSION_FILE is required when no user config directory is available")
	}
	return nil
}
