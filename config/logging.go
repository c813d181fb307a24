package config

import (
	"log/slog"
	"strings"
)

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty means info (debug in dev mode).
	Level string `env:"LOG_LEVEL"`
	// Format is json or text.
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Sanitize normalises level and format.
func (c *LogConfig) Sanitize(isDev bool) {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	if c.Level == "" {
		c.Level = "info"
		if isDev {
			c.Level = "debug"
		}
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format != "text" {
		c.Format = "json"
	}
}

// SlogLevel maps Level onto slog; unknown values fall back to info.
func (c *LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
