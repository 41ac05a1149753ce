package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/storefront-backend/internal/theme"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Roadmap.validate(); err != nil {
		return fmt.Errorf("roadmap: %w", err)
	}

	if c.RateLimit.SubmitPerMinute <= 0 {
		return fmt.Errorf("ratelimit.submit_per_minute must be > 0 (got %d)", c.RateLimit.SubmitPerMinute)
	}

	if c.WebSocket.PingInterval <= 0 {
		return fmt.Errorf("websocket.ping_interval must be > 0 (got %s)", c.WebSocket.PingInterval)
	}
	if c.WebSocket.SendBuffer <= 0 {
		return fmt.Errorf("websocket.send_buffer must be > 0 (got %d)", c.WebSocket.SendBuffer)
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (r RoadmapConfig) validate() error {
	if _, ok := theme.Lookup(r.DefaultTheme); !ok {
		return fmt.Errorf("default_theme %q is not a known theme", r.DefaultTheme)
	}
	if r.DefaultCardOpacity < 0 || r.DefaultCardOpacity > 100 {
		return fmt.Errorf("default_card_opacity must be within 0..100 (got %d)", r.DefaultCardOpacity)
	}
	return nil
}
