package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, c.Database.Driver)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst == 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 when limiting is enabled")
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if c.Reconcile.Interval < 0 {
		return fmt.Errorf("reconcile.interval must be >= 0 (got %s)", c.Reconcile.Interval)
	}

	return nil
}

func (s StudyConfig) validate() error {
	if s.DefaultSessionSize <= 0 {
		return fmt.Errorf("default_session_size must be > 0 (got %d)", s.DefaultSessionSize)
	}
	if s.MaxSessionSize < s.DefaultSessionSize {
		return fmt.Errorf("max_session_size (%d) must be >= default_session_size (%d)", s.MaxSessionSize, s.DefaultSessionSize)
	}
	return nil
}
