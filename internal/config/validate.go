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
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}

	if c.RateLimit.MutationsPerMinute < 0 {
		return fmt.Errorf("rate_limit.mutations_per_minute must be >= 0 (got %d)", c.RateLimit.MutationsPerMinute)
	}
	if c.RateLimit.MutationsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when the limiter is enabled")
	}

	return nil
}

func (w *WorkflowConfig) validate() error {
	w.StateCounter = strings.TrimSpace(w.StateCounter)
	if w.StateCounter == "" {
		return fmt.Errorf("state_counter must not be empty")
	}
	if w.MaxGroupDepth <= 0 {
		return fmt.Errorf("max_group_depth must be > 0 (got %d)", w.MaxGroupDepth)
	}
	return nil
}
