package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.IdentitySecret) < 32 {
		return fmt.Errorf("auth.identity_secret must be at least 32 characters (got %d)", len(c.Auth.IdentitySecret))
	}

	c.Auth.EditorGroups = SplitList(c.Auth.EditorGroupsRaw)
	if len(c.Auth.EditorGroups) == 0 {
		return fmt.Errorf("auth.editor_groups must name at least one group")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.PublicRateLimit < 0 {
		return fmt.Errorf("server.public_rate_limit must not be negative (got %d)", c.Server.PublicRateLimit)
	}

	if err := c.Tracing.validate(); err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	return nil
}

func (t *TracingConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	if strings.TrimSpace(t.Endpoint) == "" {
		return fmt.Errorf("endpoint is required when tracing is enabled")
	}
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		return fmt.Errorf("sample_ratio must be within [0, 1] (got %v)", t.SampleRatio)
	}
	return nil
}
