// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateEngine(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}

	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("SERVER_ENVIRONMENT must be one of development, staging, production, got %q", c.Server.Environment)
	}
}

// validateData validates data artifact paths. Existence and content are
// checked at load time; here we only require the paths to be set.
func (c *Config) validateData() error {
	if c.Data.ReferencePath == "" {
		return fmt.Errorf("DATA_REFERENCE_PATH is required")
	}

	if c.Data.ModelPath == "" {
		return fmt.Errorf("DATA_MODEL_PATH is required")
	}

	return nil
}

// validateEngine validates recommendation engine limits
func (c *Config) validateEngine() error {
	if c.Engine.DefaultTopK < 1 {
		return fmt.Errorf("ENGINE_DEFAULT_TOP_K must be at least 1, got %d", c.Engine.DefaultTopK)
	}

	if c.Engine.MaxTopK < c.Engine.DefaultTopK {
		return fmt.Errorf("ENGINE_MAX_TOP_K (%d) must be >= ENGINE_DEFAULT_TOP_K (%d)",
			c.Engine.MaxTopK, c.Engine.DefaultTopK)
	}

	return nil
}

// validateSecurity validates CORS and rate limiting settings
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("SECURITY_CORS_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}

	if c.Security.RateLimitRequests < 0 {
		return fmt.Errorf("SECURITY_RATE_LIMIT_REQUESTS must not be negative, got %d", c.Security.RateLimitRequests)
	}

	if c.Security.RateLimitRequests > 0 && c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("SECURITY_RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}

	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
