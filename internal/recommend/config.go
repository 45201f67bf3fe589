// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

import "fmt"

// Config holds engine limits.
type Config struct {
	// DefaultTopK is used when a request leaves TopK at zero.
	DefaultTopK int

	// MaxTopK caps requested TopK; larger requests are clamped, not
	// rejected.
	MaxTopK int
}

// DefaultConfig returns the engine's stock limits.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopK: 3,
		MaxTopK:     25,
	}
}

// Validate checks the limits for consistency.
func (c *Config) Validate() error {
	if c.DefaultTopK < 1 {
		return fmt.Errorf("DefaultTopK must be at least 1, got %d", c.DefaultTopK)
	}
	if c.MaxTopK < c.DefaultTopK {
		return fmt.Errorf("MaxTopK (%d) must be >= DefaultTopK (%d)", c.MaxTopK, c.DefaultTopK)
	}
	return nil
}

// Clone returns a copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
