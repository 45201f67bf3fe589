// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

// Package config handles application configuration from defaults, an optional
// YAML config file, and environment variables, in ascending order of priority.
package config

import (
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Data     DataConfig     `koanf:"data"`
	Engine   EngineConfig   `koanf:"engine"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// DataConfig holds paths to the data artifacts loaded at startup.
// ReferencePath and ModelPath are required; the service refuses to start
// without them. RulesPath is optional and overrides the built-in
// agronomic rule tables when set.
type DataConfig struct {
	ReferencePath string `koanf:"reference_path"` // Regional reference CSV
	ModelPath     string `koanf:"model_path"`     // Classifier artifact (JSON)
	RulesPath     string `koanf:"rules_path"`     // Optional rule table override (YAML)
}

// EngineConfig holds recommendation engine settings
type EngineConfig struct {
	DefaultTopK int `koanf:"default_top_k"` // Recommendations returned when the request omits top_k
	MaxTopK     int `koanf:"max_top_k"`     // Upper bound on requested top_k
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // "trace", "debug", "info", "warn", "error"
	Format string `koanf:"format"` // "json" or "console"
	Caller bool   `koanf:"caller"`
}
