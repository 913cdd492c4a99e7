// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file, and environment variables.
//
// Koanf struct tags define the configuration path for each field:
//
//	backend:
//	  base_url: "http://localhost:8000/api/unified"
//	breaker:
//	  enabled: true
type Config struct {
	Backend  BackendConfig  `koanf:"backend"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// BackendConfig locates the analytics backend.
//
// BaseURL is the origin every endpoint path is appended to. It may carry a
// path prefix (http://host:8000/api/unified) but no query string. There is
// no request timeout setting; callers bound requests with their context.
//
// HealthInterval is how often the server pings the backend's /health route
// in the background. Zero disables the monitor.
type BackendConfig struct {
	BaseURL        string        `koanf:"base_url"`
	HealthInterval time.Duration `koanf:"health_interval"`
}

// BreakerConfig controls the optional circuit breaker in front of the
// analytics backend. It is disabled by default so each call is exactly one
// request with no fast-fail rejections.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval resets the failure counts while closed.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests must be observed before the failure ratio is evaluated.
	MinRequests uint32 `koanf:"min_requests"`

	// FailureRatio trips the breaker when reached (0 < ratio <= 1).
	FailureRatio float64 `koanf:"failure_ratio"`
}

// ServerConfig holds the dashboard HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds browser-facing protections for the dashboard API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
