// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package config provides layered configuration for Insightboard.

# Configuration Sources

Configuration is loaded with Koanf v2 in order of increasing priority:

 1. Built-in defaults
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/insightboard/config.yaml)
 3. Environment variables

# Environment Variables

Analytics backend:
  - ANALYTICS_API_URL: backend origin, optionally with a path prefix (default: http://localhost:8000)

Circuit breaker (disabled by default):
  - BREAKER_ENABLED, BREAKER_MAX_REQUESTS, BREAKER_INTERVAL, BREAKER_TIMEOUT
  - BREAKER_MIN_REQUESTS, BREAKER_FAILURE_RATIO

Dashboard server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8080)
  - HTTP_TIMEOUT (default: 30s), SHUTDOWN_TIMEOUT (default: 15s)
  - CORS_ORIGINS: comma-separated origins (default: local Vite and React dev servers)
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m), DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT (default: json), LOG_CALLER

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	client, err := analytics.NewClient(&cfg.Backend)
*/
package config
