// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package main is the entry point for the Insightboard dashboard server.

The server sits between the dashboard frontend and the analytics backend.
It fetches each dashboard module through the analytics client, validates the
payload, and serves it back with a uniform JSON envelope. Failures are
reported with the same user-facing messages the client produces.

# Application Architecture

	RootSupervisor ("insightboard")
	├── ClientSupervisor ("client-layer")
	│   └── Backend monitor (periodic /health ping, optional)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Analytics client, optionally behind a circuit breaker
 4. API handler and chi router with CORS and rate limiting
 5. Supervisor Tree: Suture v4 process supervision

# Configuration

	Priority: Environment variables > Config file > Defaults

	ANALYTICS_API_URL=http://localhost:8000   # backend base URL, may carry a path prefix
	ANALYTICS_HEALTH_INTERVAL=30s             # 0 disables the backend monitor
	BREAKER_ENABLED=false
	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests within
SHUTDOWN_TIMEOUT.
*/
package main
