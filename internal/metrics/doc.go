// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package metrics provides Prometheus instrumentation for Insightboard.

Metric families:

  - analytics_client_*: backend calls made by the analytics client,
    labelled by logical endpoint and outcome (success, network, http,
    validation, unclassified)
  - api_*: requests served by the dashboard HTTP API
  - circuit_breaker_*: optional breaker in front of the backend

All collectors are registered on the default registry through promauto and
exposed by the server at /metrics:

	r.Handle("/metrics", promhttp.Handler())

Recording helpers wrap the label plumbing:

	metrics.RecordClientRequest("/fraud-detection", metrics.OutcomeSuccess, elapsed)
	metrics.RecordAPIRequest("GET", "/api/v1/dashboard/{module}", "200", elapsed)
*/
package metrics
