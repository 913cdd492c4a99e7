// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for analytics client requests.
const (
	OutcomeSuccess      = "success"
	OutcomeNetwork      = "network"
	OutcomeHTTP         = "http"
	OutcomeValidation   = "validation"
	OutcomeUnclassified = "unclassified"
)

var (
	// Analytics Client Metrics
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_client_requests_total",
			Help: "Total number of analytics backend requests by outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_client_request_duration_seconds",
			Help:    "Analytics backend request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	ClientUpstreamStatus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_client_upstream_status_total",
			Help: "Non-success HTTP status codes returned by the analytics backend",
		},
		[]string{"endpoint", "status_code"},
	)

	ClientValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_client_validation_failures_total",
			Help: "Responses rejected by structural validation, by offending field",
		},
		[]string{"endpoint", "field"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Backend Health Metrics
	BackendUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_backend_up",
			Help: "Whether the last analytics backend health check succeeded (1) or failed (0)",
		},
	)

	BackendHealthChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_backend_health_checks_total",
			Help: "Total number of analytics backend health checks by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordClientRequest records one classified analytics backend call.
func RecordClientRequest(endpoint, outcome string, duration time.Duration) {
	ClientRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	ClientRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordUpstreamStatus records a non-success status from the backend.
func RecordUpstreamStatus(endpoint, statusCode string) {
	ClientUpstreamStatus.WithLabelValues(endpoint, statusCode).Inc()
}

// RecordValidationFailure records a rejected response body.
func RecordValidationFailure(endpoint, field string) {
	ClientValidationFailures.WithLabelValues(endpoint, field).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordBackendHealth records the outcome of one backend health check.
func RecordBackendHealth(outcome string) {
	BackendHealthChecks.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		BackendUp.Set(1)
	} else {
		BackendUp.Set(0)
	}
}
