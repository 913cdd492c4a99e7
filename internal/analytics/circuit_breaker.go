// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/metrics"
	"github.com/tomtom215/insightboard/internal/models"
)

// breakerName labels the analytics backend breaker in logs and metrics.
const breakerName = "analytics-api"

// CircuitBreakerClient wraps Client with a circuit breaker.
//
// Only network failures and HTTP 5xx responses count against the backend.
// Validation failures and 4xx responses are caller or data problems and
// leave the breaker untouched. While open, calls fail immediately with a
// network error for the requested endpoint.
//
// Circuit States:
//   - Closed: requests pass through, failures are counted
//   - Open: requests are rejected without reaching the backend
//   - Half-Open: a limited number of trial requests decide the next state
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[*models.AnalyticsData]
	name   string
}

// NewCircuitBreakerClient decorates client with a breaker configured by cfg.
func NewCircuitBreakerClient(client *Client, cfg *config.BreakerConfig) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	minRequests := cfg.MinRequests
	failureRatio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[*models.AnalyticsData](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: countsAsSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   breakerName,
	}
}

// countsAsSuccess reports whether err should not count toward tripping.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.Kind {
	case KindNetwork:
		return false
	case KindHTTP:
		return ae.Status < 500
	default:
		return true
	}
}

// Fetch runs Client.Fetch through the breaker.
func (cbc *CircuitBreakerClient) Fetch(ctx context.Context, path Endpoint, opts ...FetchOption) (*models.AnalyticsData, error) {
	data, err := cbc.cb.Execute(func() (*models.AnalyticsData, error) {
		return cbc.client.Fetch(ctx, path, opts...)
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
		return data, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("endpoint", string(path)).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, newNetworkError(path, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
	counts := cbc.cb.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
	return nil, err
}

// Ping bypasses the breaker so readiness reflects the backend itself.
func (cbc *CircuitBreakerClient) Ping(ctx context.Context) error {
	return cbc.client.Ping(ctx)
}

// FetchAll fetches every module through the breaker.
func (cbc *CircuitBreakerClient) FetchAll(ctx context.Context, opts ...FetchOption) []ModuleResult {
	return FetchAll(ctx, cbc, opts...)
}

// FetchLegacy passes through to the wrapped client; legacy routes are not
// guarded.
func (cbc *CircuitBreakerClient) FetchLegacy(ctx context.Context, path LegacyEndpoint) (json.RawMessage, error) {
	return cbc.client.FetchLegacy(ctx, path)
}

// State returns the current breaker state name.
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// stateToFloat converts circuit breaker state for the Prometheus gauge.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
