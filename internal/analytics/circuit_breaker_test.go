// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/insightboard/internal/config"
)

func testBreakerConfig() *config.BreakerConfig {
	return &config.BreakerConfig{
		Enabled:      true,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.6,
	}
}

func TestCountsAsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: true},
		{name: "network", err: newNetworkError(EndpointForecasting, nil), want: false},
		{name: "http 503", err: newHTTPError(EndpointForecasting, 503), want: false},
		{name: "http 500", err: newHTTPError(EndpointForecasting, 500), want: false},
		{name: "http 404", err: newHTTPError(EndpointForecasting, 404), want: true},
		{name: "validation", err: newValidationError(EndpointForecasting, invalid("title", "x")), want: true},
		{name: "unclassified", err: newUnclassifiedError(EndpointForecasting, errors.New("bad json")), want: true},
		{name: "foreign error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := countsAsSuccess(tt.err); got != tt.want {
				t.Errorf("countsAsSuccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircuitBreakerClient_TripsOnServerErrors(t *testing.T) {
	t.Parallel()

	server := newCountingServer(t, http.StatusServiceUnavailable, ``)
	cbc := NewCircuitBreakerClient(newTestClient(t, server.URL), testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := cbc.Fetch(ctx, EndpointForecasting)
		checkAnalyticsError(t, err, KindHTTP)
	}
	checkStringEqual(t, "state", cbc.State(), "open")

	_, err := cbc.Fetch(ctx, EndpointForecasting)
	ae := checkAnalyticsError(t, err, KindNetwork)
	checkStringEqual(t, "endpoint", string(ae.Endpoint), "/forecasting")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected wrapped ErrOpenState, got %v", ae.Err)
	}
	checkIntEqual(t, "requests", int(server.hits.Load()), 3)
}

func TestCircuitBreakerClient_IgnoresDataProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		kind   Kind
	}{
		{name: "validation", status: http.StatusOK, body: `{"labels":[],"datasets":[],"kpis":[],"chartType":"area","title":"t"}`, kind: KindValidation},
		{name: "client error", status: http.StatusNotFound, body: ``, kind: KindHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := newCountingServer(t, tt.status, tt.body)
			cbc := NewCircuitBreakerClient(newTestClient(t, server.URL), testBreakerConfig())

			for i := 0; i < 5; i++ {
				_, err := cbc.Fetch(context.Background(), EndpointBenchmarking)
				checkAnalyticsError(t, err, tt.kind)
			}
			checkStringEqual(t, "state", cbc.State(), "closed")
			checkIntEqual(t, "requests", int(server.hits.Load()), 5)
		})
	}
}

func TestCircuitBreakerClient_PassThrough(t *testing.T) {
	t.Parallel()

	server := newCountingServer(t, http.StatusOK, validBarBody)
	cbc := NewCircuitBreakerClient(newTestClient(t, server.URL), testBreakerConfig())
	ctx := context.Background()

	data, err := cbc.Fetch(ctx, EndpointFraudDetection, WithBefore(true))
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	checkStringEqual(t, "title", data.Title, "Quarterly Claims")
	checkStringEqual(t, "url", server.LastURL(), "/fraud-detection?before=true")

	results := cbc.FetchAll(ctx)
	checkIntEqual(t, "results", len(results), len(Endpoints))
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s: unexpected error %v", res.Endpoint, res.Err)
		}
	}

	if err := cbc.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if _, err := cbc.FetchLegacy(ctx, LegacyExecutiveSummary); err != nil {
		t.Errorf("FetchLegacy() error = %v", err)
	}
}

func TestStateConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		f     float64
		s     string
	}{
		{gobreaker.StateClosed, 0, "closed"},
		{gobreaker.StateHalfOpen, 1, "half-open"},
		{gobreaker.StateOpen, 2, "open"},
		{gobreaker.State(99), -1, "unknown"},
	}
	for _, tt := range tests {
		if got := stateToFloat(tt.state); got != tt.f {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.f)
		}
		checkStringEqual(t, "stateToString", stateToString(tt.state), tt.s)
	}
}
