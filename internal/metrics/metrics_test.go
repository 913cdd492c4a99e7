// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordClientRequest(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		outcome  string
	}{
		{name: "success", endpoint: "/test-success", outcome: OutcomeSuccess},
		{name: "network", endpoint: "/test-network", outcome: OutcomeNetwork},
		{name: "validation", endpoint: "/test-validation", outcome: OutcomeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(ClientRequestsTotal.WithLabelValues(tt.endpoint, tt.outcome))
			RecordClientRequest(tt.endpoint, tt.outcome, 15*time.Millisecond)
			after := testutil.ToFloat64(ClientRequestsTotal.WithLabelValues(tt.endpoint, tt.outcome))
			if after-before != 1 {
				t.Errorf("expected counter to increase by 1, got %v", after-before)
			}
		})
	}
}

func TestRecordUpstreamStatus(t *testing.T) {
	counter := ClientUpstreamStatus.WithLabelValues("/test-status", "503")
	before := testutil.ToFloat64(counter)
	RecordUpstreamStatus("/test-status", "503")
	RecordUpstreamStatus("/test-status", "503")
	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("expected 2 increments, got %v", got)
	}
}

func TestRecordValidationFailure(t *testing.T) {
	counter := ClientValidationFailures.WithLabelValues("/test-validate", "chartType")
	before := testutil.ToFloat64(counter)
	RecordValidationFailure("/test-validate", "chartType")
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected 1 increment, got %v", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/test-route", "200")
	before := testutil.ToFloat64(counter)
	RecordAPIRequest("GET", "/test-route", "200", 5*time.Millisecond)
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected 1 increment, got %v", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("expected gauge +2, got %v", got)
	}
	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected gauge back to %v, got %v", before, got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := APIRateLimitHits.WithLabelValues("/test-limit")
	before := testutil.ToFloat64(counter)
	RecordRateLimitHit("/test-limit")
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected 1 increment, got %v", got)
	}
}

func TestRecordBackendHealth(t *testing.T) {
	failures := BackendHealthChecks.WithLabelValues(OutcomeNetwork)
	before := testutil.ToFloat64(failures)

	RecordBackendHealth(OutcomeNetwork)
	if got := testutil.ToFloat64(BackendUp); got != 0 {
		t.Errorf("expected backend down, got %v", got)
	}
	if got := testutil.ToFloat64(failures) - before; got != 1 {
		t.Errorf("expected 1 failed check, got %v", got)
	}

	RecordBackendHealth(OutcomeSuccess)
	if got := testutil.ToFloat64(BackendUp); got != 1 {
		t.Errorf("expected backend up, got %v", got)
	}
}
