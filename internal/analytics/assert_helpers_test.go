// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/insightboard/internal/config"
)

// checkStringEqual checks that got equals want
func checkStringEqual(t *testing.T, fieldName, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

// checkIntEqual checks that got equals want
func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}

// checkAnalyticsError checks that err is an *Error of the given kind and
// returns it for further assertions.
func checkAnalyticsError(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if ae.Kind != kind {
		t.Fatalf("kind: expected %s, got %s (%v)", kind, ae.Kind, ae)
	}
	return ae
}

// newTestClient builds a Client pointed at server.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(&config.BackendConfig{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewClient(%q) error = %v", baseURL, err)
	}
	return client
}

// countingServer serves body with status and records how many requests
// arrived and the last request URL.
type countingServer struct {
	*httptest.Server
	hits    atomic.Int32
	lastURL atomic.Value
}

func newCountingServer(t *testing.T, status int, body string) *countingServer {
	t.Helper()
	cs := &countingServer{}
	cs.lastURL.Store("")
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.hits.Add(1)
		cs.lastURL.Store(r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *countingServer) LastURL() string {
	return cs.lastURL.Load().(string)
}

// closedServerURL returns the URL of a server that is no longer listening.
func closedServerURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	u := server.URL
	server.Close()
	return u
}

const validBarBody = `{
	"labels": ["Q1", "Q2"],
	"datasets": [{"label": "Claims", "data": [10, 20], "backgroundColor": ["#f00", "#0f0"]}],
	"kpis": [{"label": "Total", "value": 30, "format": "number"}, {"label": "Trend", "value": "+12%"}],
	"chartType": "bar",
	"title": "Quarterly Claims"
}`
