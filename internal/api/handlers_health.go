// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/insightboard/internal/analytics"
	"github.com/tomtom215/insightboard/internal/logging"
)

// LivenessStatus is the payload of /health/live.
type LivenessStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessStatus is the payload of /health/ready.
type ReadinessStatus struct {
	Status         string `json:"status"`
	Backend        string `json:"backend"`
	CircuitBreaker string `json:"circuit_breaker,omitempty"`
}

// HealthLive reports that the process is serving. It never touches the
// analytics backend.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, LivenessStatus{
		Status:        "alive",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady pings the analytics backend and answers 503 when it is not
// reachable or not healthy.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := ReadinessStatus{Status: "ready", Backend: "healthy"}
	if bs, ok := h.service.(breakerStater); ok {
		status.CircuitBreaker = bs.State()
	}

	if err := h.service.Ping(r.Context()); err != nil {
		ae := analytics.AsError(err)
		logging.Ctx(r.Context()).Warn().
			Str("kind", ae.Kind.String()).
			Err(err).
			Msg("Readiness check failed")

		status.Status = "not_ready"
		status.Backend = ae.Kind.String()
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, ae.Shape().Message, status)
		return
	}

	rw.Success(status)
}
