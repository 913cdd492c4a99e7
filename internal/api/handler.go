// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"time"

	"github.com/tomtom215/insightboard/internal/analytics"
)

// breakerStater is implemented by clients that sit behind a circuit breaker.
type breakerStater interface {
	State() string
}

// Handler serves the dashboard API on top of an analytics service.
type Handler struct {
	service   analytics.Service
	startTime time.Time
	version   string
}

// NewHandler creates a handler backed by service. version is reported by
// the liveness probe.
func NewHandler(service analytics.Service, version string) *Handler {
	return &Handler{
		service:   service,
		startTime: time.Now(),
		version:   version,
	}
}
