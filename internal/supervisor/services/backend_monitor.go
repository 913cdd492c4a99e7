// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/insightboard/internal/analytics"
	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/metrics"
)

// Pinger checks the analytics backend. *analytics.Client implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BackendMonitor pings the analytics backend on a fixed interval and
// publishes the result as the analytics_backend_up gauge. It logs only
// when the backend changes between up and down.
type BackendMonitor struct {
	pinger   Pinger
	interval time.Duration

	checked atomic.Bool
	up      atomic.Bool
}

// NewBackendMonitor creates a monitor that pings every interval.
func NewBackendMonitor(pinger Pinger, interval time.Duration) *BackendMonitor {
	return &BackendMonitor{pinger: pinger, interval: interval}
}

// Up reports the result of the most recent check.
func (m *BackendMonitor) Up() bool {
	return m.up.Load()
}

// Serve implements suture.Service. The first check runs immediately.
func (m *BackendMonitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *BackendMonitor) check(ctx context.Context) {
	// A check never outlives its interval.
	checkCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.pinger.Ping(checkCtx)
	if ctx.Err() != nil {
		return
	}

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = analytics.AsError(err).Kind.String()
	}
	metrics.RecordBackendHealth(outcome)

	up := err == nil
	wasUp := m.up.Swap(up)
	first := !m.checked.Swap(true)
	switch {
	case up && (first || !wasUp):
		logging.Info().Msg("Analytics backend is healthy")
	case !up && (first || wasUp):
		logging.Warn().Err(err).Str("kind", outcome).Msg("Analytics backend health check failed")
	}
}

// String names the service in supervisor events.
func (m *BackendMonitor) String() string {
	return "backend-monitor"
}
