// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package api is the dashboard backend-for-frontend: a chi router that
// exposes the analytics client over HTTP with a uniform JSON envelope.
//
// Routes:
//
//	GET /api/v1/health/live            process liveness
//	GET /api/v1/health/ready           analytics backend reachability
//	GET /api/v1/dashboard              every module, fetched concurrently
//	GET /api/v1/dashboard/modules      module names and paths
//	GET /api/v1/dashboard/{module}     one module
//	GET /api/v1/legacy/*               legacy pass-through
//	GET /metrics                       Prometheus exposition
//
// The dashboard routes accept before=true|false.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/insightboard/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	// Health probes are never rate limited.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("dashboard"))
		r.Use(middleware.Compression)

		r.Get("/", router.handler.DashboardOverview)
		r.Get("/modules", router.handler.DashboardModules)
		r.Get("/{module}", router.handler.DashboardModule)
	})

	r.Route("/api/v1/legacy", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("legacy"))
		r.Use(middleware.Compression)

		r.Get("/*", router.handler.LegacyPassThrough)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
