// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tomtom215/insightboard/internal/analytics"
	"github.com/tomtom215/insightboard/internal/api"
	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/supervisor"
	"github.com/tomtom215/insightboard/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Default logger; config not available yet
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("backend", cfg.Backend.BaseURL).
		Bool("breaker_enabled", cfg.Breaker.Enabled).
		Msg("Starting Insightboard with supervisor tree")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	tree, err := buildTree(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel delivers exactly one result and is never closed.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree stopped with error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newService builds the analytics client, wrapped in a circuit breaker when
// enabled.
func newService(cfg *config.Config) (analytics.Service, *analytics.Client, error) {
	client, err := analytics.NewClient(&cfg.Backend)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create analytics client: %w", err)
	}
	if !cfg.Breaker.Enabled {
		return client, client, nil
	}
	logging.Info().
		Uint32("min_requests", cfg.Breaker.MinRequests).
		Float64("failure_ratio", cfg.Breaker.FailureRatio).
		Dur("open_timeout", cfg.Breaker.Timeout).
		Msg("Circuit breaker enabled for analytics backend")
	return analytics.NewCircuitBreakerClient(client, &cfg.Breaker), client, nil
}

// newHTTPServer builds the dashboard API server for service.
func newHTTPServer(cfg *config.Config, service analytics.Service) *http.Server {
	handler := api.NewHandler(service, version)
	mw := api.NewChiMiddleware(api.NewChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, mw)

	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// buildTree wires every long-running service into a supervisor tree.
func buildTree(cfg *config.Config) (*supervisor.SupervisorTree, error) {
	service, client, err := newService(cfg)
	if err != nil {
		return nil, err
	}
	server := newHTTPServer(cfg, service)

	tree := supervisor.NewSupervisorTree(logging.NewSlogLoggerWithComponent("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	// Ping the backend directly; the breaker must not hide its health.
	if cfg.Backend.HealthInterval > 0 {
		tree.AddClientService(services.NewBackendMonitor(client, cfg.Backend.HealthInterval))
	} else {
		logging.Info().Msg("Backend health monitor disabled (ANALYTICS_HEALTH_INTERVAL=0)")
	}

	return tree, nil
}
