// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// countingService runs until canceled, failing the first failures times.
type countingService struct {
	name     string
	starts   atomic.Int32
	failures int32
}

func (s *countingService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.failures {
		return errors.New("transient failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *countingService) String() string { return s.name }

func TestTreeConfig_Defaults(t *testing.T) {
	tree := NewSupervisorTree(testLogger(), TreeConfig{})

	want := DefaultTreeConfig()
	if tree.config != want {
		t.Errorf("expected defaults %+v, got %+v", want, tree.config)
	}

	custom := NewSupervisorTree(testLogger(), TreeConfig{FailureThreshold: 2, FailureBackoff: time.Second})
	if custom.config.FailureThreshold != 2 || custom.config.FailureBackoff != time.Second {
		t.Errorf("explicit values should be kept, got %+v", custom.config)
	}
	if custom.config.FailureDecay != want.FailureDecay {
		t.Errorf("unset values should default, got %+v", custom.config)
	}
}

func TestSupervisorTree_Lifecycle(t *testing.T) {
	tree := NewSupervisorTree(testLogger(), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})

	monitor := &countingService{name: "monitor", failures: 2}
	server := &countingService{name: "server"}
	tree.AddClientService(monitor)
	tree.AddAPIService(server)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for monitor.starts.Load() < 3 || server.starts.Load() < 1 {
		select {
		case <-deadline:
			t.Fatalf("services did not start: monitor=%d server=%d", monitor.starts.Load(), server.starts.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	if got := server.starts.Load(); got != 1 {
		t.Errorf("client-layer restarts should not restart the API layer, server started %d times", got)
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("expected all services stopped, got %v", report)
	}
}
