// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/insightboard/internal/models"
)

func TestFetchAll_IndependentResults(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case string(EndpointFraudDetection):
			w.WriteHeader(http.StatusInternalServerError)
		case string(EndpointForecasting):
			_, _ = w.Write([]byte(`{"labels":[],"datasets":[],"kpis":[],"chartType":"area","title":"t"}`))
		default:
			_, _ = w.Write([]byte(validBarBody))
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	results := client.FetchAll(context.Background(), WithBefore(false))

	checkIntEqual(t, "results", len(results), len(Endpoints))
	checkIntEqual(t, "requests", int(hits.Load()), len(Endpoints))

	for i, res := range results {
		if res.Endpoint != Endpoints[i] {
			t.Errorf("result %d: expected endpoint %s, got %s", i, Endpoints[i], res.Endpoint)
		}
		switch res.Endpoint {
		case EndpointFraudDetection:
			checkAnalyticsError(t, res.Err, KindHTTP)
		case EndpointForecasting:
			checkAnalyticsError(t, res.Err, KindValidation)
		default:
			if res.Err != nil || res.Data == nil {
				t.Errorf("%s: expected data, got err %v", res.Endpoint, res.Err)
			}
		}
	}
}

// stubFetcher answers from a fixed table.
type stubFetcher struct {
	calls atomic.Int32
	errs  map[Endpoint]error
}

func (s *stubFetcher) Fetch(_ context.Context, path Endpoint, _ ...FetchOption) (*models.AnalyticsData, error) {
	s.calls.Add(1)
	if err := s.errs[path]; err != nil {
		return nil, err
	}
	return &models.AnalyticsData{Title: path.Name(), ChartType: models.ChartLine}, nil
}

func (s *stubFetcher) Ping(context.Context) error { return nil }

func TestFetchEndpoints_Subset(t *testing.T) {
	t.Parallel()

	stub := &stubFetcher{errs: map[Endpoint]error{
		EndpointBenchmarking: newNetworkError(EndpointBenchmarking, nil),
	}}
	endpoints := []Endpoint{EndpointBenchmarking, EndpointAIRiskScoring}

	results := FetchEndpoints(context.Background(), stub, endpoints)

	checkIntEqual(t, "calls", int(stub.calls.Load()), 2)
	checkAnalyticsError(t, results[0].Err, KindNetwork)
	if results[1].Data == nil {
		t.Fatal("second result should carry data")
	}
	checkStringEqual(t, "title", results[1].Data.Title, "ai-risk-scoring")
}

func TestFetchEndpoints_Empty(t *testing.T) {
	t.Parallel()

	results := FetchEndpoints(context.Background(), &stubFetcher{}, nil)
	checkIntEqual(t, "results", len(results), 0)
}
