// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/models"
)

// Endpoint is the logical path of a dashboard module, e.g. "/forecasting".
// It is appended to the configured base URL and reported back in errors.
type Endpoint string

// Name returns the module name without the leading slash.
func (e Endpoint) Name() string {
	return strings.TrimPrefix(string(e), "/")
}

// Dashboard module endpoints.
const (
	EndpointExecutiveSummary      Endpoint = "/executive-summary"
	EndpointDescriptiveAnalytics  Endpoint = "/descriptive-analytics"
	EndpointFraudDetection        Endpoint = "/fraud-detection"
	EndpointOutlierDetection      Endpoint = "/outlier-detection"
	EndpointOperationalEfficiency Endpoint = "/operational-efficiency"
	EndpointForecasting           Endpoint = "/forecasting"
	EndpointGeographicAnalysis    Endpoint = "/geographic-analysis"
	EndpointBenchmarking          Endpoint = "/benchmarking"
	EndpointAIRiskScoring         Endpoint = "/ai-risk-scoring"
)

// Endpoints lists every dashboard module in display order.
var Endpoints = []Endpoint{
	EndpointExecutiveSummary,
	EndpointDescriptiveAnalytics,
	EndpointFraudDetection,
	EndpointOutlierDetection,
	EndpointOperationalEfficiency,
	EndpointForecasting,
	EndpointGeographicAnalysis,
	EndpointBenchmarking,
	EndpointAIRiskScoring,
}

// ErrUnknownEndpoint is returned by Lookup for names outside Endpoints.
var ErrUnknownEndpoint = errors.New("unknown analytics endpoint")

// Lookup resolves a module name ("fraud-detection") or path
// ("/fraud-detection") to its Endpoint.
func Lookup(name string) (Endpoint, error) {
	want := "/" + strings.TrimPrefix(strings.TrimSpace(name), "/")
	for _, e := range Endpoints {
		if string(e) == want {
			return e, nil
		}
	}
	return "", ErrUnknownEndpoint
}

// Fetcher is the dashboard-facing surface of the client. Both *Client and
// *CircuitBreakerClient implement it.
type Fetcher interface {
	Fetch(ctx context.Context, path Endpoint, opts ...FetchOption) (*models.AnalyticsData, error)
	Ping(ctx context.Context) error
}

// Service is a Fetcher that also serves the legacy pass-through routes.
type Service interface {
	Fetcher
	FetchLegacy(ctx context.Context, path LegacyEndpoint) (json.RawMessage, error)
}

var (
	_ Service = (*Client)(nil)
	_ Service = (*CircuitBreakerClient)(nil)
)

// Each named method is a thin wrapper over Fetch with a fixed path.

// ExecutiveSummary fetches the executive summary module.
func (c *Client) ExecutiveSummary(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointExecutiveSummary, opts...)
}

// DescriptiveAnalytics fetches the descriptive analytics module.
func (c *Client) DescriptiveAnalytics(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointDescriptiveAnalytics, opts...)
}

// FraudDetection fetches the fraud detection module.
func (c *Client) FraudDetection(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointFraudDetection, opts...)
}

// OutlierDetection fetches the outlier detection module.
func (c *Client) OutlierDetection(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointOutlierDetection, opts...)
}

// OperationalEfficiency fetches the operational efficiency module.
func (c *Client) OperationalEfficiency(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointOperationalEfficiency, opts...)
}

// Forecasting fetches the forecasting module.
func (c *Client) Forecasting(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointForecasting, opts...)
}

// GeographicAnalysis fetches the geographic analysis module.
func (c *Client) GeographicAnalysis(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointGeographicAnalysis, opts...)
}

// Benchmarking fetches the benchmarking module.
func (c *Client) Benchmarking(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointBenchmarking, opts...)
}

// AIRiskScoring fetches the AI risk scoring module.
func (c *Client) AIRiskScoring(ctx context.Context, opts ...FetchOption) (*models.AnalyticsData, error) {
	return c.Fetch(ctx, EndpointAIRiskScoring, opts...)
}
