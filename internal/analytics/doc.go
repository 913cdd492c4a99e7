// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package analytics is the client layer between dashboard consumers and the
analytics backend.

It has three parts:

  - Client dispatches one GET per module to <base URL><endpoint>, optionally
    with before=true|false, and never retries.
  - Validate checks a generically decoded body against the AnalyticsData
    shape before it is decoded into models.AnalyticsData.
  - Error carries the failure classification. Every failed fetch is exactly
    one of network, HTTP, validation, or unclassified, checked in that order.

# Dashboard Modules

Nine fixed endpoints are exposed as constants and as named methods on
Client:

	/executive-summary        ExecutiveSummary
	/descriptive-analytics    DescriptiveAnalytics
	/fraud-detection          FraudDetection
	/outlier-detection        OutlierDetection
	/operational-efficiency   OperationalEfficiency
	/forecasting              Forecasting
	/geographic-analysis      GeographicAnalysis
	/benchmarking             Benchmarking
	/ai-risk-scoring          AIRiskScoring

FetchAll requests all of them concurrently. Results are independent: one
module failing does not cancel the others.

# Error Messages

	network       Unable to connect to the analytics service
	http          Failed to load <endpoint>: HTTP <status>
	validation    Invalid data format received from <endpoint>
	unclassified  the underlying error text

Error.Shape returns the flat {message, status, endpoint} object used at the
HTTP boundary. status is only present for HTTP failures.

# Resilience

CircuitBreakerClient wraps Client with sony/gobreaker. Network errors and
5xx responses count as failures. An open circuit surfaces as a network
error so callers keep a single taxonomy.

# Legacy Routes

FetchLegacy passes through the older per-analysis routes
(/api/fraud/benford and friends) as raw JSON without shape validation.
These paths are resolved against the backend origin rather than the base
URL path.
*/
package analytics
