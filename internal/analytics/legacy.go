// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/metrics"
)

// LegacyEndpoint is an origin-absolute route of the older per-analysis API.
// Legacy responses have no common shape and are passed through unvalidated.
type LegacyEndpoint string

// Legacy endpoints, grouped by analysis family.
const (
	LegacyExecutiveSummary LegacyEndpoint = "/api/executive/summary"

	LegacyFraudBenford    LegacyEndpoint = "/api/fraud/benford"
	LegacyFraudOutliers   LegacyEndpoint = "/api/fraud/outliers"
	LegacyFraudPatterns   LegacyEndpoint = "/api/fraud/patterns"
	LegacyFraudDuplicates LegacyEndpoint = "/api/fraud/duplicates"
	LegacyFraudForensic   LegacyEndpoint = "/api/fraud/forensic"

	LegacyOperationsQueueTheory LegacyEndpoint = "/api/operations/queue-theory"
	LegacyOperationsLoadBalance LegacyEndpoint = "/api/operations/load-balance"
	LegacyOperationsThroughput  LegacyEndpoint = "/api/operations/throughput"
	LegacyOperationsYield       LegacyEndpoint = "/api/operations/yield"
	LegacyOperationsPareto      LegacyEndpoint = "/api/operations/pareto"

	LegacyPredictiveForecast   LegacyEndpoint = "/api/predictive/forecast"
	LegacyPredictiveRegression LegacyEndpoint = "/api/predictive/regression"
	LegacyPredictiveScenarios  LegacyEndpoint = "/api/predictive/scenarios"
	LegacyPredictiveSurvival   LegacyEndpoint = "/api/predictive/survival"

	LegacyGeographicClusters     LegacyEndpoint = "/api/geographic/clusters"
	LegacyGeographicHotspots     LegacyEndpoint = "/api/geographic/hotspots"
	LegacyGeographicCohorts      LegacyEndpoint = "/api/geographic/cohorts"
	LegacyGeographicGenderParity LegacyEndpoint = "/api/geographic/gender-parity"
	LegacyGeographicGaps         LegacyEndpoint = "/api/geographic/gaps"

	LegacyDescriptiveUnivariate LegacyEndpoint = "/api/descriptive/univariate"
	LegacyDescriptiveTimeseries LegacyEndpoint = "/api/descriptive/timeseries"

	LegacyQualityBenchmarking LegacyEndpoint = "/api/quality/benchmarking"
	LegacyQualityDeciles      LegacyEndpoint = "/api/quality/deciles"

	LegacyAdvancedRiskScoring LegacyEndpoint = "/api/advanced/risk-scoring"
)

// LegacyEndpoints lists every known legacy route.
var LegacyEndpoints = []LegacyEndpoint{
	LegacyExecutiveSummary,
	LegacyFraudBenford, LegacyFraudOutliers, LegacyFraudPatterns, LegacyFraudDuplicates, LegacyFraudForensic,
	LegacyOperationsQueueTheory, LegacyOperationsLoadBalance, LegacyOperationsThroughput, LegacyOperationsYield, LegacyOperationsPareto,
	LegacyPredictiveForecast, LegacyPredictiveRegression, LegacyPredictiveScenarios, LegacyPredictiveSurvival,
	LegacyGeographicClusters, LegacyGeographicHotspots, LegacyGeographicCohorts, LegacyGeographicGenderParity, LegacyGeographicGaps,
	LegacyDescriptiveUnivariate, LegacyDescriptiveTimeseries,
	LegacyQualityBenchmarking, LegacyQualityDeciles,
	LegacyAdvancedRiskScoring,
}

// ErrUnknownLegacyEndpoint is returned for paths outside LegacyEndpoints.
var ErrUnknownLegacyEndpoint = errors.New("unknown legacy endpoint")

// LookupLegacy resolves a legacy path to its LegacyEndpoint.
func LookupLegacy(path string) (LegacyEndpoint, error) {
	for _, e := range LegacyEndpoints {
		if string(e) == path {
			return e, nil
		}
	}
	return "", ErrUnknownLegacyEndpoint
}

// FetchLegacy performs a pass-through GET against a legacy route. The body
// must be syntactically valid JSON but is otherwise returned as-is. Errors
// are plain wrapped errors, not *Error.
func (c *Client) FetchLegacy(ctx context.Context, path LegacyEndpoint) (json.RawMessage, error) {
	if _, err := LookupLegacy(string(path)); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	start := time.Now()
	body, err := c.fetchLegacy(ctx, path)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeUnclassified
		logging.Ctx(ctx).Warn().Err(err).Str("endpoint", string(path)).Msg("Legacy fetch failed")
	}
	metrics.RecordClientRequest(string(path), outcome, elapsed)
	return body, err
}

func (c *Client) fetchLegacy(ctx context.Context, path LegacyEndpoint) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.originURL(string(path)), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make %s request: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("%s request failed with status %d: %s", path, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", path, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to decode %s response: invalid JSON", path)
	}
	return json.RawMessage(body), nil
}
