// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"context"
	"sync"

	"github.com/tomtom215/insightboard/internal/models"
)

// ModuleResult is the outcome of fetching one module during FetchAll.
// Exactly one of Data and Err is set.
type ModuleResult struct {
	Endpoint Endpoint
	Data     *models.AnalyticsData
	Err      error
}

// FetchAll fetches every dashboard module concurrently through f and
// returns the results in Endpoints order. Calls are independent: a failing
// module never cancels or delays the others.
func FetchAll(ctx context.Context, f Fetcher, opts ...FetchOption) []ModuleResult {
	return FetchEndpoints(ctx, f, Endpoints, opts...)
}

// FetchEndpoints is FetchAll over an explicit endpoint list.
func FetchEndpoints(ctx context.Context, f Fetcher, endpoints []Endpoint, opts ...FetchOption) []ModuleResult {
	results := make([]ModuleResult, len(endpoints))

	var wg sync.WaitGroup
	for i, ep := range endpoints {
		wg.Add(1)
		go func(i int, ep Endpoint) {
			defer wg.Done()
			data, err := f.Fetch(ctx, ep, opts...)
			results[i] = ModuleResult{Endpoint: ep, Data: data, Err: err}
		}(i, ep)
	}
	wg.Wait()

	return results
}

// FetchAll fetches every dashboard module concurrently.
func (c *Client) FetchAll(ctx context.Context, opts ...FetchOption) []ModuleResult {
	return FetchAll(ctx, c, opts...)
}
