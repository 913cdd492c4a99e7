// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/metrics"
	"github.com/tomtom215/insightboard/internal/models"
)

// maxErrorBodySize limits how much of a failed response is read for logging.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads at most maxErrorBodySize bytes of r for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// FetchOption customizes a single fetch.
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	before *bool
}

// WithBefore adds the before=true|false query parameter, selecting the
// pre-analysis ("before") or post-analysis view of a module. Without it the
// parameter is omitted and the backend default applies.
func WithBefore(before bool) FetchOption {
	return func(o *fetchOptions) {
		o.before = &before
	}
}

// ClientOption customizes a Client at construction.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use it to point
// at an httptest server transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// Client fetches and validates analytics data from the backend.
//
// Each fetch issues exactly one GET request with no body. Nothing is retried
// and no timeout is imposed beyond the caller's context. Failures come back
// as *Error classified, in order of precedence, as network, HTTP,
// validation, or unclassified.
//
// Thread Safety: Safe for concurrent use. The client holds only immutable
// configuration and a shared *http.Client.
//
// Example:
//
//	client, err := analytics.NewClient(&cfg.Backend)
//	data, err := client.FraudDetection(ctx, analytics.WithBefore(false))
//	if err != nil {
//	    shape := analytics.AsError(err).Shape()
//	    // render shape.Message
//	}
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

// NewClient creates a client for the backend described by cfg.
func NewClient(cfg *config.BackendConfig, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("backend configuration is required")
	}
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if err := config.ValidateBaseURL(raw); err != nil {
		return nil, fmt.Errorf("invalid analytics base URL: %w", err)
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics base URL: %w", err)
	}

	c := &Client{
		baseURL: base,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// buildURL joins path onto the base URL and appends the before parameter
// when requested.
func (c *Client) buildURL(path Endpoint, o fetchOptions) (string, error) {
	if !strings.HasPrefix(string(path), "/") || len(path) < 2 {
		return "", fmt.Errorf("invalid endpoint path %q: must start with '/'", path)
	}
	if strings.ContainsAny(string(path), "?#") {
		return "", fmt.Errorf("invalid endpoint path %q: query and fragment are not allowed", path)
	}

	u := c.baseURL.JoinPath(string(path))
	if o.before != nil {
		q := url.Values{}
		q.Set("before", strconv.FormatBool(*o.before))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// originURL resolves an absolute path against the scheme and host of the
// base URL, ignoring any path prefix.
func (c *Client) originURL(path string) string {
	u := url.URL{Scheme: c.baseURL.Scheme, Host: c.baseURL.Host, Path: path}
	return u.String()
}

// Fetch retrieves, validates, and decodes one dashboard module.
func (c *Client) Fetch(ctx context.Context, path Endpoint, opts ...FetchOption) (*models.AnalyticsData, error) {
	var o fetchOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	data, ferr := c.fetch(ctx, path, o)
	observeFetch(ctx, path, o, ferr, time.Since(start))
	if ferr != nil {
		return nil, ferr
	}
	return data, nil
}

func (c *Client) fetch(ctx context.Context, path Endpoint, o fetchOptions) (*models.AnalyticsData, *Error) {
	reqURL, err := c.buildURL(path, o)
	if err != nil {
		return nil, newUnclassifiedError(path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, newUnclassifiedError(path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, newNetworkError(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		logging.Ctx(ctx).Debug().
			Str("endpoint", string(path)).
			Int("status", resp.StatusCode).
			Bytes("body", body).
			Msg("Analytics backend returned non-success status")
		return nil, newHTTPError(path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newUnclassifiedError(path, err)
	}

	return decodeAnalyticsData(path, body)
}

// decodeAnalyticsData parses body generically, validates its shape, then
// decodes it into the typed model. Malformed JSON is unclassified; a
// well-formed body with the wrong shape is a validation failure. Numbers are
// kept as json.Number so values beyond float64 range still count as numbers.
// The typed decode matches keys exactly, the same way Validate looks them up.
func decodeAnalyticsData(path Endpoint, body []byte) (*models.AnalyticsData, *Error) {
	generic, err := decodeGeneric(body)
	if err != nil {
		return nil, newUnclassifiedError(path, err)
	}

	if result := Validate(generic); !result.OK {
		return nil, newValidationError(path, result)
	}

	var data models.AnalyticsData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, newUnclassifiedError(path, err)
	}
	return &data, nil
}

// errTrailingData reports bytes after the top-level JSON value.
var errTrailingData = errors.New("invalid character after top-level value")

func decodeGeneric(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return generic, nil
}

// observeFetch logs and records metrics for one classified fetch.
func observeFetch(ctx context.Context, path Endpoint, o fetchOptions, ferr *Error, elapsed time.Duration) {
	endpoint := string(path)
	if ferr == nil {
		metrics.RecordClientRequest(endpoint, metrics.OutcomeSuccess, elapsed)
		logging.Ctx(ctx).Debug().
			Str("endpoint", endpoint).
			Dur("duration", elapsed).
			Msg("Analytics data fetched")
		return
	}

	metrics.RecordClientRequest(endpoint, ferr.Kind.String(), elapsed)

	event := logging.Ctx(ctx).Warn().
		Str("endpoint", endpoint).
		Str("kind", ferr.Kind.String()).
		Dur("duration", elapsed)
	if o.before != nil {
		event = event.Bool("before", *o.before)
	}

	switch ferr.Kind {
	case KindHTTP:
		metrics.RecordUpstreamStatus(endpoint, strconv.Itoa(ferr.Status))
		event = event.Int("status", ferr.Status)
	case KindValidation:
		if ferr.Validation != nil {
			metrics.RecordValidationFailure(endpoint, ferr.Validation.Field)
			event = event.Str("field", ferr.Validation.Field).Str("reason", ferr.Validation.Reason)
		}
	}
	if ferr.Err != nil {
		event = event.Err(ferr.Err)
	}
	event.Msg("Analytics fetch failed")
}

// healthPath is the backend liveness route, served at the origin root.
const healthPath = "/health"

// Ping verifies the analytics backend is reachable and healthy.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.originURL(healthPath), http.NoBody)
	if err != nil {
		return newUnclassifiedError(healthPath, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return newNetworkError(healthPath, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(healthPath, resp.StatusCode)
	}
	return nil
}
