// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/insightboard/internal/analytics"
	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/models"
	"github.com/tomtom215/insightboard/internal/validation"
)

// ModuleInfo describes one dashboard module.
type ModuleInfo struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
}

// OverviewModule is one entry of the overview payload. Exactly one of Data
// and Error is set.
type OverviewModule struct {
	Module   string                `json:"module"`
	Endpoint string                `json:"endpoint"`
	Data     *models.AnalyticsData `json:"data,omitempty"`
	Error    *analytics.ErrorShape `json:"error,omitempty"`
}

// Overview is the payload of GET /api/v1/dashboard.
type Overview struct {
	Before    *bool            `json:"before,omitempty"`
	Modules   []OverviewModule `json:"modules"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// ModuleRequest holds the validated parameters of a module fetch.
type ModuleRequest struct {
	Module string `query:"module" validate:"required,analytics_module"`
	Before string `query:"before" validate:"omitempty,oneof=true false"`
}

// OverviewRequest holds the validated parameters of an overview fetch.
type OverviewRequest struct {
	Before string `query:"before" validate:"omitempty,oneof=true false"`
}

// LegacyRequest holds the validated legacy route.
type LegacyRequest struct {
	Path string `query:"path" validate:"required,legacy_route"`
}

// beforeOptions turns a validated before value into fetch options.
func beforeOptions(before string) ([]analytics.FetchOption, *bool) {
	switch before {
	case "true":
		b := true
		return []analytics.FetchOption{analytics.WithBefore(true)}, &b
	case "false":
		b := false
		return []analytics.FetchOption{analytics.WithBefore(false)}, &b
	default:
		return nil, nil
	}
}

// checkBeforeParam rejects "before=" given without a value, which the
// validator would otherwise treat as absent.
func checkBeforeParam(rw *ResponseWriter, q url.Values) bool {
	if q.Has("before") && q.Get("before") == "" {
		rw.ValidationError("before must be one of: true false", map[string]any{
			"field": "before",
			"tag":   "oneof",
			"value": "",
		})
		return false
	}
	return true
}

// writeValidationFailure answers a failed parameter validation. An unknown
// module or legacy route is a 404; anything else is a 400.
func writeValidationFailure(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	for _, fe := range verr.Errors() {
		if fe.Tag() == validation.TagAnalyticsModule || fe.Tag() == validation.TagLegacyRoute {
			rw.ErrorWithDetails(http.StatusNotFound, ErrCodeNotFound, fe.Error(), apiErr.Details)
			return
		}
	}
	rw.ValidationError(apiErr.Message, apiErr.Details)
}

// DashboardModules lists the dashboard modules in display order.
func (h *Handler) DashboardModules(w http.ResponseWriter, r *http.Request) {
	modules := make([]ModuleInfo, len(analytics.Endpoints))
	for i, e := range analytics.Endpoints {
		modules[i] = ModuleInfo{Name: e.Name(), Endpoint: string(e)}
	}
	WriteSuccess(w, r, modules)
}

// DashboardModule fetches one module: GET /api/v1/dashboard/{module}.
func (h *Handler) DashboardModule(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()
	if !checkBeforeParam(rw, q) {
		return
	}

	req := ModuleRequest{
		Module: chi.URLParam(r, "module"),
		Before: q.Get("before"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationFailure(rw, verr)
		return
	}

	endpoint, err := analytics.Lookup(req.Module)
	if err != nil {
		rw.NotFound(err.Error())
		return
	}

	opts, _ := beforeOptions(req.Before)
	data, err := h.service.Fetch(r.Context(), endpoint, opts...)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Str("module", req.Module).Msg("Module fetch failed")
		rw.UpstreamError(err)
		return
	}
	rw.Success(data)
}

// DashboardOverview fetches every module concurrently. It answers 200 even
// when some modules failed; each entry carries its own data or error.
func (h *Handler) DashboardOverview(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()
	if !checkBeforeParam(rw, q) {
		return
	}

	req := OverviewRequest{Before: q.Get("before")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationFailure(rw, verr)
		return
	}

	opts, before := beforeOptions(req.Before)
	results := analytics.FetchAll(r.Context(), h.service, opts...)

	overview := Overview{
		Before:  before,
		Modules: make([]OverviewModule, len(results)),
	}
	for i, res := range results {
		entry := OverviewModule{
			Module:   res.Endpoint.Name(),
			Endpoint: string(res.Endpoint),
		}
		if res.Err != nil {
			shape := analytics.AsError(res.Err).Shape()
			entry.Error = &shape
			overview.Failed++
		} else {
			entry.Data = res.Data
			overview.Succeeded++
		}
		overview.Modules[i] = entry
	}

	if overview.Failed > 0 {
		logging.Ctx(r.Context()).Info().
			Int("failed", overview.Failed).
			Int("succeeded", overview.Succeeded).
			Msg("Dashboard overview partially failed")
	}
	rw.Success(overview)
}

// LegacyPassThrough proxies GET /api/v1/legacy/<family>/<analysis> to the
// backend's /api/<family>/<analysis> and returns the body unvalidated.
func (h *Handler) LegacyPassThrough(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := LegacyRequest{Path: "/api/" + chi.URLParam(r, "*")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationFailure(rw, verr)
		return
	}

	body, err := h.service.FetchLegacy(r.Context(), analytics.LegacyEndpoint(req.Path))
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("path", req.Path).Msg("Legacy pass-through failed")
		rw.ErrorWithDetails(http.StatusBadGateway, ErrCodeExternalServiceFail, "Failed to load "+req.Path, map[string]any{
			"endpoint": req.Path,
		})
		return
	}
	rw.Success(body)
}
