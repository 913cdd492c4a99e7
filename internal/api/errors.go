// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"net/http"

	"github.com/tomtom215/insightboard/internal/analytics"
)

// upstreamStatus maps an analytics failure to the BFF status and code.
//
//	network       503
//	http          502
//	validation    502
//	unclassified  500
func upstreamStatus(ae *analytics.Error) (int, string) {
	switch ae.Kind {
	case analytics.KindNetwork:
		return http.StatusServiceUnavailable, ErrCodeUpstreamNetwork
	case analytics.KindHTTP:
		return http.StatusBadGateway, ErrCodeUpstreamHTTP
	case analytics.KindValidation:
		return http.StatusBadGateway, ErrCodeUpstreamInvalidData
	default:
		return http.StatusInternalServerError, ErrCodeUpstreamUnclassified
	}
}

// upstreamAPIError copies the flat error shape into an APIError.
func upstreamAPIError(ae *analytics.Error, code string) *APIError {
	shape := ae.Shape()
	apiErr := &APIError{
		Code:     code,
		Message:  shape.Message,
		Status:   shape.Status,
		Endpoint: shape.Endpoint,
	}
	if ae.Kind == analytics.KindValidation && ae.Validation != nil {
		apiErr.Details = ae.Validation
	}
	return apiErr
}
