// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"errors"
	"fmt"
)

// Kind classifies a failed fetch.
type Kind int

// Failure kinds, in classification order.
const (
	// KindUnclassified covers anything outside the other three kinds:
	// URL construction, body read, malformed JSON, typed decode.
	KindUnclassified Kind = iota
	// KindNetwork is a transport failure: refused connection, DNS, TLS,
	// reset, context cancellation, or an open circuit breaker.
	KindNetwork
	// KindHTTP is a response with a non-2xx status.
	KindHTTP
	// KindValidation is a 2xx body that failed structural validation.
	KindValidation
)

// String returns the lowercase kind name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindValidation:
		return "validation"
	default:
		return "unclassified"
	}
}

const (
	msgNetwork      = "Unable to connect to the analytics service"
	msgUnclassified = "An unexpected error occurred"
)

// Error is the typed failure returned by every fetch operation.
//
// Status is set only for KindHTTP. Endpoint is the logical path that was
// requested. Validation names the first failed rule for KindValidation.
// Err holds the underlying cause when there is one.
type Error struct {
	Kind       Kind
	Message    string
	Status     int
	Endpoint   Endpoint
	Validation *ValidationResult
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorShape is the flat error object handed to UI code and API clients.
//
//	{"message": "Failed to load /forecasting: HTTP 503", "status": 503, "endpoint": "/forecasting"}
type ErrorShape struct {
	Message  string `json:"message"`
	Status   *int   `json:"status,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// Shape maps the error to its flat boundary form. status is present only
// for HTTP failures.
func (e *Error) Shape() ErrorShape {
	shape := ErrorShape{
		Message:  e.Message,
		Endpoint: string(e.Endpoint),
	}
	if shape.Message == "" {
		shape.Message = msgUnclassified
	}
	if e.Kind == KindHTTP {
		status := e.Status
		shape.Status = &status
	}
	return shape
}

// AsError extracts an *Error from err. Any other non-nil error is wrapped
// as unclassified so callers always get the flat shape. A nil err yields nil.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return newUnclassifiedError("", err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

func newNetworkError(path Endpoint, cause error) *Error {
	return &Error{
		Kind:     KindNetwork,
		Message:  msgNetwork,
		Endpoint: path,
		Err:      cause,
	}
}

func newHTTPError(path Endpoint, status int) *Error {
	return &Error{
		Kind:     KindHTTP,
		Message:  fmt.Sprintf("Failed to load %s: HTTP %d", path, status),
		Status:   status,
		Endpoint: path,
	}
}

func newValidationError(path Endpoint, result ValidationResult) *Error {
	r := result
	return &Error{
		Kind:       KindValidation,
		Message:    fmt.Sprintf("Invalid data format received from %s", path),
		Endpoint:   path,
		Validation: &r,
	}
}

func newUnclassifiedError(path Endpoint, cause error) *Error {
	msg := msgUnclassified
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &Error{
		Kind:     KindUnclassified,
		Message:  msg,
		Endpoint: path,
		Err:      cause,
	}
}
