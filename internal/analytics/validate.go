// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package analytics

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/models"
)

// ValidationResult is the outcome of structural validation. When OK is
// false, Field is the path of the first offending value and Reason says
// what was expected.
type ValidationResult struct {
	OK     bool   `json:"ok"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// String renders a failed result as "field: reason".
func (r ValidationResult) String() string {
	if r.OK {
		return "ok"
	}
	return r.Field + ": " + r.Reason
}

var validResult = ValidationResult{OK: true}

func invalid(field, reason string) ValidationResult {
	return ValidationResult{Field: field, Reason: reason}
}

// IsValidAnalyticsData reports whether x, a generically decoded JSON value,
// has the shape of models.AnalyticsData.
func IsValidAnalyticsData(x any) bool {
	return Validate(x).OK
}

// Validate checks x against the AnalyticsData shape and reports the first
// rule it breaks. Checks run in a fixed order: top-level object, labels,
// datasets, kpis, title, chartType, then every dataset, then every KPI.
//
// Label and data-point element types are deliberately left unchecked.
// Validate never panics and never modifies x.
func Validate(x any) ValidationResult {
	obj, ok := x.(map[string]any)
	if !ok {
		return invalid("$", "expected a JSON object, got "+typeName(x))
	}

	if _, ok := obj["labels"].([]any); !ok {
		return invalid("labels", "expected an array, got "+typeName(obj["labels"]))
	}

	datasets, ok := obj["datasets"].([]any)
	if !ok {
		return invalid("datasets", "expected an array, got "+typeName(obj["datasets"]))
	}

	kpis, ok := obj["kpis"].([]any)
	if !ok {
		return invalid("kpis", "expected an array, got "+typeName(obj["kpis"]))
	}

	if _, ok := obj["title"].(string); !ok {
		return invalid("title", "expected a string, got "+typeName(obj["title"]))
	}

	chartType, ok := obj["chartType"].(string)
	if !ok {
		return invalid("chartType", "expected a string, got "+typeName(obj["chartType"]))
	}
	if !models.ChartType(chartType).Valid() {
		return invalid("chartType", fmt.Sprintf("unsupported chart type %q, want one of line, bar, scatter, pie", chartType))
	}

	for i, raw := range datasets {
		if r := validateDataset(i, raw); !r.OK {
			return r
		}
	}

	for i, raw := range kpis {
		if r := validateKPI(i, raw); !r.OK {
			return r
		}
	}

	return validResult
}

func validateDataset(i int, raw any) ValidationResult {
	field := fmt.Sprintf("datasets[%d]", i)
	ds, ok := raw.(map[string]any)
	if !ok {
		return invalid(field, "expected an object, got "+typeName(raw))
	}
	if _, ok := ds["label"].(string); !ok {
		return invalid(field+".label", "expected a string, got "+typeName(ds["label"]))
	}
	if _, ok := ds["data"].([]any); !ok {
		return invalid(field+".data", "expected an array, got "+typeName(ds["data"]))
	}
	return validResult
}

func validateKPI(i int, raw any) ValidationResult {
	field := fmt.Sprintf("kpis[%d]", i)
	kpi, ok := raw.(map[string]any)
	if !ok {
		return invalid(field, "expected an object, got "+typeName(raw))
	}
	if _, ok := kpi["label"].(string); !ok {
		return invalid(field+".label", "expected a string, got "+typeName(kpi["label"]))
	}
	v := kpi["value"]
	if _, isString := v.(string); !isString && !isNumber(v) {
		return invalid(field+".value", "expected a number or a string, got "+typeName(v))
	}
	return validResult
}

func isNumber(v any) bool {
	switch v.(type) {
	case json.Number, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// typeName names a decoded JSON value's type for failure reasons.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		if isNumber(v) {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}
