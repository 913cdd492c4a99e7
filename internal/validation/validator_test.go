// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

type moduleRequest struct {
	Module string `query:"module" validate:"required,analytics_module"`
	Before string `query:"before" validate:"omitempty,oneof=true false"`
}

type legacyRequest struct {
	Path string `query:"path" validate:"required,legacy_route"`
}

func TestValidateStruct_ModuleRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     moduleRequest
		wantField string
		wantTag   string
	}{
		{name: "valid without before", input: moduleRequest{Module: "fraud-detection"}},
		{name: "valid with slash", input: moduleRequest{Module: "/forecasting", Before: "true"}},
		{name: "before false", input: moduleRequest{Module: "benchmarking", Before: "false"}},
		{name: "missing module", input: moduleRequest{}, wantField: "module", wantTag: "required"},
		{name: "unknown module", input: moduleRequest{Module: "revenue"}, wantField: "module", wantTag: TagAnalyticsModule},
		{name: "before not boolean", input: moduleRequest{Module: "forecasting", Before: "yes"}, wantField: "before", wantTag: "oneof"},
		{name: "before wrong case", input: moduleRequest{Module: "forecasting", Before: "True"}, wantField: "before", wantTag: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("field: expected %q, got %q", tt.wantField, errs[0].Field())
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("tag: expected %q, got %q", tt.wantTag, errs[0].Tag())
			}
		})
	}
}

func TestValidateStruct_LegacyRoute(t *testing.T) {
	t.Parallel()

	if verr := ValidateStruct(&legacyRequest{Path: "/api/fraud/benford"}); verr != nil {
		t.Errorf("known route rejected: %v", verr)
	}

	verr := ValidateStruct(&legacyRequest{Path: "/api/fraud/nope"})
	if verr == nil {
		t.Fatal("unknown route accepted")
	}
	if got := verr.Error(); got != "path must be a known legacy route" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single error", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&moduleRequest{Module: "forecasting", Before: "maybe"}).ToAPIError()
		if apiErr.Code != ErrorCode {
			t.Errorf("code: expected %s, got %s", ErrorCode, apiErr.Code)
		}
		if apiErr.Message != "before must be one of: true false" {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "before" || apiErr.Details["value"] != "maybe" {
			t.Errorf("unexpected details %v", apiErr.Details)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&moduleRequest{Module: "revenue", Before: "maybe"}).ToAPIError()
		if !strings.Contains(apiErr.Message, "module") || !strings.Contains(apiErr.Message, "before") {
			t.Errorf("message should name both fields, got %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]any)
		if !ok || len(fields) != 2 {
			t.Errorf("expected 2 field details, got %v", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
	})
}

func TestValidateStruct_NonStruct(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("expected error for non-struct input")
	}
	if verr.Errors()[0].Field() != "unknown" {
		t.Errorf("expected unknown field, got %q", verr.Errors()[0].Field())
	}
}
