// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

var nullLiteral = []byte("null")

// Scalar is a JSON value kept byte-for-byte as the backend sent it.
//
// Chart labels and dataset points are not type-checked, so a label may be a
// category string or a numeric bin edge. Scalar preserves the exact spelling
// so re-encoding a response yields the same document.
type Scalar struct {
	raw []byte
}

// StringScalar returns a Scalar holding a JSON string.
func StringScalar(s string) Scalar {
	b, _ := json.Marshal(s)
	return Scalar{raw: b}
}

// NumberScalar returns a Scalar holding a JSON number in shortest form.
func NumberScalar(f float64) Scalar {
	return Scalar{raw: []byte(strconv.FormatFloat(f, 'f', -1, 64))}
}

// Raw returns a copy of the underlying JSON text.
func (s Scalar) Raw() json.RawMessage {
	if len(s.raw) == 0 {
		return json.RawMessage(nullLiteral)
	}
	return append(json.RawMessage(nil), s.raw...)
}

// IsNull reports whether the scalar is JSON null or unset.
func (s Scalar) IsNull() bool {
	return len(s.raw) == 0 || bytes.Equal(s.raw, nullLiteral)
}

// IsString reports whether the scalar is a JSON string.
func (s Scalar) IsString() bool {
	return len(s.raw) > 0 && s.raw[0] == '"'
}

// IsNumber reports whether the scalar is a JSON number.
func (s Scalar) IsNumber() bool {
	if len(s.raw) == 0 {
		return false
	}
	c := s.raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// Float64 returns the numeric value. ok is false for non-numbers.
func (s Scalar) Float64() (f float64, ok bool) {
	if !s.IsNumber() {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(s.raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String renders the scalar for display. Strings are unquoted; any other
// value is returned as its JSON text.
func (s Scalar) String() string {
	if s.IsString() {
		var out string
		if err := json.Unmarshal(s.raw, &out); err == nil {
			return out
		}
	}
	if len(s.raw) == 0 {
		return "null"
	}
	return string(s.raw)
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return nullLiteral, nil
	}
	return s.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	s.raw = append([]byte(nil), bytes.TrimSpace(b)...)
	return nil
}

// KPIValue is a KPI value: a JSON number or a JSON string, nothing else.
type KPIValue struct {
	raw      []byte
	isString bool
}

// NumberValue returns a numeric KPI value.
func NumberValue(f float64) KPIValue {
	return KPIValue{raw: []byte(strconv.FormatFloat(f, 'f', -1, 64))}
}

// StringValue returns a textual KPI value such as "$1,234" or "Low".
func StringValue(s string) KPIValue {
	b, _ := json.Marshal(s)
	return KPIValue{raw: b, isString: true}
}

// IsString reports whether the value was sent as a string.
func (v KPIValue) IsString() bool { return v.isString }

// IsNumber reports whether the value was sent as a number.
func (v KPIValue) IsNumber() bool { return len(v.raw) > 0 && !v.isString }

// Float64 returns the numeric value. ok is false for string values.
func (v KPIValue) Float64() (f float64, ok bool) {
	if !v.IsNumber() {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v.raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String renders the value for display. Numbers keep their original spelling.
func (v KPIValue) String() string {
	if v.isString {
		var out string
		if err := json.Unmarshal(v.raw, &out); err == nil {
			return out
		}
	}
	return string(v.raw)
}

// MarshalJSON implements json.Marshaler.
func (v KPIValue) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return nil, fmt.Errorf("kpi value is unset")
	}
	return v.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler. Anything other than a number or
// a string is rejected.
func (v *KPIValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("kpi value is empty")
	}
	switch c := b[0]; {
	case c == '"':
		v.raw = append([]byte(nil), b...)
		v.isString = true
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		v.raw = append([]byte(nil), b...)
		v.isString = false
		return nil
	default:
		return fmt.Errorf("kpi value must be a number or a string, got %s", b)
	}
}
