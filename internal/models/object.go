// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package models

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// rawObject is a JSON object split into members. Keys match exactly, so
// "ChartType" never stands in for "chartType".
type rawObject map[string]json.RawMessage

func decodeObject(b []byte) (rawObject, error) {
	var obj rawObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// take removes key and returns its raw value, or nil when absent.
func (o rawObject) take(key string) json.RawMessage {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	delete(o, key)
	return raw
}

// decode removes key and decodes it into v. An absent key leaves v as is.
func (o rawObject) decode(key string, v any) error {
	raw := o.take(key)
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// rest returns the members not taken, or nil when there are none.
func (o rawObject) rest() map[string]json.RawMessage {
	if len(o) == 0 {
		return nil
	}
	return map[string]json.RawMessage(o)
}

// isNonEmptyString reports whether raw is a JSON string other than "".
func isNonEmptyString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 2 && raw[0] == '"'
}

// objectWriter encodes a JSON object member by member.
type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (w *objectWriter) key(k string) {
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.n++
	kb, _ := json.Marshal(k)
	w.buf.Write(kb)
	w.buf.WriteByte(':')
}

// field writes k with v encoded.
func (w *objectWriter) field(k string, v any) {
	if w.err != nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("%s: %w", k, err)
		return
	}
	w.key(k)
	w.buf.Write(b)
}

// raw writes k with raw verbatim, skipping empty values.
func (w *objectWriter) raw(k string, raw json.RawMessage) {
	if w.err != nil || len(raw) == 0 {
		return
	}
	w.key(k)
	w.buf.Write(raw)
}

// extra writes pass-through members in key order. Members already written
// are not repeated.
func (w *objectWriter) extra(members map[string]json.RawMessage, written ...string) {
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		skip := false
		for _, done := range written {
			if k == done {
				skip = true
				break
			}
		}
		if !skip {
			w.raw(k, members[k])
		}
	}
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.n == 0 {
		return []byte("{}"), nil
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}
