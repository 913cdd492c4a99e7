// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package models

import (
	"github.com/goccy/go-json"
)

// ChartType is the rendering hint for an analytics module. Matching is
// case-sensitive: "Line" is not a chart type.
type ChartType string

// Supported chart types.
const (
	ChartLine    ChartType = "line"
	ChartBar     ChartType = "bar"
	ChartScatter ChartType = "scatter"
	ChartPie     ChartType = "pie"
)

// ChartTypes lists every supported chart type.
var ChartTypes = []ChartType{ChartLine, ChartBar, ChartScatter, ChartPie}

// Valid reports whether c is one of the supported chart types.
func (c ChartType) Valid() bool {
	switch c {
	case ChartLine, ChartBar, ChartScatter, ChartPie:
		return true
	}
	return false
}

// KPIFormat is a display hint for a KPI value. It is not checked against
// the value's type.
type KPIFormat string

// Known KPI formats.
const (
	FormatNumber     KPIFormat = "number"
	FormatPercentage KPIFormat = "percentage"
	FormatCurrency   KPIFormat = "currency"
)

// AnalyticsData is the payload of every dashboard endpoint: chart series,
// their labels, headline KPIs, and rendering hints.
//
// Values are only constructed by decoding a body that passed validation, so
// a returned AnalyticsData always satisfies the structural rules. Treat it
// as read-only.
//
// Example:
//
//	{
//	  "title": "Executive Summary",
//	  "chartType": "bar",
//	  "labels": ["Q1", "Q2"],
//	  "datasets": [{"label": "Revenue", "data": [120, 140]}],
//	  "kpis": [{"label": "Fraud Rate", "value": 2.4, "format": "percentage"}]
//	}
type AnalyticsData struct {
	Labels    []Scalar  `json:"labels"`
	Datasets  []Dataset `json:"datasets"`
	KPIs      []KPI     `json:"kpis"`
	ChartType ChartType `json:"chartType"`
	Title     string    `json:"title"`

	// Extra holds members the backend sent beyond the fields above. They
	// are written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler. Members are matched by exact
// key; anything unrecognized lands in Extra.
func (a *AnalyticsData) UnmarshalJSON(b []byte) error {
	obj, err := decodeObject(b)
	if err != nil {
		return err
	}
	var out AnalyticsData
	for _, f := range []struct {
		key string
		v   any
	}{
		{"labels", &out.Labels},
		{"datasets", &out.Datasets},
		{"kpis", &out.KPIs},
		{"chartType", &out.ChartType},
		{"title", &out.Title},
	} {
		if err := obj.decode(f.key, f.v); err != nil {
			return err
		}
	}
	out.Extra = obj.rest()
	*a = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a AnalyticsData) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("labels", a.Labels)
	w.field("datasets", a.Datasets)
	w.field("kpis", a.KPIs)
	w.field("chartType", a.ChartType)
	w.field("title", a.Title)
	w.extra(a.Extra, "labels", "datasets", "kpis", "chartType", "title")
	return w.bytes()
}

// Dataset is one named chart series. Styling fields are carried through
// verbatim and never validated; backgroundColor may be a single color or a
// per-point list. Hints without a field of their own, such as borderDash,
// are kept in Extra.
type Dataset struct {
	Label string   `json:"label"`
	Data  []Scalar `json:"data"`

	BorderColor          json.RawMessage `json:"borderColor,omitempty"`
	BackgroundColor      json.RawMessage `json:"backgroundColor,omitempty"`
	Fill                 json.RawMessage `json:"fill,omitempty"`
	BorderWidth          json.RawMessage `json:"borderWidth,omitempty"`
	Tension              json.RawMessage `json:"tension,omitempty"`
	PointRadius          json.RawMessage `json:"pointRadius,omitempty"`
	PointBackgroundColor json.RawMessage `json:"pointBackgroundColor,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// datasetHints lists the styling members with a field of their own.
var datasetHints = []string{
	"borderColor", "backgroundColor", "fill", "borderWidth",
	"tension", "pointRadius", "pointBackgroundColor",
}

func (d *Dataset) hints() []*json.RawMessage {
	return []*json.RawMessage{
		&d.BorderColor, &d.BackgroundColor, &d.Fill, &d.BorderWidth,
		&d.Tension, &d.PointRadius, &d.PointBackgroundColor,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	obj, err := decodeObject(b)
	if err != nil {
		return err
	}
	var out Dataset
	if err := obj.decode("label", &out.Label); err != nil {
		return err
	}
	if err := obj.decode("data", &out.Data); err != nil {
		return err
	}
	for i, hint := range out.hints() {
		if raw := obj.take(datasetHints[i]); raw != nil {
			*hint = append(json.RawMessage(nil), raw...)
		}
	}
	out.Extra = obj.rest()
	*d = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Dataset) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("label", d.Label)
	w.field("data", d.Data)
	for i, hint := range d.hints() {
		w.raw(datasetHints[i], *hint)
	}
	w.extra(d.Extra, append([]string{"label", "data"}, datasetHints...)...)
	return w.bytes()
}

// KPI is a headline indicator. A format that is not a non-empty string is
// kept verbatim in Extra rather than interpreted.
type KPI struct {
	Label  string    `json:"label"`
	Value  KPIValue  `json:"value"`
	Format KPIFormat `json:"format,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *KPI) UnmarshalJSON(b []byte) error {
	obj, err := decodeObject(b)
	if err != nil {
		return err
	}
	var out KPI
	if err := obj.decode("label", &out.Label); err != nil {
		return err
	}
	if err := obj.decode("value", &out.Value); err != nil {
		return err
	}
	if raw, ok := obj["format"]; ok && isNonEmptyString(raw) {
		if err := obj.decode("format", &out.Format); err != nil {
			return err
		}
	}
	out.Extra = obj.rest()
	*k = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k KPI) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("label", k.Label)
	w.field("value", k.Value)
	written := []string{"label", "value"}
	if k.Format != "" {
		w.field("format", k.Format)
		written = append(written, "format")
	}
	w.extra(k.Extra, written...)
	return w.bytes()
}

// Series returns the dataset with the given label.
func (a *AnalyticsData) Series(label string) (Dataset, bool) {
	for _, ds := range a.Datasets {
		if ds.Label == label {
			return ds, true
		}
	}
	return Dataset{}, false
}

// KPI returns the KPI with the given label.
func (a *AnalyticsData) KPI(label string) (KPI, bool) {
	for _, k := range a.KPIs {
		if k.Label == label {
			return k, true
		}
	}
	return KPI{}, false
}
