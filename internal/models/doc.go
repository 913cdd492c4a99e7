// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package models defines the data structures exchanged with the analytics
backend.

Key Components:

  - AnalyticsData: chart labels, datasets, KPIs, chart type and title
  - Dataset: a named chart series with pass-through styling hints
  - KPI: a headline indicator whose value is a number or a string
  - Scalar / KPIValue: raw-preserving JSON values

All values are decoded from response bodies that have already passed
structural validation in package analytics. Numbers keep their original
spelling, so encoding a decoded AnalyticsData reproduces the accepted
document field for field.

Example:

	var data models.AnalyticsData
	if err := json.Unmarshal(body, &data); err != nil {
	    return err
	}
	for _, kpi := range data.KPIs {
	    fmt.Printf("%s: %s\n", kpi.Label, kpi.Value)
	}
*/
package models
