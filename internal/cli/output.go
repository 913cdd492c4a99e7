// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/analytics"
	"github.com/tomtom215/insightboard/internal/models"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

func validFormat(format string) bool {
	return format == FormatJSON || format == FormatTable
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

// writeRawJSON re-indents a pass-through body without decoding it.
func writeRawJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// writeModulesTable lists module names and paths.
func writeModulesTable(w io.Writer, endpoints []analytics.Endpoint) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "MODULE\tPATH")
	for _, ep := range endpoints {
		fmt.Fprintf(tw, "%s\t%s\n", ep.Name(), ep)
	}
	return tw.Flush()
}

// writeDataTable renders one module: a header line, one row per label with
// a column per series, then the KPIs.
func writeDataTable(w io.Writer, data *models.AnalyticsData) error {
	fmt.Fprintf(w, "%s (%s)\n\n", data.Title, data.ChartType)

	tw := newTable(w)
	header := []string{"LABEL"}
	for _, ds := range data.Datasets {
		header = append(header, ds.Label)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i, label := range data.Labels {
		row := []string{label.String()}
		for _, ds := range data.Datasets {
			cell := ""
			if i < len(ds.Data) {
				cell = ds.Data[i].String()
			}
			row = append(row, cell)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(data.KPIs) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "KPI\tVALUE\tFORMAT")
	for _, k := range data.KPIs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Label, k.Value.String(), k.Format)
	}
	return tw.Flush()
}

// overviewEntry is one module in overview JSON output. Exactly one of Data
// and Error is set.
type overviewEntry struct {
	Module   string                `json:"module"`
	Endpoint string                `json:"endpoint"`
	Data     *models.AnalyticsData `json:"data,omitempty"`
	Error    *analytics.ErrorShape `json:"error,omitempty"`
}

func overviewEntries(results []analytics.ModuleResult) []overviewEntry {
	entries := make([]overviewEntry, 0, len(results))
	for _, res := range results {
		entry := overviewEntry{
			Module:   res.Endpoint.Name(),
			Endpoint: string(res.Endpoint),
			Data:     res.Data,
		}
		if res.Err != nil {
			shape := analytics.AsError(res.Err).Shape()
			entry.Error = &shape
		}
		entries = append(entries, entry)
	}
	return entries
}

// writeOverviewTable prints one status line per module.
func writeOverviewTable(w io.Writer, results []analytics.ModuleResult) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "MODULE\tSTATUS\tDETAIL")
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(tw, "%s\tfailed\t%s\n", res.Endpoint.Name(), analytics.AsError(res.Err).Shape().Message)
			continue
		}
		fmt.Fprintf(tw, "%s\tok\t%s (%d series, %d KPIs)\n",
			res.Endpoint.Name(), res.Data.Title, len(res.Data.Datasets), len(res.Data.KPIs))
	}
	return tw.Flush()
}
