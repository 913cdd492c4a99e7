// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/insightboard/internal/analytics"
)

func modulesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List dashboard modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format == FormatTable {
				return writeModulesTable(cmd.OutOrStdout(), analytics.Endpoints)
			}
			type module struct {
				Name string `json:"name"`
				Path string `json:"path"`
			}
			list := make([]module, 0, len(analytics.Endpoints))
			for _, ep := range analytics.Endpoints {
				list = append(list, module{Name: ep.Name(), Path: string(ep)})
			}
			return writeJSON(cmd.OutOrStdout(), list)
		},
	}
}

// beforeFlag registers --before and returns a reader for it. The option is
// omitted entirely unless the flag was given.
func beforeFlag(cmd *cobra.Command) func() []analytics.FetchOption {
	var before bool
	cmd.Flags().BoolVar(&before, "before", false, "Request the pre-analysis view (before=true|false); omitted when unset")
	return func() []analytics.FetchOption {
		if !cmd.Flags().Changed("before") {
			return nil
		}
		return []analytics.FetchOption{analytics.WithBefore(before)}
	}
}

func fetchCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <module>",
		Short: "Fetch and validate one dashboard module",
		Long: `Fetch one dashboard module by name, for example:

  dashctl fetch fraud-detection --before=false

Run 'dashctl modules' for the list of names.`,
		Args: cobra.ExactArgs(1),
	}
	fetchOpts := beforeFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		endpoint, err := analytics.Lookup(args[0])
		if err != nil {
			return usageError(fmt.Errorf("%w: %s", err, args[0]))
		}
		client, err := newClient(opts)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd, opts)
		defer cancel()

		data, err := client.Fetch(ctx, endpoint, fetchOpts()...)
		if err != nil {
			return newCommandError(err)
		}
		if opts.format == FormatTable {
			return writeDataTable(cmd.OutOrStdout(), data)
		}
		return writeJSON(cmd.OutOrStdout(), data)
	}
	return cmd
}

func overviewCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Fetch every dashboard module concurrently",
		Long: `Fetch every dashboard module concurrently and report each result.
Modules fail independently. The exit code is that of the first failed module
in display order, or 0 when all succeed.`,
		Args: cobra.NoArgs,
	}
	fetchOpts := beforeFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		client, err := newClient(opts)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd, opts)
		defer cancel()

		results := client.FetchAll(ctx, fetchOpts()...)
		if opts.format == FormatTable {
			err = writeOverviewTable(cmd.OutOrStdout(), results)
		} else {
			err = writeJSON(cmd.OutOrStdout(), overviewEntries(results))
		}
		if err != nil {
			return err
		}

		for _, res := range results {
			if res.Err != nil {
				ce := newCommandError(res.Err)
				ce.reported = true
				return ce
			}
		}
		return nil
	}
	return cmd
}

func legacyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "legacy <path>",
		Short: "Pass-through GET of a legacy analysis route",
		Long: `Fetch a legacy per-analysis route such as /api/fraud/benford. The body
is printed as returned; it is only checked to be valid JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/" + strings.TrimPrefix(args[0], "/")
			endpoint, err := analytics.LookupLegacy(path)
			if err != nil {
				return usageError(fmt.Errorf("%w: %s", err, path))
			}
			client, err := newClient(opts)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, opts)
			defer cancel()

			body, err := client.FetchLegacy(ctx, endpoint)
			if err != nil {
				ce := newCommandError(err)
				ce.Shape.Endpoint = string(endpoint)
				return ce
			}
			return writeRawJSON(cmd.OutOrStdout(), body)
		},
	}
}

func pingCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the analytics backend is healthy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(opts)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, opts)
			defer cancel()

			if err := client.Ping(ctx); err != nil {
				return newCommandError(err)
			}
			if opts.format == FormatTable {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is healthy\n", client.BaseURL())
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"status": "ok", "base_url": client.BaseURL()})
		},
	}
}
