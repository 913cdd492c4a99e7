// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package cli implements dashctl, the operator CLI for the analytics backend.
//
// Commands:
//
//	dashctl modules                         list dashboard modules
//	dashctl fetch <module> [--before=BOOL]  fetch and validate one module
//	dashctl overview [--before=BOOL]        fetch every module concurrently
//	dashctl legacy <path>                   pass-through GET of a legacy route
//	dashctl ping                            check the backend /health route
//
// Output is JSON by default or a table with --format table. A failed fetch
// prints the flat error object ({"message", "status", "endpoint"}) and exits
// with a code naming the failure kind:
//
//	0 success, 1 unclassified, 2 usage, 3 network, 4 upstream HTTP, 5 validation
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/insightboard/internal/analytics"
	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/logging"
)

// options holds the global flags.
type options struct {
	baseURL  string
	format   string
	timeout  time.Duration
	logLevel string
}

// NewRootCommand builds the dashctl command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Fetch and inspect analytics dashboard modules",
		Long: `dashctl talks to the analytics backend the dashboard uses. It fetches
modules through the same validating client as the dashboard server and
reports failures with the same messages.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !validFormat(opts.format) {
				return usageError(fmt.Errorf("invalid --format %q: must be json or table", opts.format))
			}
			logging.Init(logging.Config{
				Level:     opts.logLevel,
				Format:    "console",
				Timestamp: true,
				Output:    cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", "", "Analytics backend base URL (overrides ANALYTICS_API_URL)")
	flags.StringVar(&opts.format, "format", FormatJSON, "Output format: json, table")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Deadline for the whole command")
	flags.StringVar(&opts.logLevel, "log-level", "error", "Log level written to stderr")

	cmd.AddCommand(modulesCommand(opts))
	cmd.AddCommand(fetchCommand(opts))
	cmd.AddCommand(overviewCommand(opts))
	cmd.AddCommand(legacyCommand(opts))
	cmd.AddCommand(pingCommand(opts))

	return cmd
}

// Execute runs dashctl with args and returns the process exit code. Failures
// that carry an error object are written to stdout in JSON format; usage
// errors go to stderr.
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(version)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	code := ExitCode(err)
	if err == nil {
		return code
	}

	var ce *CommandError
	if errors.As(err, &ce) {
		if ce.reported {
			return code
		}
		format, _ := cmd.PersistentFlags().GetString("format")
		if code != ExitUsage && format == FormatJSON {
			_ = writeJSON(stdout, ce.Shape)
			return code
		}
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if code == ExitUsage {
		fmt.Fprintln(stderr, "Run 'dashctl --help' for usage.")
	}
	return code
}

// newClient resolves the backend configuration and builds a client.
func newClient(opts *options) (*analytics.Client, error) {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return nil, usageError(err)
	}
	backend := cfg.Backend
	if opts.baseURL != "" {
		backend.BaseURL = opts.baseURL
	}
	client, err := analytics.NewClient(&backend)
	if err != nil {
		return nil, usageError(err)
	}
	return client, nil
}

// commandContext bounds a command by --timeout.
func commandContext(cmd *cobra.Command, opts *options) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, opts.timeout)
}
