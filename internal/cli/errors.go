// Insightboard - Analytics Dashboard API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package cli

import (
	"errors"

	"github.com/tomtom215/insightboard/internal/analytics"
)

// Process exit codes. Scripts can branch on the failure kind without
// parsing output.
const (
	ExitOK           = 0
	ExitUnclassified = 1
	ExitUsage        = 2
	ExitNetwork      = 3
	ExitHTTP         = 4
	ExitValidation   = 5
)

// CommandError is a failed command with its exit code. Shape is set when
// the failure came from the analytics client. reported is set when the
// command already wrote its output and only the exit code remains.
type CommandError struct {
	Shape    analytics.ErrorShape
	ExitCode int
	err      error
	reported bool
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Shape.Message
}

// Unwrap returns the underlying failure.
func (e *CommandError) Unwrap() error {
	return e.err
}

// exitCodeFor maps an analytics failure kind to its exit code.
func exitCodeFor(kind analytics.Kind) int {
	switch kind {
	case analytics.KindNetwork:
		return ExitNetwork
	case analytics.KindHTTP:
		return ExitHTTP
	case analytics.KindValidation:
		return ExitValidation
	default:
		return ExitUnclassified
	}
}

// newCommandError classifies err. A nil err yields nil.
func newCommandError(err error) *CommandError {
	ae := analytics.AsError(err)
	if ae == nil {
		return nil
	}
	return &CommandError{
		Shape:    ae.Shape(),
		ExitCode: exitCodeFor(ae.Kind),
		err:      err,
	}
}

// usageError reports bad arguments with ExitUsage.
func usageError(err error) *CommandError {
	return &CommandError{
		Shape:    analytics.ErrorShape{Message: err.Error()},
		ExitCode: ExitUsage,
		err:      err,
	}
}

// ExitCode returns the process exit code for an Execute error. Errors not
// produced by a command (unknown command, bad flag, wrong argument count) are
// usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.ExitCode
	}
	return ExitUsage
}
