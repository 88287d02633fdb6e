// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitGeneral      = 1
	ExitUsageError   = 2
	ExitAccessDenied = 3
	ExitConfigError  = 4
)

// CLIError is an error with user-facing context and a process exit code.
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
	Err        error
}

func (e *CLIError) Error() string {
	return e.Summary
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err, ExitGeneral for any
// other non-nil error, and ExitSuccess for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *CLIError
	if errors.As(err, &ce) && ce.ExitCode != 0 {
		return ce.ExitCode
	}
	return ExitGeneral
}

// FormatError prints err to the diagnostics writer. A *CLIError is shown
// with its detail and suggestion.
func (p *Printer) FormatError(err error) {
	var e *CLIError
	if !errors.As(err, &e) {
		p.Error("%v", err)
		return
	}
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: %s\n", e.Summary)
	} else {
		fmt.Fprintf(p.err, "[ERROR] %s\n", e.Summary)
	}
	if e.Detail != "" {
		fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
	}
	if e.Suggestion != "" {
		if p.useColors {
			color.New(color.FgCyan).Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		} else {
			fmt.Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	}
}
