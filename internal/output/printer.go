// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output formats progress, results, and errors for the terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorMode selects when colored output is used.
type ColorMode int

const (
	// ColorAuto enables colors unless NO_COLOR is set or TERM is dumb.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses "auto", "always", or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors reports whether mode enables colors in the current environment.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return os.Getenv("TERM") != "dumb"
	}
}

// Options configures a Printer.
type Options struct {
	ColorMode ColorMode
	Quiet     bool
}

// Printer writes progress to out and diagnostics to err.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
	quiet     bool
}

// NewPrinter returns a Printer writing to stdout and stderr.
func NewPrinter(opts Options) *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr, opts)
}

// NewPrinterWithWriters returns a Printer writing to the given writers.
func NewPrinterWithWriters(out, err io.Writer, opts Options) *Printer {
	return &Printer{
		out:       out,
		err:       err,
		useColors: ResolveColors(opts.ColorMode),
		quiet:     opts.Quiet,
	}
}

// Out returns the progress writer, or io.Discard in quiet mode.
func (p *Printer) Out() io.Writer {
	if p.quiet {
		return io.Discard
	}
	return p.out
}

// Err returns the diagnostics writer. Quiet mode does not silence it.
func (p *Printer) Err() io.Writer {
	return p.err
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

// Warning prints a warning to the diagnostics writer.
func (p *Printer) Warning(format string, args ...any) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
}

// Error prints an error message. It is never silenced.
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// Header prints a section header.
func (p *Printer) Header(title string) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", title)
}
