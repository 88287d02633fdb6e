// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doi-collector CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pdiddy/doi-collector/internal/output"
	"github.com/pdiddy/doi-collector/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile       string
	quiet         bool
	verbose       bool
	colorMode     string
	loadedSecrets secrets.Secrets
	printer       *output.Printer
	logger        *slog.Logger
)

// rootCmd collects DOIs when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "doi-collector",
	Short: "Collect validated DOIs of empirical software-engineering articles from Scopus",
	Long: `doi-collector pages through a Scopus search, keeps articles published in an
allow-listed venue between the minimum year and the current year whose title,
abstract, or author keywords mention a research method, and writes their
deduplicated DOIs to a text file, one per line.

Settings come from flags, DOI_COLLECTOR_* environment variables (a .env file
is read first), doi-collector.yaml, and .secrets/scopus-api-key.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, err := output.ParseColorMode(colorMode)
		if err != nil {
			return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitUsageError, Err: err}
		}
		printer = output.NewPrinterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Options{
			ColorMode: mode,
			Quiet:     quiet,
		})

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		s, err := secrets.Load(secrets.DefaultDir, printer.Err())
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug("loaded secrets", "keys", s.Keys())
		}
		return nil
	},
	RunE: runCollect,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./doi-collector.yaml or ~/.config/doi-collector/doi-collector.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-page detail to stderr")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, or never")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		p := printer
		if p == nil {
			p = output.NewPrinter(output.Options{})
		}
		p.FormatError(err)
		os.Exit(output.ExitCode(err))
	}
}
