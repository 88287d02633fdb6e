// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doi-collector/internal/config"
	"github.com/pdiddy/doi-collector/internal/filter"
	"github.com/pdiddy/doi-collector/internal/output"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the venue allow-list and research-method keywords",
	Long: `Filters prints the normalized venue allow-list, the method keywords derived
from the research-method phrases, and the accepted year range. Settings come
from the same config file and environment as a collection run; use --profile
to inspect a profile file before collecting with it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := config.LoadFilter(config.Options{ConfigFile: cfgFile, Flags: cmd.Flags()})
		if err != nil {
			return &output.CLIError{Summary: "invalid configuration", Detail: err.Error(), ExitCode: output.ExitConfigError, Err: err}
		}

		flt, err := buildFilter(fc, time.Now().Year())
		if err != nil {
			return &output.CLIError{Summary: "cannot load filter profile", Detail: err.Error(), ExitCode: output.ExitConfigError, Err: err}
		}

		printer.Header("Venues")
		venues := output.NewTable(printer.Out(), "#", "Venue")
		for i, v := range flt.Venues() {
			venues.AddRow(strconv.Itoa(i+1), v)
		}
		if err := venues.Render(); err != nil {
			return err
		}

		printer.Header("Method keywords")
		keywords := output.NewTable(printer.Out(), "#", "Keyword")
		for i, kw := range flt.Keywords() {
			keywords.AddRow(strconv.Itoa(i+1), kw)
		}
		if err := keywords.Render(); err != nil {
			return err
		}

		printer.Info("\nYears: %d-%d", fc.MinYear, time.Now().Year())
		return nil
	},
}

func init() {
	filtersCmd.Flags().String("profile", "", "YAML profile file to inspect (default: built-in profile)")
	filtersCmd.Flags().Int("min-year", filter.DefaultMinYear, "earliest accepted publication year")

	rootCmd.AddCommand(filtersCmd)
}
