// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doi-collector/internal/collect"
	"github.com/pdiddy/doi-collector/internal/config"
	"github.com/pdiddy/doi-collector/internal/filter"
	"github.com/pdiddy/doi-collector/internal/output"
	"github.com/pdiddy/doi-collector/internal/persist"
	"github.com/pdiddy/doi-collector/internal/search"
	"github.com/pdiddy/doi-collector/pkg/types"
)

func init() {
	f := rootCmd.Flags()
	f.String("api-key", "", "Scopus API key (default: $SCOPUS_API_KEY or .secrets/scopus-api-key)")
	f.String("endpoint", search.DefaultEndpoint, "Scopus Search API URL")
	f.String("view", search.DefaultView, "Scopus response view: STANDARD or COMPLETE")
	f.Duration("timeout", config.DefaultTimeout, "HTTP request timeout")
	f.String("query", config.DefaultQuery, "Scopus search expression")
	f.Int("page-size", collect.DefaultPageSize, "entries requested per page")
	f.Int("max-results", collect.DefaultMaxResults, "stop once the offset reaches this many results")
	f.Duration("delay", config.DefaultDelay, "delay between page requests")
	f.String("profile", "", "YAML file overriding the venue allow-list and method phrases")
	f.Int("min-year", filter.DefaultMinYear, "earliest accepted publication year")
	f.String("output-dir", persist.DefaultDir, "output directory (created if absent)")
	f.String("output-file", persist.DefaultFile, "output filename")
}

func runCollect(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(config.Options{
		ConfigFile: cfgFile,
		Flags:      cmd.Flags(),
		Secrets:    loadedSecrets,
	})
	if err != nil {
		return &output.CLIError{
			Summary:    "invalid configuration",
			Detail:     err.Error(),
			Suggestion: "set the API key with --api-key, SCOPUS_API_KEY, or .secrets/scopus-api-key",
			ExitCode:   output.ExitConfigError,
			Err:        err,
		}
	}
	if loaded.FileUsed != "" {
		logger.Debug("using config file", "path", loaded.FileUsed)
	}
	cfg := loaded.Config

	flt, err := buildFilter(cfg.Filter, time.Now().Year())
	if err != nil {
		return &output.CLIError{Summary: "cannot load filter profile", Detail: err.Error(), ExitCode: output.ExitConfigError, Err: err}
	}

	client := search.NewScopusClient(cfg.Scopus)
	res, err := collect.New(client, flt, cfg.Collector, printer.Out()).
		WithLogger(logger).
		Run(cmd.Context(), cfg.Collector.Query)
	if err != nil {
		var denied *search.AccessDeniedError
		if errors.As(err, &denied) {
			detail := denied.Body
			if detail == "" {
				detail = fmt.Sprintf("HTTP %d", denied.StatusCode)
			}
			return &output.CLIError{
				Summary:    "Permission error: check API key, subscription level, or quota.",
				Detail:     detail,
				Suggestion: "verify the key at https://dev.elsevier.com and that your network has Scopus access",
				ExitCode:   output.ExitAccessDenied,
				Err:        err,
			}
		}
		return err
	}

	report, err := persist.Write(cfg.Output.Dir, cfg.Output.File, res.DOIs)
	if err != nil {
		return err
	}

	printSummary(res)
	printer.Success("Saved %d validated DOIs to %s", report.Count, report.Path)
	return nil
}

// buildFilter loads the configured profile, or the built-in one, and
// bounds years at maxYear.
func buildFilter(cfg types.FilterConfig, maxYear int) (*filter.Filter, error) {
	profile := filter.DefaultProfile()
	if cfg.Profile != "" {
		p, err := filter.LoadProfile(cfg.Profile)
		if err != nil {
			return nil, err
		}
		profile = p
	}
	return filter.New(profile, cfg.MinYear, maxYear), nil
}

func printSummary(res collect.Result) {
	if res.TotalResults > 0 {
		printer.Info("Scopus reported %d results for the query", res.TotalResults)
	}
	printer.Info("Pages fetched: %d, entries seen: %d, accepted: %d, duplicates collapsed: %d",
		res.Pages, res.Entries, res.Accepted, res.Duplicates())
	if res.Skipped > 0 {
		printer.Warning("Skipped %d entries that could not be decoded", res.Skipped)
	}

	if len(res.Rejected) == 0 {
		return
	}
	reasons := make([]string, 0, len(res.Rejected))
	for r, n := range res.Rejected {
		reasons = append(reasons, fmt.Sprintf("%s=%d", r, n))
	}
	sort.Strings(reasons)
	printer.Info("Rejected: %s", strings.Join(reasons, ", "))
}
