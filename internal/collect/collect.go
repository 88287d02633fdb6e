// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect drives pagination over a search query: it fetches each
// page, filters it, and accumulates the accepted DOIs into a set.
package collect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/pdiddy/doi-collector/internal/filter"
	"github.com/pdiddy/doi-collector/internal/httputil"
	"github.com/pdiddy/doi-collector/internal/search"
	"github.com/pdiddy/doi-collector/pkg/types"
)

const (
	DefaultPageSize   = 25
	DefaultMaxResults = 5000
)

// Acceptor selects the DOIs to keep from a page of entries.
type Acceptor interface {
	Apply(entries []types.Entry) ([]string, filter.Rejections)
}

// Result is the outcome of a collection run.
type Result struct {
	// DOIs is the deduplicated set of accepted identifiers, sorted.
	// Callers should not rely on the order.
	DOIs []string

	// Pages counts fetch calls, including the final empty page.
	Pages int

	// Entries counts entries seen across all pages.
	Entries int

	// Skipped counts entries dropped because they could not be decoded.
	Skipped int

	// Accepted counts identifiers accepted before deduplication.
	Accepted int

	// Rejected counts dropped entries by reason.
	Rejected filter.Rejections

	// TotalResults is the hit count the API reported on the first page.
	TotalResults int

	// Exhausted is true when pagination ended on an empty page rather
	// than at the result cap.
	Exhausted bool
}

// Duplicates returns how many accepted identifiers collapsed into
// existing ones.
func (r Result) Duplicates() int {
	return r.Accepted - len(r.DOIs)
}

// Collector pages through a query one request at a time.
type Collector struct {
	fetcher    search.Fetcher
	acceptor   Acceptor
	pacer      *httputil.Pacer
	pageSize   int
	maxResults int
	out        io.Writer
	logger     *slog.Logger
}

// New returns a Collector. Zero PageSize and MaxResults fall back to the
// defaults (25 and 5000). Progress lines are written to w.
func New(f search.Fetcher, a Acceptor, cfg types.CollectorConfig, w io.Writer) *Collector {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if w == nil {
		w = io.Discard
	}
	return &Collector{
		fetcher:    f,
		acceptor:   a,
		pacer:      httputil.NewPacer(cfg.Delay),
		pageSize:   pageSize,
		maxResults: maxResults,
		out:        w,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for per-page debug detail.
func (c *Collector) WithLogger(l *slog.Logger) *Collector {
	if l != nil {
		c.logger = l
	}
	return c
}

// Run collects DOIs for query. It stops when a page comes back empty or
// when the offset reaches the result cap. Any fetch error aborts the run
// and is returned wrapped; no partial result is returned with it.
func (c *Collector) Run(ctx context.Context, query string) (Result, error) {
	seen := make(map[string]struct{})
	res := Result{Rejected: make(filter.Rejections)}

	for start := 0; start < c.maxResults; start += c.pageSize {
		if err := c.pacer.Wait(ctx); err != nil {
			return Result{}, fmt.Errorf("waiting to fetch offset %d: %w", start, err)
		}

		fmt.Fprintf(c.out, "Fetching records: %d to %d\n", start, start+c.pageSize)
		page, err := c.fetcher.Fetch(ctx, query, c.pageSize, start)
		c.pacer.Done()
		if err != nil {
			return Result{}, fmt.Errorf("fetching offset %d: %w", start, err)
		}
		res.Pages++
		res.Skipped += page.Skipped
		if res.Pages == 1 {
			res.TotalResults = page.TotalResults
		}
		if page.StartIndex != start {
			c.logger.Warn("API returned a different offset than requested",
				"requested", start, "returned", page.StartIndex)
		}

		if len(page.Entries) == 0 {
			fmt.Fprintln(c.out, "No more entries found. Ending pagination.")
			res.Exhausted = true
			break
		}

		dois, rejected := c.acceptor.Apply(page.Entries)
		res.Entries += len(page.Entries)
		res.Accepted += len(dois)
		for reason, n := range rejected {
			res.Rejected[reason] += n
		}
		for _, doi := range dois {
			seen[doi] = struct{}{}
		}

		c.logger.Debug("page filtered",
			"start", page.StartIndex,
			"entries", len(page.Entries),
			"skipped", page.Skipped,
			"accepted", len(dois),
			"rejected", rejected.Total(),
			"unique_total", len(seen),
		)
	}

	res.DOIs = make([]string, 0, len(seen))
	for doi := range seen {
		res.DOIs = append(res.DOIs, doi)
	}
	sort.Strings(res.DOIs)
	return res, nil
}
