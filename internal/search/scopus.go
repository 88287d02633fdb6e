// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search fetches pages of article records from the Scopus Search API.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/doi-collector/pkg/types"
)

// DefaultEndpoint is the Scopus Search API endpoint.
const DefaultEndpoint = "https://api.elsevier.com/content/search/scopus"

// DefaultView is the response detail level requested from Scopus.
const DefaultView = "STANDARD"

// maxErrorBody bounds how much of an error response body is kept for
// diagnostics.
const maxErrorBody = 4096

// Fetcher retrieves one page of search results. count is the page size
// and start the zero-based offset.
type Fetcher interface {
	Fetch(ctx context.Context, query string, count, start int) (types.Page, error)
}

// ScopusClient queries the Scopus Search API.
type ScopusClient struct {
	Client *http.Client
	Config types.ScopusConfig
}

// NewScopusClient returns a client using cfg.Timeout for every request.
func NewScopusClient(cfg types.ScopusConfig) *ScopusClient {
	return &ScopusClient{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// Fetch issues a single search request. HTTP 403 yields an
// *AccessDeniedError; any other non-2xx status yields a *StatusError.
// Entries that fail to decode are counted in Page.Skipped and dropped.
// Neither is retried.
func (c *ScopusClient) Fetch(ctx context.Context, query string, count, start int) (types.Page, error) {
	endpoint := c.Config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	view := c.Config.View
	if view == "" {
		view = DefaultView
	}

	params := url.Values{
		"query":      {query},
		"count":      {strconv.Itoa(count)},
		"start":      {strconv.Itoa(start)},
		"httpAccept": {"application/json"},
		"view":       {view},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return types.Page{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-ELS-APIKey", c.Config.APIKey)
	req.Header.Set("Accept", "application/json")
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return types.Page{}, fmt.Errorf("Scopus API request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return types.Page{}, &AccessDeniedError{StatusCode: resp.StatusCode, Body: readErrorBody(resp.Body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return types.Page{}, &StatusError{StatusCode: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var sr scopusResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return types.Page{}, fmt.Errorf("parsing Scopus response: %w", err)
	}

	page := types.Page{StartIndex: start}
	if n, err := strconv.Atoi(sr.SearchResults.TotalResults); err == nil {
		page.TotalResults = n
	}
	if n, err := strconv.Atoi(sr.SearchResults.StartIndex); err == nil {
		page.StartIndex = n
	}
	for _, raw := range sr.SearchResults.Entries {
		var e types.Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			page.Skipped++
			continue
		}
		// An exhausted result set comes back as a single entry carrying
		// only an error message.
		if e.Error != "" {
			continue
		}
		page.Entries = append(page.Entries, e)
	}
	return page, nil
}

func readErrorBody(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(data))
}

// Scopus Search API JSON structures.
type scopusResponse struct {
	SearchResults scopusSearchResults `json:"search-results"`
}

type scopusSearchResults struct {
	TotalResults string            `json:"opensearch:totalResults"`
	StartIndex   string            `json:"opensearch:startIndex"`
	Entries      []json.RawMessage `json:"entry"`
}
