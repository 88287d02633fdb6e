// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the doi-collector pipeline.
// Entry and Page carry search results from the fetch stage to the filter
// stage; the config structs carry settings from the CLI into each stage.
package types

// Entry is one article record returned by the Scopus Search API. Only the
// fields consumed by the filter stage are decoded; the JSON keys follow the
// Scopus STANDARD view.
type Entry struct {
	// PublicationName is the journal or proceedings title.
	PublicationName string `json:"prism:publicationName" yaml:"publication_name"`

	// CoverDate is the issue cover date (e.g. "2019-05-01"). The year is
	// taken from its leading four characters.
	CoverDate string `json:"prism:coverDate" yaml:"cover_date"`

	// Title is the article title.
	Title string `json:"dc:title" yaml:"title"`

	// Description is the abstract. The STANDARD view often omits it.
	Description string `json:"dc:description" yaml:"description"`

	// AuthorKeywords is a pipe-delimited keyword list ("a | b | c").
	AuthorKeywords string `json:"authkeywords" yaml:"author_keywords"`

	// DOI is the candidate identifier, unvalidated.
	DOI string `json:"prism:doi" yaml:"doi"`

	// Error is set on the placeholder entry Scopus returns for an empty
	// result set ("Result set was empty").
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Page is one slice of a paginated result set.
type Page struct {
	// Entries holds the article records on this page. Empty when the
	// result set is exhausted.
	Entries []Entry

	// TotalResults is the total hit count reported by the API for the
	// query, or 0 when the API did not report it.
	TotalResults int

	// StartIndex is the zero-based offset of the first entry, as reported
	// by the API, or the requested offset when the API did not report it.
	StartIndex int

	// Skipped counts entries on this page that could not be decoded.
	Skipped int
}
