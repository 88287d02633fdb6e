// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter decides which search results are kept: the entry must
// appear in an allow-listed venue, fall inside the accepted year range,
// mention a research-method keyword, and carry a well-formed DOI.
package filter

import (
	"strconv"
	"strings"

	"github.com/pdiddy/doi-collector/pkg/types"
)

// DefaultMinYear is the earliest publication year accepted by default.
const DefaultMinYear = 2000

// Reason records why an entry was accepted or dropped.
type Reason string

const (
	Accepted     Reason = "accepted"
	RejectYear   Reason = "year"
	RejectVenue  Reason = "venue"
	RejectMethod Reason = "method"
	RejectDOI    Reason = "doi"
)

// Rejections counts dropped entries by reason.
type Rejections map[Reason]int

// Total returns the number of dropped entries.
func (r Rejections) Total() int {
	n := 0
	for _, c := range r {
		n += c
	}
	return n
}

// Filter applies the venue, year, method-keyword, and DOI criteria. A
// Filter is immutable after New and safe to reuse across pages.
type Filter struct {
	venues   []string
	keywords []string
	minYear  int
	maxYear  int
}

// New builds a Filter from a profile and an inclusive year range.
func New(p Profile, minYear, maxYear int) *Filter {
	return &Filter{
		venues:   p.NormalizedVenues(),
		keywords: p.MethodKeywords(),
		minYear:  minYear,
		maxYear:  maxYear,
	}
}

// Venues returns the normalized allow-list.
func (f *Filter) Venues() []string { return append([]string(nil), f.venues...) }

// Keywords returns the method keywords.
func (f *Filter) Keywords() []string { return append([]string(nil), f.keywords...) }

// Apply returns the DOIs of the entries that pass every criterion, in input
// order, along with counts of the entries it dropped. Duplicates are kept.
func (f *Filter) Apply(entries []types.Entry) ([]string, Rejections) {
	var dois []string
	rejected := make(Rejections)
	for _, e := range entries {
		doi, reason := f.Check(e)
		if reason != Accepted {
			rejected[reason]++
			continue
		}
		dois = append(dois, doi)
	}
	return dois, rejected
}

// Check evaluates a single entry. On success it returns the trimmed DOI
// and Accepted; otherwise it returns the first criterion the entry failed.
func (f *Filter) Check(e types.Entry) (string, Reason) {
	year, ok := coverYear(e.CoverDate)
	if !ok || year < f.minYear || year > f.maxYear {
		return "", RejectYear
	}

	if !f.venueMatch(Normalize(e.PublicationName)) {
		return "", RejectVenue
	}

	keywords := strings.Join(strings.Split(e.AuthorKeywords, "|"), " ")
	text := Normalize(e.Title) + " " + Normalize(e.Description) + " " + Normalize(keywords)
	if !f.methodMatch(text) {
		return "", RejectMethod
	}

	doi := strings.TrimSpace(e.DOI)
	if doi == "" || !ValidDOI(doi) {
		return "", RejectDOI
	}
	return doi, Accepted
}

func (f *Filter) venueMatch(venue string) bool {
	for _, v := range f.venues {
		if strings.Contains(venue, v) {
			return true
		}
	}
	return false
}

func (f *Filter) methodMatch(text string) bool {
	for _, kw := range f.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// coverYear parses the year from the first four characters of a cover date.
func coverYear(coverDate string) (int, bool) {
	prefix := []rune(coverDate)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	year, err := strconv.Atoi(string(prefix))
	if err != nil {
		return 0, false
	}
	return year, true
}
