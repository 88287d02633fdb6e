// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/doi-collector/pkg/types"
)

func testFilter() *Filter {
	return New(DefaultProfile(), DefaultMinYear, 2026)
}

func matchingEntry() types.Entry {
	return types.Entry{
		PublicationName: "IEEE Transactions on Software Engineering",
		CoverDate:       "2019-05-01",
		Title:           "An experiments-based study",
		DOI:             "10.1109/TSE.2019.0000001",
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		modify func(e *types.Entry)
		want   Reason
	}{
		{"matching entry", func(e *types.Entry) {}, Accepted},
		{"year below range", func(e *types.Entry) { e.CoverDate = "1998-01-01" }, RejectYear},
		{"year above range", func(e *types.Entry) { e.CoverDate = "2027-01-01" }, RejectYear},
		{"lower year bound inclusive", func(e *types.Entry) { e.CoverDate = "2000-01-01" }, Accepted},
		{"upper year bound inclusive", func(e *types.Entry) { e.CoverDate = "2026-12-31" }, Accepted},
		{"unparsable year", func(e *types.Entry) { e.CoverDate = "n.d." }, RejectYear},
		{"missing cover date", func(e *types.Entry) { e.CoverDate = "" }, RejectYear},
		{"year only", func(e *types.Entry) { e.CoverDate = "2015" }, Accepted},
		{"unrelated venue", func(e *types.Entry) { e.PublicationName = "Random Unrelated Journal" }, RejectVenue},
		{"venue as substring", func(e *types.Entry) {
			e.PublicationName = "Journal of Systems and Software (Special Issue)"
		}, Accepted},
		{"no method text", func(e *types.Entry) { e.Title = "Notes on open ecosystems" }, RejectMethod},
		{"method in abstract", func(e *types.Entry) {
			e.Title = "Notes on open ecosystems"
			e.Description = "We conduct a Systematic Review of the field."
		}, Accepted},
		{"method in author keywords", func(e *types.Entry) {
			e.Title = "Notes on open ecosystems"
			e.AuthorKeywords = "ecosystems | Grounded-Theory | open source"
		}, Accepted},
		{"missing doi", func(e *types.Entry) { e.DOI = "" }, RejectDOI},
		{"malformed doi", func(e *types.Entry) { e.DOI = "10.10/x" }, RejectDOI},
	}
	f := testFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := matchingEntry()
			tt.modify(&e)
			_, got := f.Check(e)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckTrimsDOI(t *testing.T) {
	e := matchingEntry()
	e.DOI = "  10.1109/TSE.2019.0000001 "
	doi, reason := testFilter().Check(e)
	assert.Equal(t, Accepted, reason)
	assert.Equal(t, "10.1109/TSE.2019.0000001", doi)
}

func TestApplyPreservesOrderAndDuplicates(t *testing.T) {
	a := matchingEntry()
	a.DOI = "10.1109/TSE.2019.0000002"
	b := matchingEntry()
	b.DOI = "10.1109/TSE.2019.0000001"
	old := matchingEntry()
	old.CoverDate = "1990-01-01"
	other := matchingEntry()
	other.PublicationName = "Random Unrelated Journal"

	dois, rejected := testFilter().Apply([]types.Entry{a, old, b, other, a})

	assert.Equal(t, []string{
		"10.1109/TSE.2019.0000002",
		"10.1109/TSE.2019.0000001",
		"10.1109/TSE.2019.0000002",
	}, dois)
	assert.Equal(t, 1, rejected[RejectYear])
	assert.Equal(t, 1, rejected[RejectVenue])
	assert.Equal(t, 2, rejected.Total())
}

func TestApplyEmpty(t *testing.T) {
	dois, rejected := testFilter().Apply(nil)
	assert.Empty(t, dois)
	assert.Zero(t, rejected.Total())
}

func TestFilterAccessorsReturnCopies(t *testing.T) {
	f := testFilter()
	v := f.Venues()
	v[0] = "changed"
	assert.NotEqual(t, "changed", f.Venues()[0])
	assert.Contains(t, f.Keywords(), "replication")
}
