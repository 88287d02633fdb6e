// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"regexp"
	"strings"
)

// doiPattern is the DOI grammar accepted for output: the "10." directory
// indicator, a 4-9 digit registrant code, a slash, and a suffix drawn from
// the characters Crossref recommends.
var doiPattern = regexp.MustCompile(`^10\.[0-9]{4,9}/[-._;()/:a-zA-Z0-9]+$`)

// ValidDOI reports whether s, after trimming surrounding whitespace, is a
// well-formed DOI.
func ValidDOI(s string) bool {
	return doiPattern.MatchString(strings.TrimSpace(s))
}
