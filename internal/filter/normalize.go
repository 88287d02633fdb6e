// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases text and collapses every run of characters outside
// [a-z0-9] into a single space, with no leading or trailing space. It is
// total and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	lower := cases.Lower(language.Und).String(text)

	var b strings.Builder
	b.Grow(len(lower))
	gap := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte(' ')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}
