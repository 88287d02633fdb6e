// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// defaultVenues is the built-in journal allow-list.
var defaultVenues = []string{
	"ieee transactions on software engineering",
	"acm transactions on software engineering and methodology",
	"automated software engineering journal",
	"empirical software engineering journal",
	"information and software technology",
	"journal of systems and software",
	"computer supported cooperative work",
	"requirements engineering journal",
	"journal of software evolution and process",
	"software testing verification and reliability",
	"journal of software maintenance and evolution research and practice",
}

// defaultMethodPhrases is the built-in list of research-method phrases.
var defaultMethodPhrases = []string{
	"data science", "engineering research", "design science", "experiments", "grounded theory",
	"longitudinal", "meta science", "optimization", "qualitative survey", "quantitative survey",
	"quantitative simulation", "qualitative simulation", "questionnaire survey", "replication",
	"repository mining", "systematic review", "mixed method", "empirical study", "literature survey",
}

// Profile holds the venue allow-list and research-method phrases a Filter
// is built from. It can be stored as YAML so the lists can be changed
// without rebuilding.
type Profile struct {
	Venues        []string `yaml:"venues"`
	MethodPhrases []string `yaml:"method_phrases"`
}

// DefaultProfile returns the built-in software-engineering profile.
func DefaultProfile() Profile {
	return Profile{
		Venues:        append([]string(nil), defaultVenues...),
		MethodPhrases: append([]string(nil), defaultMethodPhrases...),
	}
}

// LoadProfile reads a profile from a YAML file. A section that is absent
// from the file keeps the built-in default.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	def := DefaultProfile()
	if len(p.Venues) == 0 {
		p.Venues = def.Venues
	}
	if len(p.MethodPhrases) == 0 {
		p.MethodPhrases = def.MethodPhrases
	}
	return p, nil
}

// NormalizedVenues returns the allow-list in normalized form, skipping
// entries that normalize to nothing.
func (p Profile) NormalizedVenues() []string {
	var out []string
	for _, v := range p.Venues {
		if n := Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// MethodKeywords splits every method phrase into lowercase words and
// returns the unique words in sorted order.
func (p Profile) MethodKeywords() []string {
	seen := make(map[string]bool)
	var words []string
	for _, phrase := range p.MethodPhrases {
		for _, w := range strings.Fields(strings.ToLower(phrase)) {
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}
	sort.Strings(words)
	return words
}
