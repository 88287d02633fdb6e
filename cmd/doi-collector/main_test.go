// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doi-collector/internal/output"
)

const onePageJSON = `{"search-results": {"opensearch:totalResults": "2", "entry": [
  {
    "prism:publicationName": "Information and Software Technology",
    "prism:coverDate": "2020-02-01",
    "dc:title": "Health of software ecosystems",
    "dc:description": "A systematic review.",
    "prism:doi": "10.1016/j.infsof.2019.106241"
  },
  {
    "prism:publicationName": "Random Unrelated Journal",
    "prism:coverDate": "2020-02-01",
    "dc:title": "A systematic review",
    "prism:doi": "10.9999/unrelated.1"
  }
]}}`

// execute runs the root command in an empty working directory and
// returns what it wrote.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SCOPUS_API_KEY", "")

	quiet, verbose, cfgFile = false, false, ""
	resetFlags(t, rootCmd.Flags())
	resetFlags(t, filtersCmd.Flags())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default and clears Changed, so
// flags set by an earlier test do not shadow config or env settings.
func resetFlags(t *testing.T, fs *pflag.FlagSet) {
	t.Helper()
	fs.VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

func TestRootCollectsAndWrites(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, onePageJSON)
			return
		}
		fmt.Fprint(w, `{"search-results": {"entry": []}}`)
	}))
	defer ts.Close()

	outDir := filepath.Join(t.TempDir(), "results")
	stdout, _, err := execute(t,
		"--api-key", "k",
		"--endpoint", ts.URL,
		"--delay", "0s",
		"--output-dir", outDir,
		"--output-file", "dois.txt",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	data, err := os.ReadFile(filepath.Join(outDir, "dois.txt"))
	require.NoError(t, err)
	assert.Equal(t, "10.1016/j.infsof.2019.106241\n", string(data))

	assert.Contains(t, stdout, "Fetching records: 0 to 25")
	assert.Contains(t, stdout, "No more entries found. Ending pagination.")
	assert.Contains(t, stdout, "Rejected: venue=1")
	assert.Contains(t, stdout, "[OK] Saved 1 validated DOIs to "+filepath.Join(outDir, "dois.txt"))
}

func TestRootAccessDenied(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "APIKey is not authorized")
	}))
	defer ts.Close()

	outDir := filepath.Join(t.TempDir(), "results")
	_, _, err := execute(t,
		"--api-key", "bad",
		"--endpoint", ts.URL,
		"--delay", "0s",
		"--output-dir", outDir,
	)
	require.Error(t, err)
	assert.Equal(t, output.ExitAccessDenied, output.ExitCode(err))
	assert.Contains(t, err.Error(), "Permission error")

	var ce *output.CLIError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "APIKey is not authorized", ce.Detail)

	assert.NoDirExists(t, outDir, "nothing is written after a fatal error")
}

func TestRootServerErrorIsGeneral(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, _, err := execute(t, "--api-key", "k", "--endpoint", ts.URL, "--delay", "0s",
		"--output-dir", filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
	assert.Equal(t, output.ExitGeneral, output.ExitCode(err))
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "unexpected")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "doi-collector dev\n", stdout)
}

func TestFiltersCommand(t *testing.T) {
	stdout, _, err := execute(t, "filters")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Venues")
	assert.Contains(t, stdout, "ieee transactions on software engineering")
	assert.Contains(t, stdout, "Method keywords")
	assert.Contains(t, stdout, "grounded")
	assert.Contains(t, stdout, "Years: 2000-")
}

func TestFiltersCommandProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("venues: [\"IEEE Software\"]\nmethod_phrases: [\"case study\"]\n"), 0o644))

	stdout, _, err := execute(t, "filters", "--profile", profile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ieee software")
	assert.Contains(t, stdout, "case")
	assert.NotContains(t, stdout, "grounded")
}

func TestFiltersCommandUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("venues: [\"IEEE Software\"]\n"), 0o644))
	cfg := filepath.Join(dir, "doi-collector.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(fmt.Sprintf("filter:\n  min_year: 2012\n  profile: %s\n", profile)), 0o644))

	stdout, _, err := execute(t, "--config", cfg, "filters")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ieee software")
	assert.NotContains(t, stdout, "empirical software engineering")
	assert.Contains(t, stdout, "Years: 2012-")
}

func TestFiltersCommandUsesEnv(t *testing.T) {
	t.Setenv("DOI_COLLECTOR_FILTER_MIN_YEAR", "2016")

	stdout, _, err := execute(t, "filters")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Years: 2016-")
}

func TestFiltersCommandFlagBeatsEnv(t *testing.T) {
	t.Setenv("DOI_COLLECTOR_FILTER_MIN_YEAR", "2016")

	stdout, _, err := execute(t, "filters", "--min-year", "2019")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Years: 2019-")
}
