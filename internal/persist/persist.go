// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package persist writes collected identifiers to a line-delimited file.
package persist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultDir  = "doi_results"
	DefaultFile = "scopus_dois.txt"
)

// Report describes a completed write.
type Report struct {
	Path  string
	Count int
}

// Write creates dir if needed and writes ids to dir/filename, one per
// line, replacing any existing file.
func Write(dir, filename string, ids []string) (Report, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Report{}, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return Report{}, fmt.Errorf("creating output file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, id := range ids {
		if _, err := w.WriteString(id + "\n"); err != nil {
			f.Close()
			return Report{}, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return Report{}, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Report{}, fmt.Errorf("closing %s: %w", path, err)
	}
	return Report{Path: path, Count: len(ids)}, nil
}
