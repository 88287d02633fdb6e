// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "fmt"

// AccessDeniedError reports that Scopus refused the request, typically
// because of an invalid API key, an insufficient subscription, or an
// exhausted quota. Callers treat it as fatal.
type AccessDeniedError struct {
	StatusCode int
	Body       string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("Scopus API denied access (HTTP %d): check API key, subscription level, or quota", e.StatusCode)
}

// StatusError reports any other non-success HTTP status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("Scopus API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("Scopus API returned HTTP %d: %s", e.StatusCode, e.Body)
}
