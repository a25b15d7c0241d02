// Package scrapegraph provides error types for ScrapeGraph API operations.
package scrapegraph

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured indicates no API key is available.
// Checked with errors.Is() before any request is constructed.
var ErrNotConfigured = errors.New("ScrapeGraph client not initialized. Set SGAI_API_KEY")

// ValidationError indicates malformed or contradictory parameters,
// detected locally before any network call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// newValidationError creates a ValidationError for the given field.
func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// RemoteError indicates a non-2xx HTTP response from the API.
// It carries the status code and the raw response body.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("scrapegraph API error %d: %s", e.StatusCode, e.Body)
}

// TimeoutError indicates the request deadline elapsed before the
// remote service responded.
type TimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %s", e.Path, e.Timeout)
}
