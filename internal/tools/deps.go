// Package tools provides MCP tool handlers and registration.
package tools

import (
	"log/slog"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	// Client is the ScrapeGraph API client, or nil when no API key is
	// configured. Handlers must go through client() so the missing-key
	// case short-circuits before any request is built.
	Client *scrapegraph.Client
	Logger *slog.Logger
}

// client returns the API client, or ErrNotConfigured when none is bound.
func (d *Dependencies) client() (*scrapegraph.Client, error) {
	if d == nil || d.Client == nil {
		return nil, scrapegraph.ErrNotConfigured
	}
	return d.Client, nil
}
