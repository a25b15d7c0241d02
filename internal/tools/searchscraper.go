package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// SearchScraperInput defines the input schema for the searchscraper tool.
type SearchScraperInput struct {
	UserPrompt      string `json:"user_prompt" jsonschema:"required,Search query or extraction instructions"`
	NumResults      *int   `json:"num_results,omitempty" jsonschema:"Number of websites to consider (default 3 on the API side)"`
	NumberOfScrolls *int   `json:"number_of_scrolls,omitempty" jsonschema:"Number of infinite scrolls to perform on each website"`
}

// NewSearchScraperHandler creates the searchscraper tool handler.
func NewSearchScraperHandler(deps *Dependencies) mcp.ToolHandlerFor[SearchScraperInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchScraperInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		result, err := client.SearchScraper(ctx, scrapegraph.SearchScraperRequest{
			UserPrompt:      input.UserPrompt,
			NumResults:      input.NumResults,
			NumberOfScrolls: input.NumberOfScrolls,
		})
		if err != nil {
			deps.Logger.Error("searchscraper failed", "error", err)
			return ErrorResult(err), nil, nil
		}

		// Queries can be long free text; keep the log line short.
		query := input.UserPrompt
		if len(query) > 30 {
			query = query[:30] + "..."
		}
		deps.Logger.Info("searchscraper completed", "query", query)
		return JSONResult(result), nil, nil
	}
}
