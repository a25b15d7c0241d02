package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// ScrapeInput defines the input schema for the scrape tool.
type ScrapeInput struct {
	WebsiteURL    string `json:"website_url" jsonschema:"required,URL of the webpage to fetch"`
	RenderHeavyJS *bool  `json:"render_heavy_js,omitempty" jsonschema:"Render JavaScript-heavy pages before extraction"`
}

// NewScrapeHandler creates the scrape tool handler.
func NewScrapeHandler(deps *Dependencies) mcp.ToolHandlerFor[ScrapeInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ScrapeInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		result, err := client.Scrape(ctx, scrapegraph.ScrapeRequest{
			WebsiteURL:    input.WebsiteURL,
			RenderHeavyJS: input.RenderHeavyJS,
		})
		if err != nil {
			deps.Logger.Error("scrape failed", "url", input.WebsiteURL, "error", err)
			return ErrorResult(err), nil, nil
		}

		deps.Logger.Info("scrape completed", "url", input.WebsiteURL)
		return JSONResult(result), nil, nil
	}
}
