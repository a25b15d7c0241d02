package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// SitemapInput defines the input schema for the sitemap tool.
type SitemapInput struct {
	WebsiteURL string `json:"website_url" jsonschema:"required,URL of the website to extract the sitemap from"`
}

// NewSitemapHandler creates the sitemap tool handler.
func NewSitemapHandler(deps *Dependencies) mcp.ToolHandlerFor[SitemapInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SitemapInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		result, err := client.Sitemap(ctx, scrapegraph.SitemapRequest{
			WebsiteURL: input.WebsiteURL,
		})
		if err != nil {
			deps.Logger.Error("sitemap failed", "url", input.WebsiteURL, "error", err)
			return ErrorResult(err), nil, nil
		}

		deps.Logger.Info("sitemap completed", "url", input.WebsiteURL)
		return JSONResult(result), nil, nil
	}
}
