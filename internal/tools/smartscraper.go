package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// SmartScraperInput defines the input schema for the smartscraper tool.
// Optional fields are pointers so that values the caller never supplied
// are omitted from the API request instead of sent as zeroes.
type SmartScraperInput struct {
	UserPrompt      string `json:"user_prompt" jsonschema:"required,Instructions for what data to extract"`
	WebsiteURL      string `json:"website_url" jsonschema:"required,URL of the webpage to scrape"`
	NumberOfScrolls *int   `json:"number_of_scrolls,omitempty" jsonschema:"Number of infinite scrolls to perform before extraction"`
	MarkdownOnly    *bool  `json:"markdown_only,omitempty" jsonschema:"Return markdown content without AI extraction"`
}

// NewSmartScraperHandler creates the smartscraper tool handler.
func NewSmartScraperHandler(deps *Dependencies) mcp.ToolHandlerFor[SmartScraperInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SmartScraperInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		result, err := client.SmartScraper(ctx, scrapegraph.SmartScraperRequest{
			UserPrompt:      input.UserPrompt,
			WebsiteURL:      input.WebsiteURL,
			NumberOfScrolls: input.NumberOfScrolls,
			MarkdownOnly:    input.MarkdownOnly,
		})
		if err != nil {
			deps.Logger.Error("smartscraper failed", "url", input.WebsiteURL, "error", err)
			return ErrorResult(err), nil, nil
		}

		deps.Logger.Info("smartscraper completed", "url", input.WebsiteURL)
		return JSONResult(result), nil, nil
	}
}
