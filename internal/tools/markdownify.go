package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// MarkdownifyInput defines the input schema for the markdownify tool.
type MarkdownifyInput struct {
	WebsiteURL string `json:"website_url" jsonschema:"required,URL of the webpage to convert to markdown"`
}

// NewMarkdownifyHandler creates the markdownify tool handler.
func NewMarkdownifyHandler(deps *Dependencies) mcp.ToolHandlerFor[MarkdownifyInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MarkdownifyInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		result, err := client.Markdownify(ctx, scrapegraph.MarkdownifyRequest{
			WebsiteURL: input.WebsiteURL,
		})
		if err != nil {
			deps.Logger.Error("markdownify failed", "url", input.WebsiteURL, "error", err)
			return ErrorResult(err), nil, nil
		}

		deps.Logger.Info("markdownify completed", "url", input.WebsiteURL)
		return JSONResult(result), nil, nil
	}
}
