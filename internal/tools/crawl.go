package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// CrawlInitiateInput defines the input schema for smartcrawler_initiate.
type CrawlInitiateInput struct {
	URL            string `json:"url" jsonschema:"required,Starting URL for the crawl"`
	ExtractionMode string `json:"extraction_mode" jsonschema:"required,Either \"ai\" for AI extraction or \"markdown\" for markdown conversion"`
	Prompt         string `json:"prompt,omitempty" jsonschema:"Extraction instructions, required when extraction_mode is \"ai\""`
	Depth          *int   `json:"depth,omitempty" jsonschema:"Maximum link depth to follow"`
	MaxPages       *int   `json:"max_pages,omitempty" jsonschema:"Maximum number of pages to crawl"`
	SameDomainOnly *bool  `json:"same_domain_only,omitempty" jsonschema:"Restrict the crawl to the starting domain"`
}

// CrawlFetchInput defines the input schema for smartcrawler_fetch_results.
type CrawlFetchInput struct {
	RequestID string `json:"request_id" jsonschema:"required,The request_id returned by smartcrawler_initiate"`
}

// NewCrawlInitiateHandler creates the smartcrawler_initiate tool handler.
// The crawl runs asynchronously on the remote side; the returned
// request_id is the only handle on the job.
func NewCrawlInitiateHandler(deps *Dependencies) mcp.ToolHandlerFor[CrawlInitiateInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CrawlInitiateInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		result, err := client.SubmitCrawl(ctx, scrapegraph.CrawlRequest{
			URL:            input.URL,
			ExtractionMode: input.ExtractionMode,
			Prompt:         input.Prompt,
			Depth:          input.Depth,
			MaxPages:       input.MaxPages,
			SameDomainOnly: input.SameDomainOnly,
		})
		if err != nil {
			deps.Logger.Error("crawl submit failed", "url", input.URL, "error", err)
			return ErrorResult(err), nil, nil
		}

		deps.Logger.Info("crawl submitted", "url", input.URL, "mode", input.ExtractionMode)
		return JSONResult(result), nil, nil
	}
}

// NewCrawlFetchHandler creates the smartcrawler_fetch_results tool handler.
// Fetching is an idempotent poll: callers re-invoke it at their own cadence
// until the response status reports "completed". No retry or backoff
// happens here.
func NewCrawlFetchHandler(deps *Dependencies) mcp.ToolHandlerFor[CrawlFetchInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CrawlFetchInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		result, err := client.FetchCrawl(ctx, input.RequestID)
		if err != nil {
			deps.Logger.Error("crawl fetch failed", "request_id", input.RequestID, "error", err)
			return ErrorResult(err), nil, nil
		}

		deps.Logger.Debug("crawl fetched", "request_id", input.RequestID)
		return JSONResult(result), nil, nil
	}
}
