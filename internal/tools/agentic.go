package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

// AgenticScraperInput defines the input schema for the agentic_scrapper
// tool. Steps and OutputSchema are flexible-typed: calling agents send
// them either structured or as JSON-encoded strings, so both are accepted
// and resolved by an explicit normalization step before the request is
// built.
type AgenticScraperInput struct {
	URL               string `json:"url" jsonschema:"required,URL to run the browser automation on"`
	UserPrompt        string `json:"user_prompt,omitempty" jsonschema:"Instructions for AI extraction (requires ai_extraction)"`
	OutputSchema      any    `json:"output_schema,omitempty" jsonschema:"JSON schema for the extracted output, as an object or JSON-encoded string"`
	Steps             any    `json:"steps,omitempty" jsonschema:"Browser automation steps, as a list of strings or a single string"`
	AIExtraction      *bool  `json:"ai_extraction,omitempty" jsonschema:"Run AI extraction over the session result"`
	PersistentSession *bool  `json:"persistent_session,omitempty" jsonschema:"Keep the browser session alive between calls"`
	TimeoutSeconds    *int   `json:"timeout_seconds,omitempty" jsonschema:"Per-call timeout override in seconds"`
}

// NewAgenticScraperHandler creates the agentic_scrapper tool handler.
func NewAgenticScraperHandler(deps *Dependencies) mcp.ToolHandlerFor[AgenticScraperInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AgenticScraperInput) (
		*mcp.CallToolResult, any, error,
	) {
		client, err := deps.client()
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		steps, err := scrapegraph.NormalizeSteps(input.Steps)
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		schema, err := scrapegraph.NormalizeOutputSchema(input.OutputSchema)
		if err != nil {
			return ErrorResult(err), nil, nil
		}

		var timeout time.Duration
		if input.TimeoutSeconds != nil && *input.TimeoutSeconds > 0 {
			timeout = time.Duration(*input.TimeoutSeconds) * time.Second
		}

		result, err := client.AgenticScraper(ctx, scrapegraph.AgenticScraperRequest{
			URL:               input.URL,
			UserPrompt:        input.UserPrompt,
			OutputSchema:      schema,
			Steps:             steps,
			AIExtraction:      input.AIExtraction,
			PersistentSession: input.PersistentSession,
			Timeout:           timeout,
		})
		if err != nil {
			deps.Logger.Error("agentic scraper failed", "url", input.URL, "error", err)
			return ErrorResult(err), nil, nil
		}

		deps.Logger.Info("agentic scraper completed", "url", input.URL, "steps", len(steps))
		return JSONResult(result), nil, nil
	}
}
