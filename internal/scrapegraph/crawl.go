package scrapegraph

import (
	"context"
	"net/http"
)

// Extraction modes accepted by SubmitCrawl.
const (
	// ExtractionModeAI crawls pages and runs AI extraction guided by a
	// prompt. The prompt is required in this mode.
	ExtractionModeAI = "ai"

	// ExtractionModeMarkdown crawls pages and converts each to markdown
	// without AI processing. No prompt is used.
	ExtractionModeMarkdown = "markdown"
)

// CrawlRequest submits a multi-page crawl job. The crawl runs remotely
// and out of band: the submission response carries an opaque request_id
// which is the sole capability needed to retrieve results via FetchCrawl.
type CrawlRequest struct {
	URL            string
	ExtractionMode string
	Prompt         string
	Depth          *int
	MaxPages       *int
	SameDomainOnly *bool
}

// crawlBody is the wire shape of a crawl submission. Prompt and
// MarkdownOnly are populated from the extraction mode, never both.
type crawlBody struct {
	URL            string `json:"url"`
	Prompt         string `json:"prompt,omitempty"`
	MarkdownOnly   *bool  `json:"markdown_only,omitempty"`
	Depth          *int   `json:"depth,omitempty"`
	MaxPages       *int   `json:"max_pages,omitempty"`
	SameDomainOnly *bool  `json:"same_domain_only,omitempty"`
}

// SubmitCrawl initiates an asynchronous crawl job. On success the raw
// response is returned unmodified; it contains the request_id to pass
// to FetchCrawl. Submission failures are terminal and never entered
// into a poll loop.
//
// Mode "ai" requires a non-empty prompt. Mode "markdown" sets the
// markdown_only flag and ignores any supplied prompt.
func (c *Client) SubmitCrawl(ctx context.Context, req CrawlRequest) (any, error) {
	if req.URL == "" {
		return nil, newValidationError("url", "must not be empty")
	}

	body := crawlBody{
		URL:            req.URL,
		Depth:          req.Depth,
		MaxPages:       req.MaxPages,
		SameDomainOnly: req.SameDomainOnly,
	}

	switch req.ExtractionMode {
	case ExtractionModeAI:
		if req.Prompt == "" {
			return nil, newValidationError("prompt", `required when extraction_mode is "ai"`)
		}
		body.Prompt = req.Prompt
	case ExtractionModeMarkdown:
		markdownOnly := true
		body.MarkdownOnly = &markdownOnly
	default:
		return nil, newValidationError("extraction_mode",
			`must be "ai" or "markdown", got "`+req.ExtractionMode+`"`)
	}

	return c.do(ctx, http.MethodPost, "/crawl", body, 0)
}

// FetchCrawl retrieves the current state of a crawl job by its id. The
// call is an idempotent GET: it holds no session and may be repeated
// from any client instance until the response's status field reports
// "completed". Non-terminal statuses mean "try again later"; polling
// cadence, retries, and the overall wait budget belong to the caller.
func (c *Client) FetchCrawl(ctx context.Context, requestID string) (any, error) {
	if requestID == "" {
		return nil, newValidationError("request_id", "must not be empty")
	}
	return c.do(ctx, http.MethodGet, "/crawl/"+requestID, nil, 0)
}
