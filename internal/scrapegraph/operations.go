package scrapegraph

import (
	"context"
	"net/http"
	"time"
)

// MarkdownifyRequest converts a webpage into clean markdown.
type MarkdownifyRequest struct {
	WebsiteURL string `json:"website_url"`
}

// Markdownify converts the given webpage into markdown.
func (c *Client) Markdownify(ctx context.Context, req MarkdownifyRequest) (any, error) {
	if req.WebsiteURL == "" {
		return nil, newValidationError("website_url", "must not be empty")
	}
	return c.do(ctx, http.MethodPost, "/markdownify", req, 0)
}

// SmartScraperRequest extracts structured data from a webpage using AI.
// Optional fields are pointers so that unset values are omitted from the
// request body rather than sent as zero values.
type SmartScraperRequest struct {
	UserPrompt      string `json:"user_prompt"`
	WebsiteURL      string `json:"website_url"`
	NumberOfScrolls *int   `json:"number_of_scrolls,omitempty"`
	MarkdownOnly    *bool  `json:"markdown_only,omitempty"`
}

// SmartScraper extracts structured data from a webpage per the user prompt.
func (c *Client) SmartScraper(ctx context.Context, req SmartScraperRequest) (any, error) {
	if req.UserPrompt == "" {
		return nil, newValidationError("user_prompt", "must not be empty")
	}
	if req.WebsiteURL == "" {
		return nil, newValidationError("website_url", "must not be empty")
	}
	return c.do(ctx, http.MethodPost, "/smartscraper", req, 0)
}

// SearchScraperRequest performs an AI-powered web search.
type SearchScraperRequest struct {
	UserPrompt      string `json:"user_prompt"`
	NumResults      *int   `json:"num_results,omitempty"`
	NumberOfScrolls *int   `json:"number_of_scrolls,omitempty"`
}

// SearchScraper performs an AI-powered web search with structured results.
func (c *Client) SearchScraper(ctx context.Context, req SearchScraperRequest) (any, error) {
	if req.UserPrompt == "" {
		return nil, newValidationError("user_prompt", "must not be empty")
	}
	return c.do(ctx, http.MethodPost, "/searchscraper", req, 0)
}

// ScrapeRequest fetches the raw HTML of a webpage.
type ScrapeRequest struct {
	WebsiteURL    string `json:"website_url"`
	RenderHeavyJS *bool  `json:"render_heavy_js,omitempty"`
}

// Scrape fetches page content, optionally rendering heavy JavaScript.
func (c *Client) Scrape(ctx context.Context, req ScrapeRequest) (any, error) {
	if req.WebsiteURL == "" {
		return nil, newValidationError("website_url", "must not be empty")
	}
	return c.do(ctx, http.MethodPost, "/scrape", req, 0)
}

// SitemapRequest extracts the sitemap of a website.
type SitemapRequest struct {
	WebsiteURL string `json:"website_url"`
}

// Sitemap retrieves all URLs listed in a website's sitemap.
func (c *Client) Sitemap(ctx context.Context, req SitemapRequest) (any, error) {
	if req.WebsiteURL == "" {
		return nil, newValidationError("website_url", "must not be empty")
	}
	return c.do(ctx, http.MethodPost, "/sitemap", req, 0)
}

// AgenticScraperRequest runs a browser automation session with optional
// AI extraction. Steps and OutputSchema must already be normalized (see
// NormalizeSteps and NormalizeOutputSchema).
type AgenticScraperRequest struct {
	URL               string         `json:"url"`
	UserPrompt        string         `json:"user_prompt,omitempty"`
	OutputSchema      map[string]any `json:"output_schema,omitempty"`
	Steps             []string       `json:"steps,omitempty"`
	AIExtraction      *bool          `json:"ai_extraction,omitempty"`
	PersistentSession *bool          `json:"persistent_session,omitempty"`

	// Timeout overrides the client default for this call only. Not part
	// of the request body.
	Timeout time.Duration `json:"-"`
}

// AgenticScraper executes an agentic browser workflow against a URL.
func (c *Client) AgenticScraper(ctx context.Context, req AgenticScraperRequest) (any, error) {
	if req.URL == "" {
		return nil, newValidationError("url", "must not be empty")
	}
	return c.do(ctx, http.MethodPost, "/agentic-scrapper", req, req.Timeout)
}
