package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "markdownify",
		Description: "Convert a webpage into clean, formatted markdown",
	}, NewMarkdownifyHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "smartscraper",
		Description: "Extract structured data from a webpage using AI",
	}, NewSmartScraperHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "searchscraper",
		Description: "Perform AI-powered web searches with structured results",
	}, NewSearchScraperHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scrape",
		Description: "Fetch page content, optionally rendering heavy JavaScript",
	}, NewScrapeHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sitemap",
		Description: "Extract all URLs from a website's sitemap",
	}, NewSitemapHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "agentic_scrapper",
		Description: "Run a browser automation session with optional AI extraction",
	}, NewAgenticScraperHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "smartcrawler_initiate",
		Description: "Start an asynchronous multi-page crawl in AI extraction or markdown mode; returns a request_id to poll with smartcrawler_fetch_results",
	}, NewCrawlInitiateHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "smartcrawler_fetch_results",
		Description: "Fetch the status or results of a crawl by request_id; call again later while the status is not \"completed\"",
	}, NewCrawlFetchHandler(deps))
}
