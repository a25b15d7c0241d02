package scrapegraph_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamath/scrapegraph-mcp/internal/scrapegraph"
)

func TestSubmitCrawlValidation(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"request_id": "abc"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	defer c.Close()

	tests := []struct {
		name string
		req  scrapegraph.CrawlRequest
	}{
		{"empty url", scrapegraph.CrawlRequest{ExtractionMode: "ai", Prompt: "p"}},
		{"unknown mode", scrapegraph.CrawlRequest{URL: "https://example.com", ExtractionMode: "html"}},
		{"empty mode", scrapegraph.CrawlRequest{URL: "https://example.com"}},
		{"ai without prompt", scrapegraph.CrawlRequest{URL: "https://example.com", ExtractionMode: "ai"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.SubmitCrawl(context.Background(), tt.req)
			var validationErr *scrapegraph.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}

	assert.Equal(t, int64(0), calls.Load(), "rejected submissions must not reach the network")
}

func TestSubmitCrawlAIMode(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crawl", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"request_id": "job-1"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	defer c.Close()

	depth := 2
	result, err := c.SubmitCrawl(context.Background(), scrapegraph.CrawlRequest{
		URL:            "https://example.com",
		ExtractionMode: scrapegraph.ExtractionModeAI,
		Prompt:         "list headings",
		Depth:          &depth,
	})
	require.NoError(t, err)

	assert.Equal(t, "list headings", gotBody["prompt"])
	assert.Equal(t, float64(2), gotBody["depth"])
	assert.NotContains(t, gotBody, "markdown_only")
	assert.NotContains(t, gotBody, "max_pages")
	assert.Equal(t, map[string]any{"request_id": "job-1"}, result)
}

func TestSubmitCrawlMarkdownModeIgnoresPrompt(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"request_id": "job-2"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	defer c.Close()

	sameDomain := true
	_, err := c.SubmitCrawl(context.Background(), scrapegraph.CrawlRequest{
		URL:            "https://example.com",
		ExtractionMode: scrapegraph.ExtractionModeMarkdown,
		Prompt:         "this prompt must not be sent",
		SameDomainOnly: &sameDomain,
	})
	require.NoError(t, err)

	assert.Equal(t, true, gotBody["markdown_only"])
	assert.NotContains(t, gotBody, "prompt")
	assert.Equal(t, true, gotBody["same_domain_only"])
}

func TestFetchCrawlIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/crawl/job-1", r.URL.Path)
		w.Write([]byte(`{"status": "running"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	defer c.Close()

	first, err := c.FetchCrawl(context.Background(), "job-1")
	require.NoError(t, err)
	second, err := c.FetchCrawl(context.Background(), "job-1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated polls with no remote change return the same status")
}

func TestCrawlSubmitThenPoll(t *testing.T) {
	var polls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/crawl":
			w.Write([]byte(`{"request_id": "job-9"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/crawl/job-9":
			// First poll still running, second poll terminal.
			if polls.Add(1) == 1 {
				w.Write([]byte(`{"status": "running"}`))
			} else {
				w.Write([]byte(`{"status": "completed", "result": {"pages": 3}, "pages_processed": 3}`))
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	defer c.Close()

	submitted, err := c.SubmitCrawl(context.Background(), scrapegraph.CrawlRequest{
		URL:            "https://example.com",
		ExtractionMode: scrapegraph.ExtractionModeAI,
		Prompt:         "list headings",
	})
	require.NoError(t, err)

	id := submitted.(map[string]any)["request_id"].(string)
	require.Equal(t, "job-9", id)

	running, err := c.FetchCrawl(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "running", running.(map[string]any)["status"])
	assert.NotContains(t, running.(map[string]any), "result")

	done, err := c.FetchCrawl(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "completed", done.(map[string]any)["status"])
	assert.Contains(t, done.(map[string]any), "result")
}
