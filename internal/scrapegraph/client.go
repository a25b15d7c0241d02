// Package scrapegraph provides a client for the ScrapeGraph AI API.
package scrapegraph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the production ScrapeGraph API endpoint.
	DefaultBaseURL = "https://api.scrapegraphai.com/v1"

	// DefaultTimeout bounds every request unless a per-call override is given.
	DefaultTimeout = 30 * time.Second

	// apiKeyHeader authenticates every outbound request.
	apiKeyHeader = "SGAI-APIKEY"
)

// Client is a ScrapeGraph API client. It owns a pooled HTTP connection
// bound to a base URL and an API key, and is safe for concurrent use.
type Client struct {
	http    *resty.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (e.g. for a test server).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(url)
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger for request-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		nc := resty.NewWithClient(hc).SetBaseURL(c.http.BaseURL)
		nc.Header = c.http.Header.Clone()
		c.http = nc
	}
}

// NewClient creates a client bound to the given API key. The key is
// immutable for the life of the client; a caller needing a different
// credential constructs its own scoped client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetHeader(apiKeyHeader, apiKey).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the endpoint this client is bound to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Close releases the idle connections held by the client's pool.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// do executes a single API request. The path is relative to the base URL.
// A zero timeout uses the client default. Non-2xx responses become
// *RemoteError, elapsed deadlines become *TimeoutError; on success the
// parsed JSON body is returned unmodified.
func (c *Client) do(ctx context.Context, method, path string, body any, timeout time.Duration) (any, error) {
	if timeout <= 0 {
		timeout = c.timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Path: path, Timeout: timeout}
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// Anything outside 2xx is a failure, regardless of body content.
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &RemoteError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	var result any
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", path, err)
	}

	return result, nil
}
