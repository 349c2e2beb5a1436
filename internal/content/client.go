// Package content fetches structured content from the WordPress REST API and
// normalizes it into presentation-ready models. Every page-level query
// degrades to an explicit envelope (unconfigured, or error with message)
// instead of failing the caller.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultRevalidate is the cache freshness window applied when a fetch does
// not specify one.
const DefaultRevalidate = 120 * time.Second

// errorBodyExcerptLen bounds how much of an upstream error body is embedded
// in the returned error.
const errorBodyExcerptLen = 300

// ErrNotConfigured is returned by Fetch when no base URL is set. Façade
// queries check IsConfigured first and never hit this in practice.
var ErrNotConfigured = errors.New("wordpress api is not configured")

// Config carries the content client's external configuration.
type Config struct {
	// BaseURL is the WordPress site root (WORDPRESS_BASE_URL). The REST root
	// is derived by appending /wp-json. Empty means unconfigured.
	BaseURL string
	// WriteUser and WritePassword are the application-password credentials
	// for the write path (WORDPRESS_API_USER / WORDPRESS_API_APP_PASSWORD).
	WriteUser     string
	WritePassword string
}

// FetchOptions control caching for one read.
type FetchOptions struct {
	// Revalidate is the freshness window. Zero means DefaultRevalidate.
	Revalidate time.Duration
	// Tags label the cached entry for selective invalidation.
	Tags []string
}

// Client is a caching read/write client for the WordPress REST API.
type Client struct {
	apiRoot       string
	writeUser     string
	writePassword string
	httpClient    *http.Client
	cache         *tagCache
}

// NewClient creates a Client. A Client with no base URL is valid but
// unconfigured: IsConfigured reports false and Fetch fails immediately.
func NewClient(cfg Config) *Client {
	apiRoot := ""
	if cfg.BaseURL != "" {
		apiRoot = strings.TrimRight(cfg.BaseURL, "/") + "/wp-json"
	}
	return &Client{
		apiRoot:       apiRoot,
		writeUser:     cfg.WriteUser,
		writePassword: cfg.WritePassword,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		cache:         newTagCache(),
	}
}

// IsConfigured reports whether a content source base URL is set.
func (c *Client) IsConfigured() bool {
	return c.apiRoot != ""
}

// Fetch GETs path relative to the REST root and returns the response body.
// Responses are cached for the freshness window and may be dropped earlier
// via Invalidate on one of the entry's tags.
func (c *Client) Fetch(ctx context.Context, path string, opts FetchOptions) ([]byte, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("%w: set WORDPRESS_BASE_URL in the environment", ErrNotConfigured)
	}

	if body, ok := c.cache.get(path); ok {
		return body, nil
	}

	body, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	revalidate := opts.Revalidate
	if revalidate <= 0 {
		revalidate = DefaultRevalidate
	}
	c.cache.set(path, body, revalidate, opts.Tags)

	return body, nil
}

// Write sends an authenticated mutation. The response is never cached and
// the request never reads from the cache.
func (c *Client) Write(ctx context.Context, path, method string, payload any) ([]byte, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("%w: set WORDPRESS_BASE_URL in the environment", ErrNotConfigured)
	}
	if c.writeUser == "" || c.writePassword == "" {
		return nil, errors.New("missing write credentials: set WORDPRESS_API_USER and WORDPRESS_API_APP_PASSWORD")
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode write payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, body, true)
}

// Invalidate drops every cached entry labeled with any of the given tags.
func (c *Client) Invalidate(tags ...string) {
	c.cache.invalidate(tags...)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, authenticated bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiRoot+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.SetBasicAuth(c.writeUser, c.writePassword)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wordpress request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read wordpress response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := respBody
		if len(excerpt) > errorBodyExcerptLen {
			excerpt = excerpt[:errorBodyExcerptLen]
		}
		return nil, fmt.Errorf("wordpress request failed (%d %s): %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), excerpt)
	}

	return respBody, nil
}

// fetchJSON fetches path and decodes the body into T.
func fetchJSON[T any](ctx context.Context, c *Client, path string, opts FetchOptions) (T, error) {
	var out T
	body, err := c.Fetch(ctx, path, opts)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode wordpress response: %w", err)
	}
	return out, nil
}
