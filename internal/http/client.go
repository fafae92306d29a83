package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatusError is returned when the server responds with a non-2xx status.
//
// It carries the status code so callers can distinguish, say, a 404 from
// a 429, and a short excerpt of the body for log output.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Client wraps HTTP operations for the catalog API.
//
// Client provides:
//   - Configured User-Agent header on every request
//   - Bearer-token GET requests decoded into JSON
//   - Basic-auth form POSTs (the OAuth client-credentials exchange)
//   - Raw byte downloads for cover images
//
// Example usage:
//
//	client := NewClient(60 * time.Second)
//
//	var page albumsPage
//	err := client.GetJSON(ctx, pageURL, token, &page)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with the given request timeout.
//
// A zero or negative timeout falls back to 60 seconds.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "releasewatch",
	}
}

// GetJSON performs a GET request with bearer authentication and decodes
// the JSON response body into v.
//
// Returns a *StatusError if the response status is not 2xx.
//
// Example:
//
//	var page albumsPage
//	err := client.GetJSON(ctx, "https://api.example.com/v1/...", token, &page)
func (c *Client) GetJSON(ctx context.Context, rawURL, token string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(rawURL, resp); err != nil {
		return err
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// PostForm performs a POST with a form-encoded body and Basic
// authentication, decoding the JSON response into v.
//
// user and password are sent as the Basic credentials; encoding is
// handled here. This is the shape of the OAuth client-credentials token
// exchange.
func (c *Client) PostForm(ctx context.Context, rawURL, user, password string, form url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(user, password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(rawURL, resp); err != nil {
		return err
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// DownloadBytes performs a GET request and returns the response body.
//
// Use this for small files like cover art images.
func (c *Client) DownloadBytes(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(rawURL, resp); err != nil {
		return nil, err
	}

	return io.ReadAll(resp.Body)
}

// checkStatus converts a non-2xx response into a *StatusError, reading
// at most a short excerpt of the body for diagnostics.
func checkStatus(rawURL string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	return &StatusError{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(excerpt)),
	}
}
