// Package api is the gateway client for the remote food-ordering API.
// Every call sends and expects JSON, normalizes the permissive
// response envelope immediately, and never retries; callers decide on
// retry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"food-admin/models"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond caps the request rate; zero disables pacing.
	RequestsPerSecond float64
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "food-admin/1.0",
		},
	}
	if cfg.RequestsPerSecond > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return client, nil
}

// BaseURL returns the client's base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes one request and returns the raw response body. Non-2xx
// statuses become a *RequestError carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u, err := c.buildURL(path)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, raw),
		}
	}
	return raw, nil
}

func (c *Client) buildURL(path string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	ref, err := base.Parse(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return ref.String(), nil
}

// decode unwraps the response envelope and unmarshals into T. An
// empty or non-JSON success body yields the zero value, not an error.
func decode[T any](raw []byte, wrapKeys ...string) T {
	var v T
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return v
	}
	inner := models.Unwrap(raw, wrapKeys...)
	if err := json.Unmarshal(inner, &v); err != nil {
		var zero T
		return zero
	}
	return v
}
