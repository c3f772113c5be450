package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"txview.app/transactions/cache"
)

const (
	DefaultTimeout  = 30 * time.Second
	RequestIDHeader = "X-Request-ID"
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Method == http.MethodGet {
		return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error! Status: %d. Body: %s", e.StatusCode, e.Body)
}

// Client performs JSON requests. GET responses are cached by URL in memory;
// other methods always go to the network.
type Client struct {
	http   *http.Client
	cache  *cache.Cache[[]byte]
	logger rlog.Ctx
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithCache(store *cache.Cache[[]byte]) Option {
	return func(c *Client) {
		if store != nil {
			c.cache = store
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: DefaultTimeout},
		logger: rlog.With("component", "httpclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.New[[]byte](cache.WithName("httpclient.cache"))
	}
	return c
}

// Get fetches url and decodes the JSON body into out. A valid cached body is
// used instead of the network when present.
func (c *Client) Get(ctx context.Context, url string, out any) error {
	body, err := c.cache.Get(ctx, url, func(ctx context.Context) ([]byte, error) {
		return c.fetch(ctx, url)
	})
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("fetch error", "method", http.MethodGet, "url", url, "error", err)
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		io.Copy(io.Discard, resp.Body)
		err := &HTTPError{Method: http.MethodGet, URL: url, StatusCode: resp.StatusCode}
		c.logger.Error("fetch error", "method", http.MethodGet, "url", url, "status", resp.StatusCode)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("fetch error", "method", http.MethodGet, "url", url, "error", err)
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("decode response from %s: invalid JSON", url)
	}

	c.logger.Info("cached data", "url", url, "bytes", len(body))
	return body, nil
}

// Post sends body as JSON. The response is decoded into out unless it is empty.
func (c *Client) Post(ctx context.Context, url string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, url, body, out)
}

// Put sends body as JSON. The response is decoded into out unless it is empty.
func (c *Client) Put(ctx context.Context, url string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, url, body, out)
}

func (c *Client) Delete(ctx context.Context, url string, out any) error {
	req, err := c.newRequest(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s %s body: %w", method, url, err)
	}

	req, err := c.newRequest(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	method, url := req.Method, req.URL.String()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request error", "method", method, "url", url, "error", err)
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		text := "N/A"
		if b, readErr := io.ReadAll(resp.Body); readErr == nil && len(b) > 0 {
			text = string(b)
		}
		err := &HTTPError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: text}
		c.logger.Error("request error", "method", method, "url", url, "status", resp.StatusCode)
		return err
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode == http.StatusNoContent || !strings.Contains(contentType, "application/json") || out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, url, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	return req, nil
}

// InvalidateCacheEntry drops the cached response for url.
func (c *Client) InvalidateCacheEntry(url string) {
	c.cache.Invalidate(url)
}

func (c *Client) ClearCache() {
	c.cache.Clear()
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
