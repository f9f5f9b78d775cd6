// Package transport wraps net/http with the behavior the client layers
// expect: JSON encoding/decoding at the boundary, a process-wide default
// Authorization header that login/logout reconfigure, and per-request header
// overrides for calls that must not depend on the in-memory session.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Client is the shared HTTP transport. The default Authorization header is
// process-wide mutable state: login sets it after credentials are durably
// persisted, logout resets it to empty.
type Client struct {
	http *http.Client

	mu            sync.RWMutex
	authorization string
}

func New(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// SetAuthorization installs "Bearer <token>" as the default Authorization
// header for subsequent requests. Callers must persist the credentials
// before calling this, so no request ever carries a token that storage does
// not yet reflect.
func (c *Client) SetAuthorization(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authorization = "Bearer " + token
}

// ClearAuthorization resets the default Authorization header to empty.
func (c *Client) ClearAuthorization() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authorization = ""
}

// Authorization returns the current default Authorization header value.
func (c *Client) Authorization() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authorization
}

// Request describes one JSON round trip. Authorization, when non-empty,
// overrides the default header for this request only.
type Request struct {
	Method        string
	URL           string
	Body          any
	Authorization string
}

// Do executes req and decodes the JSON response body into out (when out is
// non-nil and the response has a body). It returns the HTTP status code.
// Any network failure, non-2xx status, or decode failure is reported as an
// error wrapping ErrTransport.
func (c *Client) Do(ctx context.Context, req Request, out any) (int, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return 0, fmt.Errorf("%w: encode request: %v", ErrTransport, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	auth := req.Authorization
	if auth == "" {
		auth = c.Authorization()
	}
	if auth != "" {
		httpReq.Header.Set("Authorization", auth)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}
	if len(data) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return resp.StatusCode, nil
}

// Get is shorthand for a GET round trip using the default header.
func (c *Client) Get(ctx context.Context, url string, out any) (int, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url}, out)
}

// Post is shorthand for a POST round trip using the default header.
func (c *Client) Post(ctx context.Context, url string, body, out any) (int, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, URL: url, Body: body}, out)
}

// GetRaw fetches url and returns the raw response body, for non-JSON
// payloads such as the news feed.
func (c *Client) GetRaw(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}
	return data, nil
}
