// Package notion is a minimal client for the Notion HTTP API, covering
// search, page metadata, and first-page block children retrieval.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/starford/ansuz/internal/apperr"
)

// Client issues authenticated requests against one Notion API base URL.
// The bearer token is guarded by a mutex so it can be rotated at runtime
// while requests are in flight.
type Client struct {
	baseURL string
	version string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a client. httpc carries the transport policy
// (timeouts live there); if nil, http.DefaultClient is used.
func NewClient(baseURL, version, token string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		version: version,
		token:   token,
		httpc:   httpc,
	}
}

// Token returns the currently active bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Configured reports whether a credential is currently set.
func (c *Client) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// SetToken replaces the bearer token. Empty tokens are ignored so a bad
// credential rotation cannot knock out a working client.
func (c *Client) SetToken(token string) {
	if token == "" {
		return
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Search runs a search query and returns the first page of results.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.do(ctx, http.MethodPost, "/search", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPage fetches page metadata by id.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var out Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BlockChildren fetches up to pageSize direct children of a block or page.
// Continuation cursors are not followed.
func (c *Client) BlockChildren(ctx context.Context, blockID string, pageSize int) (*BlockChildrenResponse, error) {
	var out BlockChildrenResponse
	path := fmt.Sprintf("/blocks/%s/children?page_size=%d", blockID, pageSize)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request and decodes the response into out. Failure
// modes map onto the apperr taxonomy: missing credential, non-2xx status,
// transport failure, or undecodable body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token == "" {
		return apperr.ErrNotConfigured
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &apperr.UnexpectedError{Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &apperr.UnexpectedError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", c.version)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &apperr.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperr.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apperr.UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &apperr.UnexpectedError{Err: err}
	}
	return nil
}
