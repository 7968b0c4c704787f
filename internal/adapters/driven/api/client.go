// Package api implements the driven port to the knowledge-base HTTP
// API: query submission, document listing and URL construction.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate is the proactive throttle rate (requests/sec).
	// The backend runs an LLM per query, so the client avoids
	// hammering it even when the user or poller asks for more.
	ProactiveRate = 4
)

// Ensure Client implements the interface.
var _ driven.KnowledgeBaseClient = (*Client)(nil)

// Client talks to the knowledge-base API at a fixed base address.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client for the given base address, e.g.
// "http://localhost:8000".
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = domain.DefaultServerURL
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url: %q", baseURL)
	}

	return &Client{
		base:    base,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}, nil
}

// NewClientWithHTTPClient creates a client with a custom http.Client.
// Useful for testing against httptest servers.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	c, err := NewClient(baseURL)
	if err != nil {
		return nil, err
	}
	c.http = httpClient
	return c, nil
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// SubmitQuery posts the query text and decodes the server response.
// No blank-checking happens here; callers guard empty input.
func (c *Client) SubmitQuery(ctx context.Context, text string) (*domain.QueryResponse, error) {
	body, err := json.Marshal(map[string]string{"query": text})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	var resp domain.QueryResponse
	if err := c.do(ctx, http.MethodPost, "/query", bytes.NewReader(body), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListDocuments fetches the current document listing.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var wire []documentInfo
	if err := c.do(ctx, http.MethodGet, "/documents", nil, &wire); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, len(wire))
	for i := range wire {
		docs[i] = wire[i].toDomain()
	}
	return docs, nil
}

// DownloadURL builds the download address for a filename. The
// filename is percent-encoded; source filenames are not guaranteed to
// be URL-safe.
func (c *Client) DownloadURL(filename string) string {
	return c.base.String() + "/download/" + url.PathEscape(filename)
}

// ViewURL builds the inline-view address for a filename.
func (c *Client) ViewURL(filename string) string {
	return c.base.String() + "/view/" + url.PathEscape(filename)
}

// do issues one request and decodes a JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("throttle wait: %w", err)
	}

	reqURL := c.base.String() + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp, reqURL)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// documentInfo is the wire shape of one document listing entry.
// last_modified arrives as a stringified Unix mtime and is optional.
type documentInfo struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	LastModified string `json:"last_modified"`
}

func (d documentInfo) toDomain() domain.Document {
	doc := domain.Document{
		Filename: d.Filename,
		Path:     d.Path,
	}
	if d.LastModified != "" {
		if secs, err := strconv.ParseFloat(d.LastModified, 64); err == nil {
			doc.LastModified = time.Unix(int64(secs), 0)
		}
	}
	return doc
}
