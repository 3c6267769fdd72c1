// Package http provides HTTP-based implementations of docchat.Fetcher and
// docchat.SitemapService.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docchat"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds each page fetch.
const DefaultFetchTimeout = 10 * time.Second

// defaultUserAgent is sent with every request. Some documentation hosts
// refuse requests without a browser-like identifier.
const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 docchat/1.0"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 2 << 20 // 2 MiB

// Ensure Fetcher implements docchat.Fetcher at compile time.
var _ docchat.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs over plain HTTP. It does not execute
// JavaScript; script-rendered routes are handled by the crawler's
// hash-fragment heuristic.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the client identifier sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url, decoding the body to UTF-8 based on the
// response's declared charset. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxResponseBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
