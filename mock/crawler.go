// Package mock provides function-field test doubles for docchat interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/docchat"
)

var _ docchat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docchat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ docchat.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of docchat.PageParser.
type PageParser struct {
	ExtractTextFn  func(html string) (string, error)
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (p *PageParser) ExtractText(html string) (string, error) {
	return p.ExtractTextFn(html)
}

func (p *PageParser) ExtractLinks(html string, baseURL string) ([]string, error) {
	if p.ExtractLinksFn == nil {
		return nil, nil
	}
	return p.ExtractLinksFn(html, baseURL)
}

var _ docchat.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of docchat.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ docchat.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docchat.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

var _ docchat.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of docchat.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seedURL string, maxPages int) ([]docchat.ContentRecord, error)
}

func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxPages int) ([]docchat.ContentRecord, error) {
	return c.CrawlFn(ctx, seedURL, maxPages)
}
