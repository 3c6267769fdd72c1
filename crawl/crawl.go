package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/docchat"
)

// DefaultMaxPages bounds a crawl when the caller does not specify a quota.
const DefaultMaxPages = 5

var _ docchat.Crawler = (*Crawler)(nil)

// Crawler harvests content records from same-host pages reachable from a
// seed URL via breadth-first traversal. A page counts against the quota
// once it is fetched, whether or not the fetch succeeds, so a bad page is
// never retried and termination is guaranteed.
type Crawler struct {
	Fetcher docchat.Fetcher
	Pages   docchat.PageParser

	// Fallback, if set, extracts text from pages where the element-level
	// pass finds nothing (heavily script-assembled markup).
	Fallback docchat.TextExtractor

	// Sitemaps, if set, seeds the frontier from the site's sitemap before
	// traversal. Discovery failures are non-fatal.
	Sitemaps docchat.SitemapService

	// Limiter, if set, rate limits fetches per domain.
	Limiter docchat.DomainLimiter

	Logger *slog.Logger
}

// Crawl performs the traversal and returns one content record per page with
// usable text, in visit order.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxPages int) ([]docchat.ContentRecord, error) {
	seed, err := url.Parse(seedURL)
	if err != nil || seed.Host == "" {
		return nil, docchat.Errorf(docchat.EINVALID, "invalid seed URL %q", seedURL)
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	frontier := NewFrontier()
	frontier.Push(seedURL)
	c.seedFromSitemap(ctx, seed, frontier, maxPages)

	var records []docchat.ContentRecord
	visited := 0

	for visited < maxPages {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			return records, ctx.Err()
		}

		parsed, err := url.Parse(pageURL)
		if err != nil {
			visited++
			continue
		}
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, parsed.Host); err != nil {
				return records, err
			}
		}

		html, err := c.Fetcher.Fetch(ctx, pageURL)
		visited++ // fetched pages are never retried
		if err != nil {
			c.log().Warn("page fetch failed", "url", pageURL, "error", err)
			continue
		}

		text := c.extractText(pageURL, html)

		c.discoverLinks(seed, frontier, pageURL, parsed, html, text)

		if text == "" {
			continue
		}
		records = append(records, docchat.ContentRecord{
			Text: text,
			Metadata: docchat.Metadata{
				docchat.MetaSource:    docchat.SourceWeb,
				docchat.MetaSourceURL: pageURL,
			},
		})
	}

	return records, nil
}

// extractText runs the element-level pass and falls back to the readability
// extractor when it yields nothing.
func (c *Crawler) extractText(pageURL, html string) string {
	text, err := c.Pages.ExtractText(html)
	if err != nil {
		c.log().Warn("text extraction failed", "url", pageURL, "error", err)
		text = ""
	}
	text = strings.TrimSpace(text)
	if text != "" || c.Fallback == nil {
		return text
	}

	fallback, err := c.Fallback.ExtractText(html)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(fallback)
}

// discoverLinks enqueues outbound links scoped to the seed host: DOM links
// first, then hash-fragment route tokens found in the page text.
func (c *Crawler) discoverLinks(seed *url.URL, frontier *Frontier, pageURL string, parsed *url.URL, html, text string) {
	links, err := c.Pages.ExtractLinks(html, pageURL)
	if err != nil {
		c.log().Warn("link extraction failed", "url", pageURL, "error", err)
	}
	for _, link := range links {
		if sameHost(seed, link) {
			frontier.Push(link)
		}
	}

	for _, link := range ExtractHashLinks(text, parsed) {
		if sameHost(seed, link) {
			frontier.Push(link)
		}
	}
}

// seedFromSitemap pushes same-host sitemap URLs onto the frontier, capped at
// the page quota.
func (c *Crawler) seedFromSitemap(ctx context.Context, seed *url.URL, frontier *Frontier, maxPages int) {
	if c.Sitemaps == nil {
		return
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, seed.String())
	if err != nil {
		c.log().Warn("sitemap discovery failed", "url", seed.String(), "error", err)
		return
	}
	for _, u := range urls {
		if frontier.Len() >= maxPages {
			break
		}
		if sameHost(seed, u) {
			frontier.Push(u)
		}
	}
}

func (c *Crawler) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func sameHost(seed *url.URL, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == seed.Host
}
