package docchat

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page body at url. The context controls timeout
	// and cancellation. Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// TextExtractor extracts readable text from an HTML page.
type TextExtractor interface {
	// ExtractText returns the page's visible text, newline-joined and
	// trimmed. An empty string means the page carries no usable content.
	ExtractText(html string) (string, error)
}

// PageParser extracts text and outbound links from an HTML page.
type PageParser interface {
	TextExtractor

	// ExtractLinks returns absolute URLs discovered in the page whose host
	// equals the host of baseURL. Relative links are resolved against
	// baseURL.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// SitemapService discovers URLs from a site's sitemap for crawl seeding.
type SitemapService interface {
	// DiscoverURLs finds URLs from the site's sitemap, checking robots.txt
	// for sitemap directives before falling back to /sitemap.xml.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Crawler harvests content records from same-domain pages reachable from a
// seed URL.
type Crawler interface {
	// Crawl performs a breadth-first traversal from seedURL, visiting at
	// most maxPages distinct URLs, and returns one content record per page
	// with usable text. Individual page failures never abort the crawl.
	Crawl(ctx context.Context, seedURL string, maxPages int) ([]ContentRecord, error)
}
