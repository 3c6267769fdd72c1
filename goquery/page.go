// Package goquery provides HTML page parsing: visible-text extraction from
// content-bearing elements and same-host link discovery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docchat"
)

// contentSelector matches the content-bearing elements whose text makes up
// a page's record: headings, paragraphs, and list items, in document order.
const contentSelector = "h1, h2, h3, h4, h5, h6, p, li"

// Ensure Parser implements docchat.PageParser at compile time.
var _ docchat.PageParser = (*Parser)(nil)

// Parser extracts text and links from HTML using CSS selectors.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ExtractText returns the visible text of the page's content-bearing
// elements, newline-joined in document order and trimmed. Nested list items
// contribute their own text once; containers whose text is blank are
// skipped.
func (p *Parser) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docchat.Errorf(docchat.EINVALID, "failed to parse HTML: %v", err)
	}

	var parts []string
	doc.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.Is("p, li") && sel.Find("p, li, h1, h2, h3, h4, h5, h6").Length() > 0 {
			// Text of nested elements is collected when they are visited.
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// ExtractLinks returns the absolute form of every anchor href on the page
// whose host equals the host of baseURL, deduplicated in document order.
func (p *Parser) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docchat.Errorf(docchat.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docchat.Errorf(docchat.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) {
			return
		}
		if !seen[resolved] {
			seen[resolved] = true
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves href against base and strips the fragment. Returns ""
// for self-referential links.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// Exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
