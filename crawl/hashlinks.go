package crawl

import (
	"net/url"
	"strings"
)

// ExtractHashLinks scans page text for hash-fragment route tokens, the
// navigation scheme used by script-rendered single-page docs (for example
// "#/quickstart" on docsify sites). Tokens are resolved against the page's
// origin. This is a best-effort heuristic: DOM link discovery runs first
// and this only adds candidates the DOM pass cannot see.
func ExtractHashLinks(pageText string, pageURL *url.URL) []string {
	origin := &url.URL{Scheme: pageURL.Scheme, Host: pageURL.Host}

	var links []string
	for _, line := range strings.Split(pageText, "\n") {
		token := strings.TrimSpace(line)
		if !strings.HasPrefix(token, "#/") && !strings.HasPrefix(token, "/#") {
			continue
		}
		ref, err := url.Parse(token)
		if err != nil {
			continue
		}
		links = append(links, origin.ResolveReference(ref).String())
	}
	return links
}
