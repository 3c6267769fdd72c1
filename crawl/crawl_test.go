package crawl_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/crawl"
	"github.com/fwojciec/docchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// site maps URLs to (text, links) for a fake fetch/parse pair. The fetched
// "HTML" is the URL itself so the parser can look pages up.
type site struct {
	mu      sync.Mutex
	fetched []string
	text    map[string]string
	links   map[string][]string
	fail    map[string]bool
}

func (s *site) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			s.mu.Lock()
			s.fetched = append(s.fetched, url)
			s.mu.Unlock()
			if s.fail[url] {
				return "", fmt.Errorf("HTTP 500 for %s", url)
			}
			return url, nil
		},
	}
}

func (s *site) parser() *mock.PageParser {
	return &mock.PageParser{
		ExtractTextFn: func(html string) (string, error) {
			return s.text[html], nil
		},
		ExtractLinksFn: func(html string, _ string) ([]string, error) {
			return s.links[html], nil
		},
	}
}

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("seed with no outbound links yields at most one record and terminates", func(t *testing.T) {
		t.Parallel()

		s := &site{
			text: map[string]string{"https://example.com": "Welcome to the site"},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Pages: s.parser()}

		records, err := c.Crawl(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Welcome to the site", records[0].Text)
		assert.Equal(t, docchat.SourceWeb, records[0].Metadata[docchat.MetaSource])
		assert.Equal(t, "https://example.com", records[0].Metadata[docchat.MetaSourceURL])
	})

	t.Run("visits at most maxPages distinct URLs", func(t *testing.T) {
		t.Parallel()

		s := &site{text: map[string]string{}, links: map[string][]string{}}
		// A chain of pages, each linking to the next.
		for i := 0; i < 20; i++ {
			url := fmt.Sprintf("https://example.com/p%d", i)
			s.text[url] = fmt.Sprintf("page %d", i)
			s.links[url] = []string{fmt.Sprintf("https://example.com/p%d", i+1)}
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Pages: s.parser()}

		records, err := c.Crawl(context.Background(), "https://example.com/p0", 3)

		require.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Len(t, s.fetched, 3)
	})

	t.Run("never revisits a URL", func(t *testing.T) {
		t.Parallel()

		s := &site{
			text: map[string]string{
				"https://example.com/a": "a",
				"https://example.com/b": "b",
			},
			links: map[string][]string{
				// a and b link to each other; the cycle must not loop.
				"https://example.com/a": {"https://example.com/b", "https://example.com/a"},
				"https://example.com/b": {"https://example.com/a"},
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Pages: s.parser()}

		records, err := c.Crawl(context.Background(), "https://example.com/a", 10)

		require.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, s.fetched)
	})

	t.Run("never enqueues a URL on a different host", func(t *testing.T) {
		t.Parallel()

		s := &site{
			text: map[string]string{"https://example.com": "home"},
			links: map[string][]string{
				"https://example.com": {"https://evil.example.org/a", "https://example.com/sub"},
			},
		}
		s.text["https://example.com/sub"] = "sub"
		c := &crawl.Crawler{Fetcher: s.fetcher(), Pages: s.parser()}

		_, err := c.Crawl(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		assert.NotContains(t, s.fetched, "https://evil.example.org/a")
		assert.Contains(t, s.fetched, "https://example.com/sub")
	})

	t.Run("a failed fetch is counted as visited and the crawl continues", func(t *testing.T) {
		t.Parallel()

		s := &site{
			text: map[string]string{
				"https://example.com":   "home",
				"https://example.com/b": "b",
			},
			links: map[string][]string{
				"https://example.com": {"https://example.com/bad", "https://example.com/b"},
			},
			fail: map[string]bool{"https://example.com/bad": true},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Pages: s.parser()}

		records, err := c.Crawl(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		assert.Len(t, records, 2)
		// The bad URL was fetched exactly once.
		count := 0
		for _, u := range s.fetched {
			if u == "https://example.com/bad" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("pages with no usable text are visited but emit no record", func(t *testing.T) {
		t.Parallel()

		s := &site{
			text: map[string]string{"https://example.com": "   \n  "},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Pages: s.parser()}

		records, err := c.Crawl(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("falls back to the readability extractor on empty pages", func(t *testing.T) {
		t.Parallel()

		s := &site{text: map[string]string{"https://example.com": ""}}
		c := &crawl.Crawler{
			Fetcher: s.fetcher(),
			Pages:   s.parser(),
			Fallback: &mock.TextExtractor{
				ExtractTextFn: func(_ string) (string, error) {
					return "recovered content", nil
				},
			},
		}

		records, err := c.Crawl(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "recovered content", records[0].Text)
	})

	t.Run("follows hash-fragment routes found in page text", func(t *testing.T) {
		t.Parallel()

		s := &site{
			text: map[string]string{
				"https://docs.example.com/#/":          "Intro\n#/quickstart",
				"https://docs.example.com#/quickstart": "Quickstart guide",
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Pages: s.parser()}

		records, err := c.Crawl(context.Background(), "https://docs.example.com/#/", 10)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Quickstart guide", records[1].Text)
	})

	t.Run("seeds the frontier from the sitemap when configured", func(t *testing.T) {
		t.Parallel()

		s := &site{
			text: map[string]string{
				"https://example.com":      "home",
				"https://example.com/docs": "docs",
			},
		}
		c := &crawl.Crawler{
			Fetcher: s.fetcher(),
			Pages:   s.parser(),
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
					return []string{"https://example.com/docs", "https://other.example.org/x"}, nil
				},
			},
		}

		records, err := c.Crawl(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		assert.Len(t, records, 2)
		assert.NotContains(t, s.fetched, "https://other.example.org/x")
	})

	t.Run("sitemap discovery failure is non-fatal", func(t *testing.T) {
		t.Parallel()

		s := &site{text: map[string]string{"https://example.com": "home"}}
		c := &crawl.Crawler{
			Fetcher: s.fetcher(),
			Pages:   s.parser(),
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
					return nil, fmt.Errorf("HTTP 404")
				},
			},
		}

		records, err := c.Crawl(context.Background(), "https://example.com", 10)

		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("rejects an invalid seed URL", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{Fetcher: (&site{}).fetcher(), Pages: (&site{}).parser()}

		_, err := c.Crawl(context.Background(), "not a url", 10)

		require.Error(t, err)
		assert.Equal(t, docchat.EINVALID, docchat.ErrorCode(err))
	})
}
