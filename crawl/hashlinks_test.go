package crawl_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/docchat/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHashLinks(t *testing.T) {
	t.Parallel()

	page, err := url.Parse("https://docs.example.com/#/")
	require.NoError(t, err)

	t.Run("resolves hash-fragment tokens against the page origin", func(t *testing.T) {
		t.Parallel()

		text := "Welcome\n#/quickstart\nSome prose\n/#configuration\n"

		links := crawl.ExtractHashLinks(text, page)

		assert.Equal(t, []string{
			"https://docs.example.com#/quickstart",
			"https://docs.example.com/#configuration",
		}, links)
	})

	t.Run("ignores lines that are not hash routes", func(t *testing.T) {
		t.Parallel()

		text := "intro\nhttps://other.example.com/page\n# heading\nplain"

		assert.Empty(t, crawl.ExtractHashLinks(text, page))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		links := crawl.ExtractHashLinks("  #/guide  \n", page)

		assert.Equal(t, []string{"https://docs.example.com#/guide"}, links)
	})
}
