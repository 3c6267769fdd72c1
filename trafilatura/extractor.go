// Package trafilatura provides a readability-style fallback text extractor
// for pages whose content lives outside ordinary content elements.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/docchat"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements docchat.TextExtractor at compile time.
var _ docchat.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content text from HTML,
// removing boilerplate (navigation, footers, sidebars).
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the page's main content as plain text.
func (e *Extractor) ExtractText(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
