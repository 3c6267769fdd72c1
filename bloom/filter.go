// Package bloom provides probabilistic URL membership tracking for crawl
// deduplication.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs that a crawl has already seen. False positives are
// possible (a fresh URL may be reported seen); false negatives are not, so
// a URL is never enqueued twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been seen.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}
