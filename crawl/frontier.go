// Package crawl provides a bounded, domain-scoped breadth-first crawler
// that harvests content records from same-host pages.
package crawl

import (
	"sync"

	"github.com/fwojciec/docchat/bloom"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Frontier is a FIFO crawl queue with Bloom filter deduplication. A URL
// pushed once is never accepted again, whether it is still queued or has
// already been popped. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Push enqueues a URL. Returns false if the URL has already been seen.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop dequeues the oldest URL. The bool result is false when the frontier
// is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
