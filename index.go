package docchat

import "context"

// DefaultTopK is the number of chunks retrieved per query.
const DefaultTopK = 5

// Embedder converts text into a fixed-length vector. The same embedder (and
// model) must be used at index-build time and at query time for similarity
// comparison to be valid.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// IndexEntry pairs a chunk with its embedding. Entries are created at
// index-build time, owned by the index, and immutable thereafter.
type IndexEntry struct {
	Chunk     Chunk
	Embedding []float32
}

// Index is a similarity-searchable view over an embedded corpus. An index
// is immutable after construction and safe for concurrent queries; a new
// upload triggers a full rebuild and replacement, never an in-place update.
type Index interface {
	// Version identifies the build this index came from. Conversations are
	// tagged with the version they started against.
	Version() string

	// Query embeds the question once and returns the k most similar chunks
	// in descending similarity order. A k <= 0 means DefaultTopK.
	Query(ctx context.Context, question string, k int) ([]Chunk, error)
}

// CorpusStore durably persists the embedded corpus. Exactly one corpus is
// active at a time; replacing it discards all conversation state.
type CorpusStore interface {
	// ReplaceCorpus atomically swaps the active corpus for the given
	// version and entries, deleting all existing threads.
	ReplaceCorpus(ctx context.Context, version, embeddingModel string, entries []IndexEntry) error

	// LoadCorpus returns the active corpus version, its embedding model,
	// and its entries. Returns ENOTFOUND when no corpus has been ingested.
	LoadCorpus(ctx context.Context) (version, embeddingModel string, entries []IndexEntry, err error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
