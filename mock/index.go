package mock

import (
	"context"

	"github.com/fwojciec/docchat"
)

var _ docchat.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of docchat.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

var _ docchat.Index = (*Index)(nil)

// Index is a mock implementation of docchat.Index.
type Index struct {
	VersionFn func() string
	QueryFn   func(ctx context.Context, question string, k int) ([]docchat.Chunk, error)
}

func (i *Index) Version() string {
	return i.VersionFn()
}

func (i *Index) Query(ctx context.Context, question string, k int) ([]docchat.Chunk, error) {
	return i.QueryFn(ctx, question, k)
}

var _ docchat.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is a mock implementation of docchat.CorpusStore.
type CorpusStore struct {
	ReplaceCorpusFn func(ctx context.Context, version, embeddingModel string, entries []docchat.IndexEntry) error
	LoadCorpusFn    func(ctx context.Context) (string, string, []docchat.IndexEntry, error)
}

func (s *CorpusStore) ReplaceCorpus(ctx context.Context, version, embeddingModel string, entries []docchat.IndexEntry) error {
	return s.ReplaceCorpusFn(ctx, version, embeddingModel, entries)
}

func (s *CorpusStore) LoadCorpus(ctx context.Context) (string, string, []docchat.IndexEntry, error) {
	return s.LoadCorpusFn(ctx)
}

var _ docchat.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of docchat.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
