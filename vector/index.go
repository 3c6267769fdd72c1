// Package vector provides an in-memory similarity index over embedded
// chunks. An index is built once per ingested corpus and replaced wholesale
// on the next ingestion.
package vector

import (
	"context"
	"math"
	"sort"

	"github.com/fwojciec/docchat"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel embedding calls during a build.
const DefaultConcurrency = 8

// Index holds the embedded corpus and answers top-k similarity queries.
// Immutable after construction and safe for concurrent queries.
type Index struct {
	version  string
	embedder docchat.Embedder
	entries  []docchat.IndexEntry
}

var _ docchat.Index = (*Index)(nil)

// BuildOptions configure an index build.
type BuildOptions struct {
	// Concurrency bounds parallel embedding calls. Zero means
	// DefaultConcurrency.
	Concurrency int
}

// Build embeds every chunk exactly once and returns a fresh index with a new
// version. Returns EEMPTYCORPUS when there are no chunks to embed.
func Build(ctx context.Context, embedder docchat.Embedder, chunks []docchat.Chunk, opts BuildOptions) (*Index, error) {
	if len(chunks) == 0 {
		return nil, docchat.Errorf(docchat.EEMPTYCORPUS, "no content could be extracted from the provided sources")
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	entries := make([]docchat.IndexEntry, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			embedding, err := embedder.Embed(gctx, chunk.Text)
			if err != nil {
				return err
			}
			entries[i] = docchat.IndexEntry{Chunk: chunk, Embedding: embedding}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Index{
		version:  uuid.New().String(),
		embedder: embedder,
		entries:  entries,
	}, nil
}

// Load reconstructs an index from previously persisted entries, keeping the
// version they were built under.
func Load(version string, embedder docchat.Embedder, entries []docchat.IndexEntry) *Index {
	return &Index{version: version, embedder: embedder, entries: entries}
}

// Version identifies the build this index came from.
func (idx *Index) Version() string {
	return idx.version
}

// Entries exposes the embedded corpus for persistence.
func (idx *Index) Entries() []docchat.IndexEntry {
	return idx.entries
}

// Query embeds the question once and returns the k most similar chunks in
// descending cosine-similarity order. A k <= 0 means DefaultTopK; a k larger
// than the corpus returns every chunk.
func (idx *Index) Query(ctx context.Context, question string, k int) ([]docchat.Chunk, error) {
	if k <= 0 {
		k = docchat.DefaultTopK
	}
	query, err := idx.embedder.Embed(ctx, question)
	if err != nil {
		return nil, err
	}

	type scored struct {
		chunk docchat.Chunk
		score float64
	}
	ranked := make([]scored, 0, len(idx.entries))
	for _, entry := range idx.entries {
		ranked = append(ranked, scored{
			chunk: entry.Chunk,
			score: cosineSimilarity(query, entry.Embedding),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if k > len(ranked) {
		k = len(ranked)
	}
	chunks := make([]docchat.Chunk, 0, k)
	for _, s := range ranked[:k] {
		chunks = append(chunks, s.chunk)
	}
	return chunks, nil
}

// cosineSimilarity returns the cosine of the angle between a and b, or 0
// when either vector is zero-length or all-zero.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
