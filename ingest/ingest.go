// Package ingest orchestrates corpus construction: extract uploaded files,
// crawl an optional seed URL, chunk the merged records, embed them, and
// persist the result as the new active corpus.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/vector"
)

// Stats summarizes one ingestion run.
type Stats struct {
	Files   int // files processed
	Failed  int // files skipped because extraction failed
	Pages   int // crawled pages that produced records
	Records int // content records before chunking
	Chunks  int // chunks embedded and stored
	Tokens  int // token total across chunks, 0 when no counter is configured
	Version string
}

// Service builds a corpus from uploads and crawls. Replacing the corpus
// discards all existing conversation threads.
type Service struct {
	Extractors map[docchat.FileKind]docchat.Extractor
	Crawler    docchat.Crawler
	Embedder   docchat.Embedder
	Store      docchat.CorpusStore

	// EmbeddingModel is recorded alongside the corpus so a later process can
	// refuse to query with a mismatched embedder.
	EmbeddingModel string

	// Tokens is optional; when set, Stats.Tokens reports the corpus size in
	// model tokens.
	Tokens docchat.TokenCounter

	// Split configures chunking, passed through to docchat.SplitRecords.
	Split docchat.SplitOptions

	// Concurrency bounds parallel embedding calls during the index build.
	Concurrency int

	Logger *slog.Logger
}

// Ingest processes the given files and, when seedURL is non-empty, crawls up
// to maxPages pages from it. A file that fails to extract is logged and
// skipped; the rest of the batch proceeds. Returns EEMPTYCORPUS when nothing
// usable was extracted, leaving any previously active corpus in place.
func (s *Service) Ingest(ctx context.Context, files []docchat.File, seedURL string, maxPages int) (*Stats, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	stats := &Stats{}
	var records []docchat.ContentRecord

	for _, file := range files {
		extractor, ok := s.Extractors[file.Kind]
		if !ok {
			logger.Warn("skipping file of unsupported kind",
				slog.String("file", file.Name),
				slog.String("kind", string(file.Kind)),
			)
			continue
		}
		stats.Files++
		extracted, err := extractor.Extract(ctx, file)
		if err != nil {
			stats.Failed++
			logger.Warn("failed to extract file, skipping",
				slog.String("file", file.Name),
				slog.Any("error", err),
			)
			continue
		}
		records = append(records, extracted...)
	}

	if seedURL != "" {
		if s.Crawler == nil {
			return nil, docchat.Errorf(docchat.EINVALID, "no crawler configured for URL ingestion")
		}
		crawled, err := s.Crawler.Crawl(ctx, seedURL, maxPages)
		if err != nil {
			return nil, err
		}
		stats.Pages = len(crawled)
		records = append(records, crawled...)
	}

	stats.Records = len(records)

	chunks := docchat.SplitRecords(records, s.Split)
	for i := range chunks {
		chunks[i].ID = chunkID(&chunks[i])
	}
	stats.Chunks = len(chunks)

	idx, err := vector.Build(ctx, s.Embedder, chunks, vector.BuildOptions{Concurrency: s.Concurrency})
	if err != nil {
		return nil, err
	}
	stats.Version = idx.Version()

	if s.Tokens != nil {
		for _, chunk := range chunks {
			n, err := s.Tokens.CountTokens(ctx, chunk.Text)
			if err != nil {
				logger.Warn("token counting failed", slog.Any("error", err))
				stats.Tokens = 0
				break
			}
			stats.Tokens += n
		}
	}

	if err := s.Store.ReplaceCorpus(ctx, idx.Version(), s.EmbeddingModel, idx.Entries()); err != nil {
		return nil, err
	}

	logger.Info("corpus replaced",
		slog.String("version", stats.Version),
		slog.Int("records", stats.Records),
		slog.Int("chunks", stats.Chunks),
	)

	return stats, nil
}

// chunkID derives a stable identifier from the chunk's text and provenance.
// Two ingestion runs over identical inputs produce identical IDs.
func chunkID(chunk *docchat.Chunk) string {
	h := xxhash.New()
	h.WriteString(chunk.Text)
	for _, key := range []string{docchat.MetaSource, docchat.MetaFilename, docchat.MetaSourceURL, docchat.MetaChunk} {
		if v, ok := chunk.Metadata[key]; ok {
			fmt.Fprintf(h, "|%s=%v", key, v)
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
