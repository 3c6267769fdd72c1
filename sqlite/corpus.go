package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/fwojciec/docchat"
)

// Compile-time interface verification.
var _ docchat.CorpusStore = (*CorpusStore)(nil)

// CorpusStore implements docchat.CorpusStore using SQLite. Chunk text,
// metadata, and embeddings are stored so an index can be rebuilt without
// re-embedding.
type CorpusStore struct {
	db *DB
}

// NewCorpusStore creates a new CorpusStore.
func NewCorpusStore(db *DB) *CorpusStore {
	return &CorpusStore{db: db}
}

// ReplaceCorpus atomically swaps the active corpus for the given version and
// entries. All existing threads are deleted in the same transaction because
// their conversations refer to a corpus that no longer exists.
func (s *CorpusStore) ReplaceCorpus(ctx context.Context, version, embeddingModel string, entries []docchat.IndexEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM messages`,
		`DELETE FROM threads`,
		`DELETE FROM chunks`,
		`DELETE FROM corpus`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO corpus (id, version, embedding_model, created_at)
		VALUES (1, ?, ?, ?)
	`, version, embeddingModel, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, entry := range entries {
		metadata, err := json.Marshal(entry.Chunk.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal chunk metadata: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO chunks (corpus_version, position, id, text, metadata, embedding)
			VALUES (?, ?, ?, ?, ?, ?)
		`, version, i, entry.Chunk.ID, entry.Chunk.Text, string(metadata), encodeEmbedding(entry.Embedding))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadCorpus returns the active corpus version, its embedding model, and its
// entries in build order.
func (s *CorpusStore) LoadCorpus(ctx context.Context) (string, string, []docchat.IndexEntry, error) {
	var version, embeddingModel string
	err := s.db.QueryRowContext(ctx, `
		SELECT version, embedding_model FROM corpus WHERE id = 1
	`).Scan(&version, &embeddingModel)
	if err == sql.ErrNoRows {
		return "", "", nil, docchat.Errorf(docchat.ENOTFOUND, "no documents have been ingested yet")
	}
	if err != nil {
		return "", "", nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, metadata, embedding
		FROM chunks
		WHERE corpus_version = ?
		ORDER BY position
	`, version)
	if err != nil {
		return "", "", nil, err
	}
	defer rows.Close()

	var entries []docchat.IndexEntry
	for rows.Next() {
		var (
			chunk    docchat.Chunk
			metadata string
			blob     []byte
		)
		if err := rows.Scan(&chunk.ID, &chunk.Text, &metadata, &blob); err != nil {
			return "", "", nil, err
		}
		if err := json.Unmarshal([]byte(metadata), &chunk.Metadata); err != nil {
			return "", "", nil, fmt.Errorf("failed to unmarshal chunk metadata: %w", err)
		}
		entries = append(entries, docchat.IndexEntry{Chunk: chunk, Embedding: decodeEmbedding(blob)})
	}
	if err := rows.Err(); err != nil {
		return "", "", nil, err
	}

	return version, embeddingModel, entries, nil
}

// encodeEmbedding packs a vector as little-endian float32 bits.
func encodeEmbedding(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

// decodeEmbedding unpacks a vector encoded by encodeEmbedding.
func decodeEmbedding(buf []byte) []float32 {
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return v
}
