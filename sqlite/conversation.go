package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/docchat"
)

// Compile-time interface verification.
var _ docchat.Checkpointer = (*Checkpointer)(nil)

// Checkpointer implements docchat.Checkpointer using SQLite.
type Checkpointer struct {
	db *DB
}

// NewCheckpointer creates a new Checkpointer.
func NewCheckpointer(db *DB) *Checkpointer {
	return &Checkpointer{db: db}
}

// LoadConversation returns the conversation for threadID. A thread with no
// prior turns yields an empty conversation, not an error.
func (c *Checkpointer) LoadConversation(ctx context.Context, threadID string) (*docchat.Conversation, error) {
	conv := &docchat.Conversation{ThreadID: threadID}

	var updatedAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT corpus_version, updated_at FROM threads WHERE id = ?
	`, threadID).Scan(&conv.IndexVersion, &updatedAt)
	if err == sql.ErrNoRows {
		return conv, nil
	}
	if err != nil {
		return nil, err
	}
	conv.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT role, content FROM messages WHERE thread_id = ? ORDER BY position
	`, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var msg docchat.Message
		if err := rows.Scan(&msg.Role, &msg.Content); err != nil {
			return nil, err
		}
		conv.Messages = append(conv.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conv, nil
}

// SaveConversation persists the full conversation state, replacing any
// previously stored history for the thread.
func (c *Checkpointer) SaveConversation(ctx context.Context, conv *docchat.Conversation) error {
	if err := conv.Validate(); err != nil {
		return err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	conv.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO threads (id, corpus_version, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET corpus_version = excluded.corpus_version, updated_at = excluded.updated_at
	`, conv.ThreadID, conv.IndexVersion, now.Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE thread_id = ?`, conv.ThreadID); err != nil {
		return err
	}
	for i, msg := range conv.Messages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO messages (thread_id, position, role, content)
			VALUES (?, ?, ?, ?)
		`, conv.ThreadID, i, msg.Role, msg.Content)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListConversations returns all stored conversations, most recently updated
// first.
func (c *Checkpointer) ListConversations(ctx context.Context) ([]*docchat.Conversation, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id FROM threads ORDER BY updated_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	conversations := make([]*docchat.Conversation, 0, len(ids))
	for _, id := range ids {
		conv, err := c.LoadConversation(ctx, id)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}
