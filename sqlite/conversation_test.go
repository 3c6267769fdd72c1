package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointer_LoadConversation(t *testing.T) {
	t.Parallel()

	t.Run("returns an empty conversation for an unknown thread", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		checkpoints := sqlite.NewCheckpointer(db)

		conv, err := checkpoints.LoadConversation(context.Background(), "fresh")
		require.NoError(t, err)
		assert.Equal(t, "fresh", conv.ThreadID)
		assert.Empty(t, conv.IndexVersion)
		assert.Empty(t, conv.Messages)
	})

	t.Run("round-trips a saved conversation in message order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		checkpoints := sqlite.NewCheckpointer(db)
		ctx := context.Background()

		conv := &docchat.Conversation{ThreadID: "t1", IndexVersion: "v1"}
		conv.AddUserMessage("What is the capital of France?")
		conv.AddAssistantMessage("Paris")
		conv.AddUserMessage("And of Spain?")
		conv.AddAssistantMessage("Madrid")
		require.NoError(t, checkpoints.SaveConversation(ctx, conv))

		got, err := checkpoints.LoadConversation(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", got.ThreadID)
		assert.Equal(t, "v1", got.IndexVersion)
		assert.False(t, got.UpdatedAt.IsZero())
		require.Len(t, got.Messages, 4)
		assert.Equal(t, docchat.Message{Role: docchat.RoleUser, Content: "What is the capital of France?"}, got.Messages[0])
		assert.Equal(t, docchat.Message{Role: docchat.RoleAssistant, Content: "Madrid"}, got.Messages[3])
	})
}

func TestCheckpointer_SaveConversation(t *testing.T) {
	t.Parallel()

	t.Run("saving again replaces the stored history", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		checkpoints := sqlite.NewCheckpointer(db)
		ctx := context.Background()

		conv := &docchat.Conversation{ThreadID: "t1", IndexVersion: "v1"}
		conv.AddUserMessage("first")
		conv.AddAssistantMessage("reply")
		require.NoError(t, checkpoints.SaveConversation(ctx, conv))

		conv.AddUserMessage("second")
		conv.AddAssistantMessage("another reply")
		require.NoError(t, checkpoints.SaveConversation(ctx, conv))

		got, err := checkpoints.LoadConversation(ctx, "t1")
		require.NoError(t, err)
		require.Len(t, got.Messages, 4)
		assert.Equal(t, "second", got.Messages[2].Content)
	})

	t.Run("rejects a conversation without a thread ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		checkpoints := sqlite.NewCheckpointer(db)

		err := checkpoints.SaveConversation(context.Background(), &docchat.Conversation{IndexVersion: "v1"})
		require.Error(t, err)
		assert.Equal(t, docchat.EINVALID, docchat.ErrorCode(err))
	})
}

func TestCheckpointer_ListConversations(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	checkpoints := sqlite.NewCheckpointer(db)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		conv := &docchat.Conversation{ThreadID: id, IndexVersion: "v1"}
		conv.AddUserMessage("hello from " + id)
		require.NoError(t, checkpoints.SaveConversation(ctx, conv))
	}

	conversations, err := checkpoints.ListConversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	ids := []string{conversations[0].ThreadID, conversations[1].ThreadID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
	require.Len(t, conversations[0].Messages, 1)
}
