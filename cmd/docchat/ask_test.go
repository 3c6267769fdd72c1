package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docchat"
	main "github.com/fwojciec/docchat/cmd/docchat"
	"github.com/fwojciec/docchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpusStore() *mock.CorpusStore {
	return &mock.CorpusStore{
		LoadCorpusFn: func(context.Context) (string, string, []docchat.IndexEntry, error) {
			return "v1", "embed-model", []docchat.IndexEntry{
				{Chunk: docchat.Chunk{ID: "c1", Text: "Paris is the capital of France."}, Embedding: []float32{1}},
			}, nil
		},
	}
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("asks question and prints answer", func(t *testing.T) {
		t.Parallel()

		var saved *docchat.Conversation
		checkpoints := &mock.Checkpointer{
			LoadConversationFn: func(_ context.Context, threadID string) (*docchat.Conversation, error) {
				return &docchat.Conversation{ThreadID: threadID}, nil
			},
			SaveConversationFn: func(_ context.Context, conv *docchat.Conversation) error {
				saved = conv
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:            context.Background(),
			Stdout:         stdout,
			Stderr:         &bytes.Buffer{},
			Store:          corpusStore(),
			Checkpoints:    checkpoints,
			Embedder:       &mock.Embedder{EmbedFn: func(context.Context, string) ([]float32, error) { return []float32{1}, nil }},
			EmbeddingModel: "embed-model",
			Generator: &mock.Generator{GenerateFn: func(context.Context, []docchat.Message) (string, error) {
				return "Paris", nil
			}},
		}

		cmd := &main.AskCmd{Question: "What is the capital of France?", Thread: "t1", TopK: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Paris")
		require.NotNil(t, saved)
		assert.Equal(t, "v1", saved.IndexVersion)
		require.Len(t, saved.Messages, 2)
		assert.Equal(t, "What is the capital of France?", saved.Messages[0].Content)
	})

	t.Run("explains when nothing has been ingested", func(t *testing.T) {
		t.Parallel()

		store := &mock.CorpusStore{
			LoadCorpusFn: func(context.Context) (string, string, []docchat.IndexEntry, error) {
				return "", "", nil, docchat.Errorf(docchat.ENOTFOUND, "no documents have been ingested yet")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.AskCmd{Question: "anything", Thread: "t1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "docchat ingest")
	})

	t.Run("refuses to query with a mismatched embedding model", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:            context.Background(),
			Stdout:         &bytes.Buffer{},
			Stderr:         stderr,
			Store:          corpusStore(),
			EmbeddingModel: "different-model",
		}

		cmd := &main.AskCmd{Question: "anything", Thread: "t1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docchat.ECONFLICT, docchat.ErrorCode(err))
		assert.Contains(t, stderr.String(), "embedded with")
	})
}
