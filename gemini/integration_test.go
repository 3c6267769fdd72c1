//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newClient(t *testing.T) (*genai.Client, context.Context) {
	t.Helper()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)
	return client, ctx
}

func TestEmbedder_Integration_ReturnsVector(t *testing.T) {
	t.Parallel()

	client, ctx := newClient(t)
	embedder := gemini.NewEmbedder(client, "")

	vector, err := embedder.Embed(ctx, "The capital of France is Paris.")

	require.NoError(t, err)
	assert.NotEmpty(t, vector)
}

func TestGenerator_Integration_ReturnsAnswer(t *testing.T) {
	t.Parallel()

	client, ctx := newClient(t)
	generator := gemini.NewGenerator(client, "")

	answer, err := generator.Generate(ctx, []docchat.Message{
		{Role: docchat.RoleUser, Content: "Reply with the single word: pong"},
	})

	require.NoError(t, err)
	assert.Contains(t, answer, "pong")
}
