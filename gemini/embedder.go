// Package gemini implements embedding, generation, and token counting on
// top of the Google Gemini API.
package gemini

import (
	"context"

	"github.com/fwojciec/docchat"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is used when no embedding model is configured.
const DefaultEmbeddingModel = "gemini-embedding-001"

// Ensure Embedder implements docchat.Embedder at compile time.
var _ docchat.Embedder = (*Embedder)(nil)

// Embedder implements docchat.Embedder using a Gemini embedding model. The
// same model must be used to embed the corpus and the queries against it.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model means
// DefaultEmbeddingModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model}
}

// Model returns the embedding model identifier.
func (e *Embedder) Model() string {
	return e.model
}

// Embed converts text into a fixed-length vector.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	result, err := e.client.Models.EmbedContent(ctx, e.model,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return nil, classifyAPIError(err)
	}
	if result == nil || len(result.Embeddings) == 0 {
		return nil, docchat.Errorf(docchat.EINTERNAL, "gemini returned no embedding")
	}
	return result.Embeddings[0].Values, nil
}
