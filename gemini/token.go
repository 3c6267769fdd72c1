package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/docchat"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ docchat.TokenCounter = (*TokenCounter)(nil)

// TokenCounter reports corpus sizes in model tokens. Counting happens
// locally via the bundled tokenizer data, so ingest stats never spend API
// calls.
type TokenCounter struct {
	local *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter creates a TokenCounter for the given model. Fails when
// the tokenizer package has no vocabulary for the model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	local, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{local: local, model: model}, nil
}

// Model returns the model the counter tokenizes for.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens returns the number of tokens in text. Blank text counts as
// zero without consulting the tokenizer.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	result, err := tc.local.CountTokens(
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
