package mock

import (
	"context"

	"github.com/fwojciec/docchat"
)

var _ docchat.Generator = (*Generator)(nil)

// Generator is a mock implementation of docchat.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, messages []docchat.Message) (string, error)
}

func (g *Generator) Generate(ctx context.Context, messages []docchat.Message) (string, error) {
	return g.GenerateFn(ctx, messages)
}

var _ docchat.Checkpointer = (*Checkpointer)(nil)

// Checkpointer is a mock implementation of docchat.Checkpointer.
type Checkpointer struct {
	LoadConversationFn  func(ctx context.Context, threadID string) (*docchat.Conversation, error)
	SaveConversationFn  func(ctx context.Context, conv *docchat.Conversation) error
	ListConversationsFn func(ctx context.Context) ([]*docchat.Conversation, error)
}

func (c *Checkpointer) LoadConversation(ctx context.Context, threadID string) (*docchat.Conversation, error) {
	return c.LoadConversationFn(ctx, threadID)
}

func (c *Checkpointer) SaveConversation(ctx context.Context, conv *docchat.Conversation) error {
	return c.SaveConversationFn(ctx, conv)
}

func (c *Checkpointer) ListConversations(ctx context.Context) ([]*docchat.Conversation, error) {
	return c.ListConversationsFn(ctx)
}

var _ docchat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docchat.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, file docchat.File) ([]docchat.ContentRecord, error)
}

func (e *Extractor) Extract(ctx context.Context, file docchat.File) ([]docchat.ContentRecord, error) {
	return e.ExtractFn(ctx, file)
}
