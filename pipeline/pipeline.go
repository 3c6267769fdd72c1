// Package pipeline runs one conversation turn as a fixed retrieve, format,
// generate sequence with durable per-thread checkpointing.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/docchat"
)

// Pipeline answers user questions against the active index. The retrieved
// chunks and the assembled prompt exist only for the duration of one turn;
// the durable history holds the raw question and the reply.
type Pipeline struct {
	Index       docchat.Index
	Generator   docchat.Generator
	Checkpoints docchat.Checkpointer

	// TopK bounds retrieval per turn. Zero means docchat.DefaultTopK.
	TopK int

	Logger *slog.Logger
}

// NewPipeline creates a Pipeline with the given collaborators.
func NewPipeline(index docchat.Index, generator docchat.Generator, checkpoints docchat.Checkpointer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Index:       index,
		Generator:   generator,
		Checkpoints: checkpoints,
		Logger:      logger,
	}
}

// Converse runs one turn for the thread and returns the assistant reply.
//
// A failed turn leaves the stored conversation exactly as it was before the
// attempt; only a fully successful turn appends the user question and the
// reply. A thread started against an older index version is rejected with
// ECONFLICT because its context refers to chunks that no longer exist.
func (p *Pipeline) Converse(ctx context.Context, threadID, userText string) (string, error) {
	if threadID == "" {
		return "", docchat.Errorf(docchat.EINVALID, "thread ID required")
	}
	if strings.TrimSpace(userText) == "" {
		return "", docchat.Errorf(docchat.EINVALID, "question required")
	}

	conv, err := p.Checkpoints.LoadConversation(ctx, threadID)
	if err != nil {
		return "", err
	}
	if conv.IndexVersion != "" && conv.IndexVersion != p.Index.Version() {
		return "", docchat.Errorf(docchat.ECONFLICT, "this conversation belongs to a previous document set, start a new thread")
	}

	// Retrieve.
	chunks, err := p.Index.Query(ctx, userText, p.TopK)
	if err != nil {
		return "", err
	}

	// Format.
	prompt := docchat.BuildPrompt(chunks, userText)

	// Generate against the prior history plus the assembled prompt as the
	// newest user turn. The prompt itself is never persisted.
	history := make([]docchat.Message, 0, len(conv.Messages)+1)
	history = append(history, conv.Messages...)
	history = append(history, docchat.Message{Role: docchat.RoleUser, Content: prompt})

	reply, err := p.Generator.Generate(ctx, history)
	if err != nil {
		p.Logger.Warn("turn failed, conversation preserved",
			slog.String("thread_id", threadID),
			slog.String("code", docchat.ErrorCode(err)),
		)
		return "", err
	}

	conv.IndexVersion = p.Index.Version()
	conv.AddUserMessage(userText)
	conv.AddAssistantMessage(reply)
	if err := p.Checkpoints.SaveConversation(ctx, conv); err != nil {
		return "", err
	}

	return reply, nil
}
