package docchat

import (
	"context"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a conversation's history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation holds the durable state of one chat thread. The thread ID is
// caller-supplied and opaque; IndexVersion records which corpus build the
// conversation started against.
type Conversation struct {
	ThreadID     string    `json:"threadId"`
	IndexVersion string    `json:"indexVersion"`
	Messages     []Message `json:"messages"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AddUserMessage appends a user message to the history.
func (c *Conversation) AddUserMessage(content string) {
	c.Messages = append(c.Messages, Message{Role: RoleUser, Content: content})
}

// AddAssistantMessage appends an assistant message to the history.
func (c *Conversation) AddAssistantMessage(content string) {
	c.Messages = append(c.Messages, Message{Role: RoleAssistant, Content: content})
}

// Validate returns an error if the conversation contains invalid fields.
func (c *Conversation) Validate() error {
	if c.ThreadID == "" {
		return Errorf(EINVALID, "conversation thread ID required")
	}
	if c.IndexVersion == "" {
		return Errorf(EINVALID, "conversation index version required")
	}
	return nil
}

// Checkpointer durably associates conversation state with its thread ID so
// a later turn on the same thread resumes with complete prior context.
type Checkpointer interface {
	// LoadConversation returns the conversation for threadID. A thread
	// with no prior turns returns an empty conversation (no error).
	LoadConversation(ctx context.Context, threadID string) (*Conversation, error)

	// SaveConversation persists the full conversation state.
	SaveConversation(ctx context.Context, conv *Conversation) error

	// ListConversations returns all stored conversations, most recently
	// updated first.
	ListConversations(ctx context.Context) ([]*Conversation, error)
}

// Generator produces an assistant reply conditioned on a message history.
// Quota exhaustion and transient throttling are reported with the EQUOTA
// and ERATELIMITED codes respectively so callers can tell them apart.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}
