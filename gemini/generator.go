package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/docchat"
	"google.golang.org/genai"
)

// DefaultModel is used when no generation model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements docchat.Generator at compile time.
var _ docchat.Generator = (*Generator)(nil)

// Generator implements docchat.Generator using a Gemini chat model.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model means DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate produces an assistant reply conditioned on the message history.
// The newest message must be the user turn to answer.
func (g *Generator) Generate(ctx context.Context, messages []docchat.Message) (string, error) {
	if len(messages) == 0 {
		return "", docchat.Errorf(docchat.EINVALID, "message history required")
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == docchat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, BuildConfig())
	if err != nil {
		return "", classifyAPIError(err)
	}
	if result == nil {
		return "", docchat.Errorf(docchat.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Temperature is pinned to zero so answers stay grounded in the retrieved
// context rather than varying between identical turns.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// classifyAPIError maps Gemini API failures onto the application error
// taxonomy. Quota exhaustion and transient throttling both arrive as HTTP
// 429; the distinction matters because one resolves by waiting and the
// other does not.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Code {
	case 429:
		if strings.Contains(strings.ToLower(apiErr.Message), "quota") {
			return docchat.Errorf(docchat.EQUOTA, "API quota exceeded, please check your plan and billing")
		}
		return docchat.Errorf(docchat.ERATELIMITED, "rate limited by the API, retry shortly")
	case 503:
		return docchat.Errorf(docchat.ERATELIMITED, "the API is temporarily overloaded, retry shortly")
	}
	return err
}
