package docchat_test

import (
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("labels sources in retrieval order", func(t *testing.T) {
		t.Parallel()

		chunks := []docchat.Chunk{
			{Text: "Paris is the capital of France."},
			{Text: "Berlin is the capital of Germany."},
		}

		prompt := docchat.BuildPrompt(chunks, "What is the capital of France?")

		assert.Contains(t, prompt, "[Source 1]: Paris is the capital of France.")
		assert.Contains(t, prompt, "[Source 2]: Berlin is the capital of Germany.")
		assert.Contains(t, prompt, "Question: What is the capital of France?")
	})

	t.Run("separates blocks with blank lines", func(t *testing.T) {
		t.Parallel()

		chunks := []docchat.Chunk{{Text: "one"}, {Text: "two"}}

		prompt := docchat.BuildPrompt(chunks, "q")

		assert.Contains(t, prompt, "[Source 1]: one\n\n[Source 2]: two")
	})

	t.Run("keeps chunk text verbatim", func(t *testing.T) {
		t.Parallel()

		text := "line one\nline two\n\nparagraph"
		prompt := docchat.BuildPrompt([]docchat.Chunk{{Text: text}}, "q")

		assert.Contains(t, prompt, "[Source 1]: "+text)
	})

	t.Run("question is included verbatim even with no chunks", func(t *testing.T) {
		t.Parallel()

		prompt := docchat.BuildPrompt(nil, "Anything indexed?")

		assert.Contains(t, prompt, "Question: Anything indexed?")
	})
}
