package docchat

import (
	"fmt"
	"strings"
)

// promptPreamble instructs the model to ground its answer in the retrieved
// context.
const promptPreamble = "You are an assistant answering questions based on the provided context."

// BuildPrompt renders retrieved chunks and the user question into a single
// grounded prompt. Each chunk becomes a labeled "[Source i]" block in
// retrieval order, separated by blank lines, followed by the verbatim
// question. Chunk text is never truncated or re-ordered.
func BuildPrompt(chunks []Chunk, question string) string {
	var sb strings.Builder
	sb.WriteString(promptPreamble)
	sb.WriteString("\n\nContext:\n")
	for i, chunk := range chunks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "[Source %d]: %s", i+1, chunk.Text)
	}
	fmt.Fprintf(&sb, "\n\nQuestion: %s\n", question)
	return sb.String()
}
