package composer

import (
	"fmt"

	"github.com/finuxhq/docqa/internal/llm"
)

const groundedSystemPrompt = `You are a support assistant for a financial services product. Answer the user's question using only the documentation excerpts supplied in the context. If the context does not contain the answer, say so explicitly instead of guessing. Keep answers short and factual.`

const fallbackSystemPrompt = `You are a support assistant for a financial services product. The documentation has no entry for this question, so answer from general knowledge, briefly, and make clear when something may vary by institution.`

func groundedMessages(question, context string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: groundedSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Context:\n%s\n\nQuestion: %s", context, question)},
	}
}

func fallbackMessages(question string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: fallbackSystemPrompt},
		{Role: llm.RoleUser, Content: question},
	}
}
