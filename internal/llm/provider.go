// Package llm abstracts over the chat-completion backends used to phrase
// answers. The service works from retrieved context; the model only
// rephrases, so any of the supported providers is interchangeable.
package llm

import "context"

// Provider defines the interface for LLM providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
