package llm

import "context"

// ChatModel answers one system+user prompt pair with free text.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
