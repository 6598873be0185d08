package llm

import (
	"context"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// StaticProvider returns a canned response. It backs the insight endpoints
// when no API key is configured and stands in for real providers in tests.
type StaticProvider struct {
	Response string
	Err      error

	// LastPrompt records the most recent call for assertions.
	LastPrompt       string
	LastSystemPrompt string
}

func (p *StaticProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	p.LastPrompt = prompt
	p.LastSystemPrompt = systemPrompt
	if p.Err != nil {
		return "", p.Err
	}
	return p.Response, nil
}

func (p *StaticProvider) AdaptInstructions(raw string) string {
	return raw
}
