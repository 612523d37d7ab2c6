// Package extraction calls an AI provider to turn raw deed text into the
// section maps the normalizer consumes. Both supported providers speak the
// OpenAI chat-completions dialect; only endpoint and model differ.
package extraction

import (
	"context"
	"fmt"
	"strings"
)

// Extractor extracts structured deed data from plain text.
type Extractor interface {
	Extract(ctx context.Context, deedText string) (map[string]any, error)
}

// GetExtractor returns the extractor for the requested provider. The API key
// is the end user's own; it is never persisted.
func GetExtractor(provider, apiKey string) (Extractor, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return newChatCompletionsExtractor(openAIEndpoint, openAIModel, apiKey), nil
	case "deepseek":
		return newChatCompletionsExtractor(deepSeekEndpoint, deepSeekModel, apiKey), nil
	default:
		return nil, fmt.Errorf("no extractor available for provider: %s", provider)
	}
}
