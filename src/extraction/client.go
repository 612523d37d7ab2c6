package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/username/modelia/backend/src/logger"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	openAIModel    = "gpt-4o"

	deepSeekEndpoint = "https://api.deepseek.com/v1/chat/completions"
	deepSeekModel    = "deepseek-chat"

	requestTimeout = 60 * time.Second

	// Low temperature: extraction should be deterministic, not creative.
	extractionTemperature = 0.1
)

// ErrProviderRequest wraps non-200 responses from the AI provider.
var ErrProviderRequest = errors.New("ai provider request failed")

type chatCompletionsExtractor struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

func newChatCompletionsExtractor(endpoint, model, apiKey string) *chatCompletionsExtractor {
	return &chatCompletionsExtractor{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (e *chatCompletionsExtractor) Extract(ctx context.Context, deedText string) (map[string]any, error) {
	reqBody := chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt()},
			{Role: "user", Content: deedText},
		},
		Temperature: extractionTemperature,
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	logger.L.Info("Sending extraction request to AI provider", "endpoint", e.endpoint, "model", e.model)
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.L.Error("AI provider returned error status", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: status %d", ErrProviderRequest, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: response contained no choices", ErrProviderRequest)
	}

	var sections map[string]any
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &sections); err != nil {
		return nil, fmt.Errorf("decoding extracted JSON content: %w", err)
	}

	logger.L.Info("Extraction successful", "sections", sectionNames(sections))
	return sections, nil
}

func sectionNames(sections map[string]any) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	return names
}
