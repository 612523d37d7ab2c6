package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetExtractor(t *testing.T) {
	for _, provider := range []string{"openai", "OpenAI", "deepseek"} {
		if _, err := GetExtractor(provider, "key"); err != nil {
			t.Errorf("GetExtractor(%q) = %v, want nil", provider, err)
		}
	}
	if _, err := GetExtractor("gemini", "key"); err == nil {
		t.Error("GetExtractor(gemini) = nil, want error")
	}
}

func TestExtract(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"comprador": {"nombre_completo": "Test Buyer"}}`}},
			},
		})
	}))
	defer server.Close()

	extractor := newChatCompletionsExtractor(server.URL, "test-model", "secret-key")
	sections, err := extractor.Extract(context.Background(), "deed text here")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization = %q, want Bearer secret-key", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model = %q, want test-model", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "deed text here" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %q, want json_object", gotReq.ResponseFormat.Type)
	}

	buyer, ok := sections["comprador"].(map[string]any)
	if !ok || buyer["nombre_completo"] != "Test Buyer" {
		t.Errorf("sections = %+v", sections)
	}
}

func TestExtractProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	extractor := newChatCompletionsExtractor(server.URL, "test-model", "bad-key")
	if _, err := extractor.Extract(context.Background(), "text"); !errors.Is(err, ErrProviderRequest) {
		t.Errorf("err = %v, want ErrProviderRequest", err)
	}
}

func TestExtractEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	extractor := newChatCompletionsExtractor(server.URL, "test-model", "key")
	if _, err := extractor.Extract(context.Background(), "text"); !errors.Is(err, ErrProviderRequest) {
		t.Errorf("err = %v, want ErrProviderRequest", err)
	}
}

func TestExtractNonJSONContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "sorry, I cannot do that"}},
			},
		})
	}))
	defer server.Close()

	extractor := newChatCompletionsExtractor(server.URL, "test-model", "key")
	if _, err := extractor.Extract(context.Background(), "text"); err == nil {
		t.Error("Extract on non-JSON content = nil, want error")
	}
}
