package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ollamaChatURL is the default address of a locally running Ollama server.
const ollamaChatURL = "http://localhost:11434/api/chat"

type ollamaResponder struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func newOllamaResponder(model string, logger *zap.Logger) *ollamaResponder {
	return &ollamaResponder{
		baseURL:    ollamaChatURL,
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger.Named("ollama_responder"),
	}
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (o *ollamaResponder) Respond(ctx context.Context, messages []Message) (string, error) {
	payload := ollamaChatRequest{
		Model:  o.model,
		Stream: false,
	}
	for _, m := range messages {
		payload.Messages = append(payload.Messages, ollamaMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	o.logger.Info("Requesting chat completion from Ollama", zap.String("model", o.model))

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(raw))
	}

	var chat ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}

	if chat.Message.Content == "" {
		return "", fmt.Errorf("ollama returned empty response")
	}

	return chat.Message.Content, nil
}
