package response

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// chatResponder serves both OpenAI and Groq; the two differ only in base URL
// and model preset.
type chatResponder struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func newChatResponder(apiKey, baseURL, model string, logger *zap.Logger) *chatResponder {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &chatResponder{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger.Named("chat_responder"),
	}
}

func (c *chatResponder) Respond(ctx context.Context, messages []Message) (string, error) {
	c.logger.Info("Requesting chat completion",
		zap.String("model", c.model),
		zap.Int("messageCount", len(messages)),
	)

	request := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toChatMessages(messages),
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Warn("Model returned an empty response", zap.String("model", c.model))

		return "", errors.New("model returned empty response")
	}

	c.logger.Debug("Chat completion received",
		zap.Int("promptTokens", resp.Usage.PromptTokens),
		zap.Int("completionTokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

func toChatMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	return out
}
