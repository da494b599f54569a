// Package response generates assistant replies from conversation history
// using the configured language model provider.
package response

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/verbix/go-voice-assistant/internal/config"
)

// Message roles, matching the chat completion wire format shared by every
// supported provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn of conversation history.
type Message struct {
	Role    string
	Content string
}

// Responder produces the assistant's next reply for the given history.
type Responder interface {
	Respond(ctx context.Context, messages []Message) (string, error)
}

// New returns the Responder selected by cfg.Providers.Response. Callers are
// expected to have run cfg.Validate() beforehand.
func New(cfg *config.Config, logger *zap.Logger) (Responder, error) {
	switch cfg.Providers.Response {
	case config.ProviderOpenAI:
		return newChatResponder(cfg.Credentials.OpenAIAPIKey, "", cfg.Models.OpenAI, logger), nil
	case config.ProviderGroq:
		return newChatResponder(cfg.Credentials.GroqAPIKey, groqBaseURL, cfg.Models.Groq, logger), nil
	case config.ProviderOllama:
		return newOllamaResponder(cfg.Models.Ollama, logger), nil
	case config.ProviderLocal:
		// Local models are served through Ollama; LOCAL_MODEL_PATH names the
		// model to run.
		model := cfg.LocalModelPath
		if model == "" {
			model = cfg.Models.Ollama
		}

		return newOllamaResponder(model, logger), nil
	default:
		return nil, fmt.Errorf("unknown response provider %q", cfg.Providers.Response)
	}
}
