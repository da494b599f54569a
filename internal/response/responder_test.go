package response

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/verbix/go-voice-assistant/internal/config"
)

func testConfig(provider string) *config.Config {
	cfg := &config.Config{}
	cfg.Providers.Response = provider
	cfg.Models.OpenAI = "gpt-4o"
	cfg.Models.Groq = "llama3-8b-8192"
	cfg.Models.Ollama = "llama3:8b"
	cfg.Credentials.OpenAIAPIKey = "sk-test"
	cfg.Credentials.GroqAPIKey = "gsk-test"
	return cfg
}

func TestNew(t *testing.T) {
	logger := zap.NewNop()

	t.Run("OpenAI", func(t *testing.T) {
		responder, err := New(testConfig(config.ProviderOpenAI), logger)
		require.NoError(t, err)
		require.IsType(t, &chatResponder{}, responder)
		assert.Equal(t, "gpt-4o", responder.(*chatResponder).model)
	})

	t.Run("Groq", func(t *testing.T) {
		responder, err := New(testConfig(config.ProviderGroq), logger)
		require.NoError(t, err)
		require.IsType(t, &chatResponder{}, responder)
		assert.Equal(t, "llama3-8b-8192", responder.(*chatResponder).model)
	})

	t.Run("Ollama", func(t *testing.T) {
		responder, err := New(testConfig(config.ProviderOllama), logger)
		require.NoError(t, err)
		require.IsType(t, &ollamaResponder{}, responder)
		assert.Equal(t, "llama3:8b", responder.(*ollamaResponder).model)
	})

	t.Run("LocalUsesModelPath", func(t *testing.T) {
		cfg := testConfig(config.ProviderLocal)
		cfg.LocalModelPath = "custom-model"

		responder, err := New(cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, "custom-model", responder.(*ollamaResponder).model)
	})

	t.Run("LocalFallsBackToOllamaPreset", func(t *testing.T) {
		responder, err := New(testConfig(config.ProviderLocal), logger)
		require.NoError(t, err)
		assert.Equal(t, "llama3:8b", responder.(*ollamaResponder).model)
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		_, err := New(testConfig("bard"), logger)
		assert.ErrorContains(t, err, "bard")
	})
}

func TestOllamaRespond(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req ollamaChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "llama3:8b", req.Model)
			assert.False(t, req.Stream)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, RoleUser, req.Messages[1].Role)

			_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"hi there"}}`))
		}))
		defer server.Close()

		o := newOllamaResponder("llama3:8b", zap.NewNop())
		o.baseURL = server.URL

		reply, err := o.Respond(context.Background(), []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: "hello"},
		})
		require.NoError(t, err)
		assert.Equal(t, "hi there", reply)
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer server.Close()

		o := newOllamaResponder("missing", zap.NewNop())
		o.baseURL = server.URL

		_, err := o.Respond(context.Background(), []Message{{Role: RoleUser, Content: "hello"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("EmptyReply", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":""}}`))
		}))
		defer server.Close()

		o := newOllamaResponder("llama3:8b", zap.NewNop())
		o.baseURL = server.URL

		_, err := o.Respond(context.Background(), []Message{{Role: RoleUser, Content: "hello"}})
		assert.ErrorContains(t, err, "empty")
	})
}

func TestToChatMessages(t *testing.T) {
	messages := toChatMessages([]Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hi"},
	})
	require.Len(t, messages, 2)
	assert.Equal(t, RoleSystem, messages[0].Role)
	assert.Equal(t, "hi", messages[1].Content)
}
