package transcription

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	// groqBaseURL is Groq's OpenAI-compatible endpoint, served by the same
	// client as OpenAI proper.
	groqBaseURL = "https://api.groq.com/openai/v1"

	openaiWhisperModel = openai.Whisper1
	groqWhisperModel   = "whisper-large-v3"
)

// whisperTranscriber handles both OpenAI and Groq transcription; the two
// differ only in base URL and model name.
type whisperTranscriber struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func newWhisperTranscriber(apiKey, baseURL, model string, logger *zap.Logger) *whisperTranscriber {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &whisperTranscriber{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger.Named("whisper_transcriber"),
	}
}

func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	w.logger.Info("Transcribing audio file",
		zap.String("model", w.model),
		zap.String("file", audioPath),
	)

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	w.logger.Debug("Transcription completed", zap.Int("length", len(resp.Text)))

	return resp.Text, nil
}
