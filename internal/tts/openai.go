package tts

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type openAISynthesizer struct {
	client *openai.Client
	logger *zap.Logger
}

func newOpenAISynthesizer(apiKey string, logger *zap.Logger) *openAISynthesizer {
	return &openAISynthesizer{
		client: openai.NewClient(apiKey),
		logger: logger.Named("openai_synthesizer"),
	}
}

func (o *openAISynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	o.logger.Info("Synthesizing speech with OpenAI", zap.Int("textLength", len(text)))

	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.VoiceNova,
	})
	if err != nil {
		return fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Close()

	return writeAudioFile(outputPath, resp)
}
