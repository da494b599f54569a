package tts

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

const (
	deepgramSpeakURL = "https://api.deepgram.com/v1/speak"
	deepgramVoice    = "aura-asteria-en"
)

type deepgramSynthesizer struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newDeepgramSynthesizer(apiKey string, logger *zap.Logger) *deepgramSynthesizer {
	return &deepgramSynthesizer{
		apiKey:     apiKey,
		baseURL:    deepgramSpeakURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger.Named("deepgram_synthesizer"),
	}
}

func (d *deepgramSynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?model=%s", d.baseURL, deepgramVoice)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	d.logger.Info("Synthesizing speech with Deepgram", zap.Int("textLength", len(text)))

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deepgram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("deepgram returned status %d: %s", resp.StatusCode, string(raw))
	}

	return writeAudioFile(outputPath, resp.Body)
}
