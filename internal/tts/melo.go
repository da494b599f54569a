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

// meloSynthesizer talks to a MeloTTS server running on localhost. The same
// client serves the "local" selection, which is MeloTTS by convention.
type meloSynthesizer struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newMeloSynthesizer(port int, logger *zap.Logger) *meloSynthesizer {
	return &meloSynthesizer{
		baseURL:    fmt.Sprintf("http://localhost:%d/tts", port),
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger.Named("melo_synthesizer"),
	}
}

func (m *meloSynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	m.logger.Info("Synthesizing speech with local MeloTTS server", zap.String("url", m.baseURL))

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("melotts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("melotts returned status %d: %s", resp.StatusCode, string(raw))
	}

	return writeAudioFile(outputPath, resp.Body)
}
