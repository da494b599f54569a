package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// piperSynthesizer posts raw text to a Piper HTTP server, which answers with
// wav audio. The server address comes from PIPER_SERVER_URL.
type piperSynthesizer struct {
	serverURL  string
	httpClient *http.Client
	logger     *zap.Logger
}

func newPiperSynthesizer(serverURL string, logger *zap.Logger) *piperSynthesizer {
	return &piperSynthesizer{
		serverURL:  serverURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger.Named("piper_synthesizer"),
	}
}

func (p *piperSynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	if p.serverURL == "" {
		return errors.New("PIPER_SERVER_URL is not set")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.serverURL, strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	p.logger.Info("Synthesizing speech with Piper", zap.String("server", p.serverURL))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("piper request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("piper returned status %d: %s", resp.StatusCode, string(raw))
	}

	return writeAudioFile(outputPath, resp.Body)
}
