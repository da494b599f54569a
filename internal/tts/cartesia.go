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
	cartesiaBytesURL = "https://api.cartesia.ai/tts/bytes"
	cartesiaVersion  = "2024-06-10"
	cartesiaModelID  = "sonic-english"
	// Barbershop Man, a Cartesia stock voice.
	cartesiaVoiceID = "a0e99841-438c-4a64-b679-ae501e7d6091"
)

type cartesiaSynthesizer struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newCartesiaSynthesizer(apiKey string, logger *zap.Logger) *cartesiaSynthesizer {
	return &cartesiaSynthesizer{
		apiKey:     apiKey,
		baseURL:    cartesiaBytesURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger.Named("cartesia_synthesizer"),
	}
}

type cartesiaRequest struct {
	ModelID      string               `json:"model_id"`
	Transcript   string               `json:"transcript"`
	Voice        cartesiaVoice        `json:"voice"`
	OutputFormat cartesiaOutputFormat `json:"output_format"`
}

type cartesiaVoice struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type cartesiaOutputFormat struct {
	Container  string `json:"container"`
	Encoding   string `json:"encoding"`
	SampleRate int    `json:"sample_rate"`
}

func (c *cartesiaSynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	payload, err := json.Marshal(cartesiaRequest{
		ModelID:    cartesiaModelID,
		Transcript: text,
		Voice:      cartesiaVoice{Mode: "id", ID: cartesiaVoiceID},
		OutputFormat: cartesiaOutputFormat{
			Container:  "mp3",
			Encoding:   "mp3",
			SampleRate: 44100,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Cartesia-Version", cartesiaVersion)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("Synthesizing speech with Cartesia", zap.Int("textLength", len(text)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cartesia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("cartesia returned status %d: %s", resp.StatusCode, string(raw))
	}

	return writeAudioFile(outputPath, resp.Body)
}
