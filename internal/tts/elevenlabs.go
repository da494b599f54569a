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
	elevenLabsBaseURL = "https://api.elevenlabs.io/v1"
	// Rachel, the ElevenLabs default voice.
	elevenLabsVoiceID = "21m00Tcm4TlvDq8ikWAM"
	elevenLabsModelID = "eleven_multilingual_v2"

	elevenLabsStability = 0.5
	elevenLabsClarity   = 0.75
)

type elevenLabsSynthesizer struct {
	apiKey     string
	baseURL    string
	voiceID    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newElevenLabsSynthesizer(apiKey string, logger *zap.Logger) *elevenLabsSynthesizer {
	return &elevenLabsSynthesizer{
		apiKey:     apiKey,
		baseURL:    elevenLabsBaseURL,
		voiceID:    elevenLabsVoiceID,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger.Named("elevenlabs_synthesizer"),
	}
}

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func (e *elevenLabsSynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	payload, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: elevenLabsModelID,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       elevenLabsStability,
			SimilarityBoost: elevenLabsClarity,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", e.baseURL, e.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	e.logger.Info("Synthesizing speech with ElevenLabs",
		zap.String("voiceID", e.voiceID),
		zap.Int("textLength", len(text)),
	)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("elevenlabs returned status %d: %s", resp.StatusCode, string(raw))
	}

	return writeAudioFile(outputPath, resp.Body)
}
