package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// fastWhisperURL is the default address of a locally running FastWhisperAPI
// server. The server requires a bearer token but accepts any value by default.
const (
	fastWhisperURL   = "http://localhost:8000/v1/transcriptions"
	fastWhisperToken = "dummy_api_key"
)

type fastWhisperTranscriber struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newFastWhisperTranscriber(logger *zap.Logger) *fastWhisperTranscriber {
	return &fastWhisperTranscriber{
		baseURL:    fastWhisperURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger.Named("fastwhisper_transcriber"),
	}
}

func (f *fastWhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy audio into form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+fastWhisperToken)

	f.logger.Info("Sending audio to FastWhisperAPI", zap.String("file", audioPath))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fastwhisperapi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return "", fmt.Errorf("fastwhisperapi returned status %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode fastwhisperapi response: %w", err)
	}

	return result.Text, nil
}
