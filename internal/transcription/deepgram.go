package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	deepgramListenURL = "https://api.deepgram.com/v1/listen"
	deepgramModel     = "nova-2"
)

// deepgramTranscriber uses Deepgram's prerecorded transcription endpoint.
// There is no official Go SDK; the API is a single authenticated POST.
type deepgramTranscriber struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newDeepgramTranscriber(apiKey string, logger *zap.Logger) *deepgramTranscriber {
	return &deepgramTranscriber{
		apiKey:     apiKey,
		baseURL:    deepgramListenURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger.Named("deepgram_transcriber"),
	}
}

type deepgramListenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (d *deepgramTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	url := fmt.Sprintf("%s?model=%s&smart_format=true", d.baseURL, deepgramModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, file)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", audioContentType(audioPath))

	d.logger.Info("Sending audio to Deepgram", zap.String("file", audioPath))

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepgram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", fmt.Errorf("deepgram returned status %d: %s", resp.StatusCode, string(body))
	}

	var listen deepgramListenResponse
	if err := json.NewDecoder(resp.Body).Decode(&listen); err != nil {
		return "", fmt.Errorf("failed to decode deepgram response: %w", err)
	}

	if len(listen.Results.Channels) == 0 || len(listen.Results.Channels[0].Alternatives) == 0 {
		return "", fmt.Errorf("deepgram response contained no transcript")
	}

	return listen.Results.Channels[0].Alternatives[0].Transcript, nil
}

// audioContentType maps a file extension to the content type Deepgram
// expects; mp3 is the pipeline default.
func audioContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	default:
		return "audio/mpeg"
	}
}
