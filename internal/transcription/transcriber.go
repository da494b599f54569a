// Package transcription converts recorded audio into text using the
// configured speech-to-text provider.
package transcription

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/verbix/go-voice-assistant/internal/config"
)

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// New returns the Transcriber selected by cfg.Providers.Transcription.
// Callers are expected to have run cfg.Validate() beforehand; the default
// branch only guards against values that bypassed validation.
func New(cfg *config.Config, logger *zap.Logger) (Transcriber, error) {
	switch cfg.Providers.Transcription {
	case config.ProviderOpenAI:
		return newWhisperTranscriber(cfg.Credentials.OpenAIAPIKey, "", openaiWhisperModel, logger), nil
	case config.ProviderGroq:
		return newWhisperTranscriber(cfg.Credentials.GroqAPIKey, groqBaseURL, groqWhisperModel, logger), nil
	case config.ProviderDeepgram:
		return newDeepgramTranscriber(cfg.Credentials.DeepgramAPIKey, logger), nil
	case config.ProviderFastWhisperAPI:
		return newFastWhisperTranscriber(logger), nil
	case config.ProviderLocal:
		// Valid selection, but in-process inference is not built into this
		// binary. LOCAL_MODEL_PATH holds the model location for deployments
		// that front it with a fastwhisperapi server.
		return nil, fmt.Errorf("local transcription requires a fastwhisperapi server, select %q instead", config.ProviderFastWhisperAPI)
	default:
		return nil, fmt.Errorf("unknown transcription provider %q", cfg.Providers.Transcription)
	}
}
