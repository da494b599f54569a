// Package tts turns assistant replies into audio files using the configured
// text-to-speech provider.
package tts

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/verbix/go-voice-assistant/internal/config"
)

// Synthesizer renders text as speech into the file at outputPath.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, outputPath string) error
}

// New returns the Synthesizer selected by cfg.Providers.TTS. Callers are
// expected to have run cfg.Validate() beforehand.
func New(cfg *config.Config, logger *zap.Logger) (Synthesizer, error) {
	switch cfg.Providers.TTS {
	case config.ProviderOpenAI:
		return newOpenAISynthesizer(cfg.Credentials.OpenAIAPIKey, logger), nil
	case config.ProviderDeepgram:
		return newDeepgramSynthesizer(cfg.Credentials.DeepgramAPIKey, logger), nil
	case config.ProviderElevenLabs:
		return newElevenLabsSynthesizer(cfg.Credentials.ElevenLabsAPIKey, logger), nil
	case config.ProviderCartesia:
		return newCartesiaSynthesizer(cfg.Credentials.CartesiaAPIKey, logger), nil
	case config.ProviderMeloTTS, config.ProviderLocal:
		return newMeloSynthesizer(cfg.LocalTTSPort, logger), nil
	case config.ProviderPiper:
		return newPiperSynthesizer(cfg.PiperServerURL, logger), nil
	default:
		return nil, fmt.Errorf("unknown tts provider %q", cfg.Providers.TTS)
	}
}

// OutputFileName picks the speech output path for the selected provider:
// Piper writes the configured wav name, the local servers produce wav, and
// the hosted providers produce mp3.
func OutputFileName(cfg *config.Config) string {
	switch cfg.Providers.TTS {
	case config.ProviderPiper:
		return cfg.Audio.PiperOutputFile
	case config.ProviderMeloTTS, config.ProviderLocal:
		return "output.wav"
	default:
		return "output.mp3"
	}
}

// writeAudioFile streams r into a freshly created file at path.
func writeAudioFile(path string, r io.Reader) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	return nil
}
