// Package config provides the application configuration registry: provider
// selection, model presets, and credentials sourced from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Provider values selectable for transcription, response generation and
// speech synthesis. Not every provider is valid for every stage; see the
// per-stage domains in validate.go.
const (
	ProviderOpenAI         = "openai"
	ProviderGroq           = "groq"
	ProviderDeepgram       = "deepgram"
	ProviderFastWhisperAPI = "fastwhisperapi"
	ProviderOllama         = "ollama"
	ProviderElevenLabs     = "elevenlabs"
	ProviderMeloTTS        = "melotts"
	ProviderCartesia       = "cartesia"
	ProviderPiper          = "piper"
	ProviderLocal          = "local"
)

// Environment variable names consumed by Load. These names are part of the
// external contract and must not change.
const (
	EnvPiperServerURL   = "PIPER_SERVER_URL"
	EnvOpenAIAPIKey     = "OPENAI_API_KEY"
	EnvGroqAPIKey       = "GROQ_API_KEY"
	EnvDeepgramAPIKey   = "DEEPGRAM_API_KEY"
	EnvElevenLabsAPIKey = "ELEVENLABS_API_KEY"
	EnvLocalModelPath   = "LOCAL_MODEL_PATH"
	EnvCartesiaAPIKey   = "CARTESIA_API_KEY"
)

// ProvidersConfig selects the service implementation for each pipeline stage.
type ProvidersConfig struct {
	Transcription string `yaml:"transcription"`
	Response      string `yaml:"response"`
	TTS           string `yaml:"tts"`
}

// ModelsConfig holds the model presets used by the response providers.
type ModelsConfig struct {
	OpenAI string `yaml:"openai"`
	Groq   string `yaml:"groq"`
	Ollama string `yaml:"ollama"`
}

// CredentialsConfig holds API keys read from the environment. Credentials are
// never sourced from the config file.
type CredentialsConfig struct {
	OpenAIAPIKey     string `yaml:"-"`
	GroqAPIKey       string `yaml:"-"`
	DeepgramAPIKey   string `yaml:"-"`
	ElevenLabsAPIKey string `yaml:"-"`
	CartesiaAPIKey   string `yaml:"-"`
}

// AudioConfig holds the file names used by the pipeline.
type AudioConfig struct {
	// InputFile is the transient audio file consumed by the transcription stage.
	InputFile string `yaml:"input_file"`
	// PiperOutputFile is where Piper synthesis output is written.
	PiperOutputFile string `yaml:"piper_output_file"`
}

// Config is the process-wide configuration registry. It is populated once by
// Load and treated as read-only afterwards.
type Config struct {
	Providers    ProvidersConfig `yaml:"providers"`
	Models       ModelsConfig    `yaml:"models"`
	Audio        AudioConfig     `yaml:"audio"`
	LocalTTSPort int             `yaml:"local_tts_port"`
	LogLevel     string          `yaml:"log_level"`

	// Environment-sourced values, populated by Load.
	Credentials    CredentialsConfig `yaml:"-"`
	PiperServerURL string            `yaml:"-"`
	LocalModelPath string            `yaml:"-"`
}

// defaultConfig returns the compiled-in defaults.
func defaultConfig() *Config {
	return &Config{
		Providers: ProvidersConfig{
			Transcription: ProviderDeepgram,
			Response:      ProviderOpenAI,
			TTS:           ProviderOpenAI,
		},
		Models: ModelsConfig{
			OpenAI: "gpt-4o",
			Groq:   "llama3-8b-8192",
			Ollama: "llama3:8b",
		},
		Audio: AudioConfig{
			InputFile:       "test.mp3",
			PiperOutputFile: "output.wav",
		},
		LocalTTSPort: 5150,
		LogLevel:     "info",
	}
}

// Load builds the configuration registry. Defaults apply first, then the
// optional YAML file at path (absent file is not an error), then environment
// variables for credentials and endpoints. A .env file in the working
// directory is loaded best-effort before the environment is read.
//
// Missing environment variables are stored as empty strings; Load never fails
// because of them. Validation is a separate step, see Validate.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	cfg.Credentials = CredentialsConfig{
		OpenAIAPIKey:     os.Getenv(EnvOpenAIAPIKey),
		GroqAPIKey:       os.Getenv(EnvGroqAPIKey),
		DeepgramAPIKey:   os.Getenv(EnvDeepgramAPIKey),
		ElevenLabsAPIKey: os.Getenv(EnvElevenLabsAPIKey),
		CartesiaAPIKey:   os.Getenv(EnvCartesiaAPIKey),
	}
	cfg.PiperServerURL = os.Getenv(EnvPiperServerURL)
	cfg.LocalModelPath = os.Getenv(EnvLocalModelPath)

	return cfg, nil
}
