package config

import "slices"

// Field names reported by InvalidProviderSelectionError.
const (
	FieldTranscription = "transcription"
	FieldResponse      = "response"
	FieldTTS           = "tts"
)

// Allowed provider values per stage, in field declaration order.
var (
	TranscriptionProviders = []string{
		ProviderOpenAI, ProviderGroq, ProviderDeepgram, ProviderFastWhisperAPI, ProviderLocal,
	}
	ResponseProviders = []string{
		ProviderOpenAI, ProviderGroq, ProviderOllama, ProviderLocal,
	}
	TTSProviders = []string{
		ProviderOpenAI, ProviderDeepgram, ProviderElevenLabs, ProviderMeloTTS,
		ProviderCartesia, ProviderLocal, ProviderPiper,
	}
)

// credentialRules is the fixed table mapping (field, provider value) to the
// credential required when that value is selected. Rule order matters:
// validation fails fast on the first unsatisfied rule.
var credentialRules = []struct {
	field      func(*Config) string
	provider   string
	credential string
	value      func(*Config) string
}{
	{transcriptionField, ProviderOpenAI, EnvOpenAIAPIKey, openAIKey},
	{transcriptionField, ProviderGroq, EnvGroqAPIKey, groqKey},
	{transcriptionField, ProviderDeepgram, EnvDeepgramAPIKey, deepgramKey},

	{responseField, ProviderOpenAI, EnvOpenAIAPIKey, openAIKey},
	{responseField, ProviderGroq, EnvGroqAPIKey, groqKey},

	{ttsField, ProviderOpenAI, EnvOpenAIAPIKey, openAIKey},
	{ttsField, ProviderDeepgram, EnvDeepgramAPIKey, deepgramKey},
	{ttsField, ProviderElevenLabs, EnvElevenLabsAPIKey, elevenLabsKey},
	{ttsField, ProviderCartesia, EnvCartesiaAPIKey, cartesiaKey},
}

func transcriptionField(c *Config) string { return c.Providers.Transcription }
func responseField(c *Config) string      { return c.Providers.Response }
func ttsField(c *Config) string           { return c.Providers.TTS }

func openAIKey(c *Config) string     { return c.Credentials.OpenAIAPIKey }
func groqKey(c *Config) string       { return c.Credentials.GroqAPIKey }
func deepgramKey(c *Config) string   { return c.Credentials.DeepgramAPIKey }
func elevenLabsKey(c *Config) string { return c.Credentials.ElevenLabsAPIKey }
func cartesiaKey(c *Config) string   { return c.Credentials.CartesiaAPIKey }

// Validate checks the registry for consistency: every provider-selection
// field must hold a value from its allowed set, and every credential required
// by a selected provider must be present and non-empty.
//
// Domain checks run first (transcription, response, tts), then the credential
// rules in table order. Validate fails fast on the first violation and reads
// the registry without modifying it, so repeated calls on an unchanged Config
// produce the same outcome. Callers should invoke it once at startup before
// constructing any provider client.
func (c *Config) Validate() error {
	domains := []struct {
		field   string
		value   string
		allowed []string
	}{
		{FieldTranscription, c.Providers.Transcription, TranscriptionProviders},
		{FieldResponse, c.Providers.Response, ResponseProviders},
		{FieldTTS, c.Providers.TTS, TTSProviders},
	}
	for _, d := range domains {
		if !slices.Contains(d.allowed, d.value) {
			return &InvalidProviderSelectionError{
				Field:   d.field,
				Value:   d.value,
				Allowed: d.allowed,
			}
		}
	}

	for _, r := range credentialRules {
		if r.field(c) == r.provider && r.value(c) == "" {
			return &MissingCredentialError{
				Credential: r.credential,
				Provider:   r.provider,
			}
		}
	}

	return nil
}
