package transcription

import (
	"go.uber.org/fx"
)

// Module provides the configured Transcriber.
var Module = fx.Module("transcription",
	fx.Provide(New),
)
