package tts

import (
	"go.uber.org/fx"
)

// Module provides the configured Synthesizer.
var Module = fx.Module("tts",
	fx.Provide(New),
)
