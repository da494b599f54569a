package assistant

import (
	"go.uber.org/fx"
)

// Module provides the assistant pipeline.
var Module = fx.Module("assistant",
	fx.Provide(New),
)
