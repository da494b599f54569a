package response

import (
	"go.uber.org/fx"
)

// Module provides the configured Responder and the conversation store.
var Module = fx.Module("response",
	fx.Provide(
		New,
		NewConversationStore,
	),
)
