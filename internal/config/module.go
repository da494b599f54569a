package config

import (
	"go.uber.org/fx"
)

// Module provides the configuration registry and validates it at startup,
// before any dependent provider client is constructed.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Invoke(func(cfg *Config) error {
		return cfg.Validate()
	}),
)
