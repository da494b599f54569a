// Package main provides the entry point for the voice assistant application.
package main

import (
	"github.com/verbix/go-voice-assistant/internal/app"
	"github.com/verbix/go-voice-assistant/internal/assistant"
	"github.com/verbix/go-voice-assistant/internal/config"
	"github.com/verbix/go-voice-assistant/internal/infrastructure"
	"github.com/verbix/go-voice-assistant/internal/response"
	"github.com/verbix/go-voice-assistant/internal/transcription"
	"github.com/verbix/go-voice-assistant/internal/tts"
	pkginfra "github.com/verbix/go-voice-assistant/pkg/infrastructure"

	"go.uber.org/fx"
)

func main() {
	// Default config path; overrides apply on top of compiled-in defaults,
	// and a missing file is fine.
	configPath := "config.yaml"

	application := app.New(
		// Core modules. Config validation runs inside config.Module before
		// any provider client is constructed.
		config.Module,
		infrastructure.LoggerModule,

		// Provider modules
		transcription.Module,
		response.Module,
		tts.Module,

		// Pipeline
		assistant.Module,

		// Supply the config path
		fx.Supply(configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(pkginfra.NewFxLoggerAdapter),
	)

	// Run blocks until the assistant finishes its turn and requests
	// shutdown, or until SIGINT/SIGTERM; Fx handles both and executes the
	// OnStop hooks on the way out.
	application.Run()
}
