// Package assistant orchestrates one voice interaction turn: transcribe the
// recorded input, generate a reply, and synthesize it as speech.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/verbix/go-voice-assistant/internal/config"
	"github.com/verbix/go-voice-assistant/internal/response"
	"github.com/verbix/go-voice-assistant/internal/transcription"
	"github.com/verbix/go-voice-assistant/internal/tts"
)

// Assistant runs the transcribe→respond→synthesize pipeline over the
// configured providers.
type Assistant struct {
	cfg         *config.Config
	transcriber transcription.Transcriber
	responder   response.Responder
	store       *response.ConversationStore
	synthesizer tts.Synthesizer
	shutdowner  fx.Shutdowner
	logger      *zap.Logger

	sessionID string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Params holds dependencies for New.
type Params struct {
	fx.In

	Cfg         *config.Config
	Transcriber transcription.Transcriber
	Responder   response.Responder
	Store       *response.ConversationStore
	Synthesizer tts.Synthesizer
	Shutdowner  fx.Shutdowner
	Logger      *zap.Logger
}

// New creates an Assistant with a fresh conversation session.
func New(params Params) (*Assistant, error) {
	if params.Cfg == nil {
		return nil, errors.New("config provided to New is nil")
	}
	if params.Transcriber == nil || params.Responder == nil || params.Synthesizer == nil {
		return nil, errors.New("provider clients provided to New are incomplete")
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Assistant{
		cfg:         params.Cfg,
		transcriber: params.Transcriber,
		responder:   params.Responder,
		store:       params.Store,
		synthesizer: params.Synthesizer,
		shutdowner:  params.Shutdowner,
		logger:      logger.Named("assistant"),
		sessionID:   uuid.NewString(),
	}, nil
}

// RunTurn executes a single interaction turn and returns the path of the
// synthesized reply audio.
func (a *Assistant) RunTurn(ctx context.Context) (string, error) {
	text, err := a.transcriber.Transcribe(ctx, a.cfg.Audio.InputFile)
	if err != nil {
		return "", fmt.Errorf("transcription stage: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no speech recognized in input audio")
	}

	a.logger.Info("Transcribed user input",
		zap.String("sessionID", a.sessionID),
		zap.Int("length", len(text)),
	)

	a.store.Append(a.sessionID, response.Message{Role: response.RoleUser, Content: text})

	reply, err := a.responder.Respond(ctx, a.store.Get(a.sessionID))
	if err != nil {
		return "", fmt.Errorf("response stage: %w", err)
	}

	a.store.Append(a.sessionID, response.Message{Role: response.RoleAssistant, Content: reply})

	outputPath := tts.OutputFileName(a.cfg)
	if err := a.synthesizer.Synthesize(ctx, reply, outputPath); err != nil {
		return "", fmt.Errorf("synthesis stage: %w", err)
	}

	a.logger.Info("Turn completed", zap.String("output", outputPath))

	return outputPath, nil
}

// Start runs a turn in the background and asks the application to shut down
// once it finishes.
func (a *Assistant) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return errors.New("assistant already started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})

	go func() {
		defer close(a.done)

		if _, err := a.RunTurn(ctx); err != nil {
			a.logger.Error("Assistant turn failed", zap.Error(err))
		}

		if a.shutdowner != nil {
			if err := a.shutdowner.Shutdown(); err != nil {
				a.logger.Error("Failed to request shutdown", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop cancels any in-flight turn and waits for it to wind down.
func (a *Assistant) Stop(ctx context.Context) error {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
