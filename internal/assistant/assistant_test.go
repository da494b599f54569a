package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/verbix/go-voice-assistant/internal/config"
	"github.com/verbix/go-voice-assistant/internal/response"
)

type fakeTranscriber struct {
	text string
	err  error
	path string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audioPath string) (string, error) {
	f.path = audioPath
	return f.text, f.err
}

type fakeResponder struct {
	reply    string
	err      error
	received []response.Message
}

func (f *fakeResponder) Respond(_ context.Context, messages []response.Message) (string, error) {
	f.received = messages
	return f.reply, f.err
}

type fakeSynthesizer struct {
	text string
	path string
	err  error
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, text, outputPath string) error {
	f.text = text
	f.path = outputPath
	return f.err
}

type fakeShutdowner struct {
	called chan struct{}
}

func (f *fakeShutdowner) Shutdown(...fx.ShutdownOption) error {
	close(f.called)
	return nil
}

func testParams(t *testing.T) (Params, *fakeTranscriber, *fakeResponder, *fakeSynthesizer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Providers.TTS = config.ProviderOpenAI
	cfg.Audio.InputFile = "test.mp3"

	store, err := response.NewConversationStore()
	require.NoError(t, err)

	transcriber := &fakeTranscriber{text: "what time is it"}
	responder := &fakeResponder{reply: "it is noon"}
	synthesizer := &fakeSynthesizer{}

	return Params{
		Cfg:         cfg,
		Transcriber: transcriber,
		Responder:   responder,
		Store:       store,
		Synthesizer: synthesizer,
		Logger:      zap.NewNop(),
	}, transcriber, responder, synthesizer
}

func TestRunTurn(t *testing.T) {
	t.Run("HappyPath", func(t *testing.T) {
		params, transcriber, responder, synthesizer := testParams(t)

		a, err := New(params)
		require.NoError(t, err)

		outputPath, err := a.RunTurn(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "test.mp3", transcriber.path)
		assert.Equal(t, "output.mp3", outputPath)
		assert.Equal(t, "it is noon", synthesizer.text)

		// Responder saw system prompt plus the user turn.
		require.Len(t, responder.received, 2)
		assert.Equal(t, response.RoleUser, responder.received[1].Role)
		assert.Equal(t, "what time is it", responder.received[1].Content)

		// History now carries the assistant reply too.
		history := params.Store.Get(a.sessionID)
		require.Len(t, history, 3)
		assert.Equal(t, response.RoleAssistant, history[2].Role)
		assert.Equal(t, "it is noon", history[2].Content)
	})

	t.Run("SecondTurnKeepsHistory", func(t *testing.T) {
		params, transcriber, responder, _ := testParams(t)

		a, err := New(params)
		require.NoError(t, err)

		_, err = a.RunTurn(context.Background())
		require.NoError(t, err)

		transcriber.text = "and tomorrow?"
		_, err = a.RunTurn(context.Background())
		require.NoError(t, err)

		// system + user + assistant + user
		require.Len(t, responder.received, 4)
		assert.Equal(t, "and tomorrow?", responder.received[3].Content)
	})

	t.Run("EmptyTranscript", func(t *testing.T) {
		params, transcriber, _, _ := testParams(t)
		transcriber.text = "   "

		a, err := New(params)
		require.NoError(t, err)

		_, err = a.RunTurn(context.Background())
		assert.ErrorContains(t, err, "no speech")
	})

	t.Run("StageErrorsWrapped", func(t *testing.T) {
		params, transcriber, _, _ := testParams(t)
		transcriber.err = errors.New("boom")

		a, err := New(params)
		require.NoError(t, err)

		_, err = a.RunTurn(context.Background())
		assert.ErrorContains(t, err, "transcription stage")

		transcriber.err = nil
		params2, _, responder, _ := testParams(t)
		responder.err = errors.New("boom")
		a2, err := New(params2)
		require.NoError(t, err)

		_, err = a2.RunTurn(context.Background())
		assert.ErrorContains(t, err, "response stage")
	})
}

func TestNewValidatesDependencies(t *testing.T) {
	params, _, _, _ := testParams(t)
	params.Cfg = nil
	_, err := New(params)
	assert.Error(t, err)

	params, _, _, _ = testParams(t)
	params.Responder = nil
	_, err = New(params)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	params, _, _, _ := testParams(t)
	shutdowner := &fakeShutdowner{called: make(chan struct{})}
	params.Shutdowner = shutdowner

	a, err := New(params)
	require.NoError(t, err)

	require.NoError(t, a.Start())
	assert.Error(t, a.Start(), "second Start must be rejected")

	select {
	case <-shutdowner.called:
	case <-time.After(time.Second):
		t.Fatal("shutdown was not requested after the turn completed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, a.Stop(ctx))
}
