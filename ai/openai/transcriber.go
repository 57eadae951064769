package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/recall/ai"
	goopenai "github.com/sashabaranov/go-openai"
)

// Transcriber implements ai.Transcriber using the OpenAI audio API.
type Transcriber struct {
	client *goopenai.Client
	model  string
	logger *slog.Logger
}

// newTranscriber is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTranscriber(config *ai.Config) (*Transcriber, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientConfig := goopenai.DefaultConfig(config.Token)
	clientConfig.BaseURL = config.Host
	client := goopenai.NewClientWithConfig(clientConfig)

	return &Transcriber{
		client: client,
		model:  config.TranscriptionModel,
		logger: slog.Default().With("component", "openai-transcriber"),
	}, nil
}

// NewTranscriber creates a new transcriber using the provided configuration.
//
// Returns ai.Transcriber interface to enforce abstraction.
func NewTranscriber(config *ai.Config) (ai.Transcriber, error) {
	return newTranscriber(config)
}

// Transcribe sends the audio file to the speech-to-text endpoint.
// The verbose response format is requested so that backends which diarize
// can return segments; the hosted Whisper API segments carry no speaker
// identity, so only the plain transcript is propagated from it.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (*ai.Transcript, error) {
	t.logger.Debug("transcribing audio", "path", audioPath)

	response, err := t.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Format:   goopenai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		t.logger.Error("failed to transcribe audio", "err", err)
		return nil, err
	}

	return &ai.Transcript{Text: response.Text}, nil
}
