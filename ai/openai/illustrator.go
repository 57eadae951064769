package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/recall/ai"
	goopenai "github.com/sashabaranov/go-openai"
)

// Illustrator implements ai.Illustrator using the OpenAI image API.
type Illustrator struct {
	client *goopenai.Client
	model  string
	size   string
	logger *slog.Logger
}

// newIllustrator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIllustrator(config *ai.Config) (*Illustrator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientConfig := goopenai.DefaultConfig(config.Token)
	clientConfig.BaseURL = config.Host
	client := goopenai.NewClientWithConfig(clientConfig)

	return &Illustrator{
		client: client,
		model:  config.ImageModel,
		size:   config.ImageSize,
		logger: slog.Default().With("component", "openai-illustrator"),
	}, nil
}

// NewIllustrator creates a new illustrator using the provided configuration.
//
// Returns ai.Illustrator interface to enforce abstraction.
func NewIllustrator(config *ai.Config) (ai.Illustrator, error) {
	return newIllustrator(config)
}

// Illustrate requests one image at the configured resolution and returns
// the URL of the generated image.
func (i *Illustrator) Illustrate(ctx context.Context, prompt string) (string, error) {
	i.logger.Debug("generating illustration", "prompt_length", len(prompt))

	response, err := i.client.CreateImage(ctx, goopenai.ImageRequest{
		Prompt: prompt,
		Model:  i.model,
		N:      1,
		Size:   i.size,
	})
	if err != nil {
		i.logger.Error("failed to generate image", "err", err)
		return "", err
	}

	if len(response.Data) == 0 {
		return "", fmt.Errorf("%w: no image data", ai.ErrEmptyResponse)
	}

	return response.Data[0].URL, nil
}
