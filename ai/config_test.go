package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "whisper-1", cfg.TranscriptionModel)
	assert.Equal(t, "dall-e-3", cfg.ImageModel)
	assert.Equal(t, "1024x1024", cfg.ImageSize)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
		assert.Equal(t, "whisper-1", cfg.TranscriptionModel)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.Host)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithChatModel("gpt-4o"),
			WithEmbeddingModel("custom-embed"),
			WithTranscriptionModel("whisper-large"),
			WithImageModel("dall-e-2"),
		)

		assert.Equal(t, "gpt-4o", cfg.ChatModel)
		assert.Equal(t, "custom-embed", cfg.EmbeddingModel)
		assert.Equal(t, "whisper-large", cfg.TranscriptionModel)
		assert.Equal(t, "dall-e-2", cfg.ImageModel)
	})

	t.Run("with token and image size", func(t *testing.T) {
		cfg := NewConfig(
			WithToken("sk-test"),
			WithImageSize("512x512"),
		)

		assert.Equal(t, "sk-test", cfg.Token)
		assert.Equal(t, "512x512", cfg.ImageSize)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds /v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("strips trailing slash before adding /v1", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("leaves /v1 host untouched", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("normalizes before validating", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing chat model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ChatModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing transcription model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TranscriptionModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing image size", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ImageSize = ""
		assert.Error(t, cfg.Validate())
	})
}
