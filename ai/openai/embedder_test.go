package openai

import (
	"context"
	"log/slog"
	"testing"

	"github.com/poiesic/recall/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder satisfies the langchaingo embeddings.Embedder interface with
// canned results.
type stubEmbedder struct {
	documents [][]float32
	err       error
}

func (s *stubEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return s.documents, s.err
}

func (s *stubEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if len(s.documents) == 0 {
		return nil, s.err
	}
	return s.documents[0], s.err
}

func newStubbedEmbedder(stub *stubEmbedder) *Embedder {
	return &Embedder{
		embedder: stub,
		logger:   slog.Default().With("component", "openai-embedder"),
	}
}

func TestEmbedText(t *testing.T) {
	t.Run("returns the single vector", func(t *testing.T) {
		e := newStubbedEmbedder(&stubEmbedder{documents: [][]float32{{0.1, 0.2, 0.3}}})

		vec, err := e.EmbedText(context.Background(), "quarterly planning")
		require.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	})

	t.Run("empty result is an error", func(t *testing.T) {
		e := newStubbedEmbedder(&stubEmbedder{documents: [][]float32{}})

		_, err := e.EmbedText(context.Background(), "quarterly planning")
		assert.ErrorIs(t, err, ai.ErrEmptyResponse)
	})
}
