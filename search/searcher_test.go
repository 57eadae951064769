package search

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/poiesic/recall/ai/mock"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
	"github.com/poiesic/recall/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.MeetingStore {
	t.Helper()
	store, backend, err := badger.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
		backend.Close()
	})
	return store
}

func seedMeeting(t *testing.T, store storage.MeetingStore, title string, chunks []core.Chunk) *core.Meeting {
	t.Helper()
	meeting := &core.Meeting{
		Id:         core.NewMeetingID(),
		Title:      title,
		Transcript: "transcript for " + title,
		Summary:    "summary for " + title,
		Chunks:     chunks,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, store.Append(context.Background(), meeting))
	return meeting
}

// fixedQueryVector makes every query embed to the given vector so chunk
// scores are fully determined by the seeded embeddings.
func fixedQueryVector(provider *mock.MockProvider, vec []float32) {
	provider.GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return vec, nil
	}
}

func TestNewSearcher(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(store, provider)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(store, provider, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(store, provider, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewSearcher(nil, provider)
		assert.Equal(t, ErrStoreRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewSearcher(store, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestSearch_BlankQuery(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := searcher.Search(context.Background(), query)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}

	// Rejected before any inference call.
	assert.Equal(t, 0, provider.GetMockEmbedder().CallCount())
}

func TestSearch_EmptyStore(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider()

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
	assert.Empty(t, result.RelatedIds)
}

func TestSearch_RankingAndIndex(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	fixedQueryVector(provider, []float32{1, 0})

	first := seedMeeting(t, store, "first", []core.Chunk{
		{Text: "weak match", Embedding: []float32{0.2, 0.98}},
	})
	second := seedMeeting(t, store, "second", []core.Chunk{
		{Text: "exact match", Embedding: []float32{1, 0}},
		{Text: "good match", Embedding: []float32{0.9, 0.44}},
	})

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "query")
	require.NoError(t, err)

	require.Len(t, result.Hits, 3)
	assert.Equal(t, "exact match", result.Hits[0].Text)
	assert.Equal(t, "good match", result.Hits[1].Text)
	assert.Equal(t, "weak match", result.Hits[2].Text)

	// Idx is the meeting's 1-based store position, not a hit rank.
	assert.Equal(t, second.Id, result.Hits[0].MeetingID)
	assert.Equal(t, 2, result.Hits[0].Idx)
	assert.Equal(t, first.Id, result.Hits[2].MeetingID)
	assert.Equal(t, 1, result.Hits[2].Idx)

	assert.True(t, result.Hits[0].Score >= result.Hits[1].Score)
	assert.True(t, result.Hits[1].Score >= result.Hits[2].Score)
}

func TestSearch_TruncatesBeforeFiltering(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	fixedQueryVector(provider, []float32{1, 0})

	// 12 chunks, all above the threshold. The cap keeps only 10.
	chunks := make([]core.Chunk, 12)
	for i := range chunks {
		chunks[i] = core.Chunk{
			Text:      fmt.Sprintf("chunk %d", i),
			Embedding: []float32{1, float32(i) * 0.01},
		}
	}
	seedMeeting(t, store, "busy", chunks)

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "query")
	require.NoError(t, err)
	assert.Len(t, result.Hits, 10)
}

func TestSearch_EqualScoresKeepStoreOrder(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	fixedQueryVector(provider, []float32{1, 0})

	// Identical embeddings score identically against the fixed query.
	shared := []float32{0.8, 0.6}
	first := seedMeeting(t, store, "earlier", []core.Chunk{
		{Text: "tied one", Embedding: shared},
		{Text: "tied two", Embedding: shared},
	})
	second := seedMeeting(t, store, "later", []core.Chunk{
		{Text: "tied three", Embedding: shared},
	})

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "query")
	require.NoError(t, err)

	// Tied hits retain the store's insertion order.
	require.Len(t, result.Hits, 3)
	assert.Equal(t, "tied one", result.Hits[0].Text)
	assert.Equal(t, "tied two", result.Hits[1].Text)
	assert.Equal(t, "tied three", result.Hits[2].Text)
	assert.Equal(t, first.Id, result.Hits[0].MeetingID)
	assert.Equal(t, second.Id, result.Hits[2].MeetingID)
	assert.Equal(t, result.Hits[0].Score, result.Hits[1].Score)
	assert.Equal(t, result.Hits[1].Score, result.Hits[2].Score)
}

func TestSearch_FiltersBelowThreshold(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	fixedQueryVector(provider, []float32{1, 0})

	seedMeeting(t, store, "mixed", []core.Chunk{
		{Text: "relevant", Embedding: []float32{1, 0}},
		{Text: "irrelevant", Embedding: []float32{0.01, 1}},
		{Text: "opposite", Embedding: []float32{-1, 0}},
	})

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "query")
	require.NoError(t, err)

	require.Len(t, result.Hits, 1)
	assert.Equal(t, "relevant", result.Hits[0].Text)
}

func TestSearch_RelatedIds(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	fixedQueryVector(provider, []float32{1, 0})

	a := seedMeeting(t, store, "a", []core.Chunk{
		{Text: "a1", Embedding: []float32{1, 0}},
		{Text: "a2", Embedding: []float32{0.99, 0.1}},
	})
	b := seedMeeting(t, store, "b", []core.Chunk{
		{Text: "b1", Embedding: []float32{0.9, 0.44}},
	})
	c := seedMeeting(t, store, "c", []core.Chunk{
		{Text: "c1", Embedding: []float32{0.8, 0.6}},
	})

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "query")
	require.NoError(t, err)

	// The top meeting is excluded; the rest follow hit order, distinct.
	assert.Equal(t, a.Id, result.Hits[0].MeetingID)
	assert.Equal(t, []string{b.Id, c.Id}, result.RelatedIds)
}

func TestSearch_RelatedIdsSingleMeeting(t *testing.T) {
	store := newTestStore(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)
	fixedQueryVector(provider, []float32{1, 0})

	seedMeeting(t, store, "only", []core.Chunk{
		{Text: "x", Embedding: []float32{1, 0}},
		{Text: "y", Embedding: []float32{0.9, 0.44}},
	})

	searcher, err := NewSearcher(store, provider)
	require.NoError(t, err)

	result, err := searcher.Search(context.Background(), "query")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Hits)
	assert.Empty(t, result.RelatedIds)
}
