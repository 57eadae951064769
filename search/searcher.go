package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/storage"
)

const (
	// maxHits caps the number of returned chunk hits.
	maxHits = 10
	// minScore filters hits after truncation to the top maxHits.
	minScore = 0.05
	// maxRelated caps the related-meetings suggestion list.
	maxRelated = 3
)

// Hit is a single scored chunk match.
type Hit struct {
	// MeetingID identifies the meeting the chunk belongs to.
	MeetingID string `json:"meetingId"`
	// Idx is the meeting's 1-based position in store order.
	Idx int `json:"idx"`
	// Text is the chunk text.
	Text string `json:"text"`
	// Score is the cosine similarity against the query.
	Score float64 `json:"score"`
}

// Result is the outcome of one search.
type Result struct {
	Hits []Hit `json:"hits"`
	// RelatedIds lists distinct meeting ids from the hit list beyond the
	// top one, up to three entries.
	RelatedIds []string `json:"relatedIds"`
}

// Searcher provides semantic search over stored meeting chunks.
type Searcher struct {
	store    storage.MeetingStore
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(store storage.MeetingStore, provider ai.Provider, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		store:    store,
		embedder: provider.Embedder(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search embeds the query and ranks every stored chunk against it.
//
// A query that is empty after trimming returns ErrEmptyQuery before any
// embedding call. Hits are sorted by score descending with ties keeping
// store order, truncated to the top 10, and only then filtered to scores
// of at least 0.05. Truncating before filtering bounds the result size
// even when many chunks clear the threshold.
func (s *Searcher) Search(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	queryVec, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	meetings, err := s.store.Meetings(ctx)
	if err != nil {
		s.logger.Error("error reading meetings", "err", err)
		return nil, err
	}

	scored := make([]Hit, 0, 64)
	for i, meeting := range meetings {
		for _, chunk := range meeting.Chunks {
			scored = append(scored, Hit{
				MeetingID: meeting.Id,
				Idx:       i + 1,
				Text:      chunk.Text,
				Score:     Cosine(queryVec, chunk.Embedding),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxHits {
		scored = scored[:maxHits]
	}

	hits := make([]Hit, 0, len(scored))
	for _, hit := range scored {
		if hit.Score >= minScore {
			hits = append(hits, hit)
		}
	}

	s.logger.Debug("search complete", "query", query, "hits", len(hits))

	return &Result{
		Hits:       hits,
		RelatedIds: relatedIds(hits),
	}, nil
}

// relatedIds returns the distinct meeting ids of the hits, in hit order,
// skipping the first and keeping at most maxRelated.
func relatedIds(hits []Hit) []string {
	distinct := make([]string, 0, len(hits))
	seen := make(map[string]bool)
	for _, hit := range hits {
		if seen[hit.MeetingID] {
			continue
		}
		seen[hit.MeetingID] = true
		distinct = append(distinct, hit.MeetingID)
	}

	if len(distinct) < 2 {
		return []string{}
	}
	end := 1 + maxRelated
	if end > len(distinct) {
		end = len(distinct)
	}
	return distinct[1:end]
}
