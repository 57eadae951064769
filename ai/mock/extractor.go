package mock

import (
	"context"
	"strings"

	"github.com/poiesic/recall/core"
)

// MockActionExtractor is a test double for ai.ActionExtractor.
// It allows custom behavior injection via function fields.
type MockActionExtractor struct {
	// ExtractActionsFunc is called by ExtractActions if set.
	// If nil, uses default simple sentence extraction.
	ExtractActionsFunc func(ctx context.Context, transcript string) ([]core.ActionItem, error)

	callCount int
}

// NewMockActionExtractor creates a mock action extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockActionExtractor() *MockActionExtractor {
	return &MockActionExtractor{}
}

// ExtractActions extracts simple mock action items from a transcript.
// Default behavior: one item per sentence containing the word "will",
// owned by the first word of the sentence. Limited to 5 items.
func (m *MockActionExtractor) ExtractActions(ctx context.Context, transcript string) ([]core.ActionItem, error) {
	m.callCount++

	if m.ExtractActionsFunc != nil {
		return m.ExtractActionsFunc(ctx, transcript)
	}

	items := []core.ActionItem{}
	for _, sentence := range strings.Split(transcript, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" || !strings.Contains(strings.ToLower(sentence), "will") {
			continue
		}

		owner := strings.Trim(strings.Fields(sentence)[0], ".,!?;:\"'()")
		items = append(items, core.ActionItem{
			Title: sentence,
			Owner: owner,
		})

		if len(items) >= 5 {
			break
		}
	}

	return items, nil
}

// CallCount returns the number of times ExtractActions was called.
func (m *MockActionExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockActionExtractor) Reset() {
	m.callCount = 0
	m.ExtractActionsFunc = nil
}
