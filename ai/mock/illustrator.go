package mock

import (
	"context"
	"fmt"
	"hash/fnv"
)

// MockIllustrator is a test double for ai.Illustrator.
// It allows custom behavior injection via function fields.
type MockIllustrator struct {
	// IllustrateFunc is called by Illustrate if set.
	// If nil, uses default deterministic behavior.
	IllustrateFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
}

// NewMockIllustrator creates a mock illustrator with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockIllustrator().
func NewMockIllustrator() *MockIllustrator {
	return &MockIllustrator{}
}

// Illustrate returns a deterministic fake image URL derived from the prompt.
func (m *MockIllustrator) Illustrate(ctx context.Context, prompt string) (string, error) {
	m.callCount++

	if m.IllustrateFunc != nil {
		return m.IllustrateFunc(ctx, prompt)
	}

	h := fnv.New32a()
	h.Write([]byte(prompt))
	return fmt.Sprintf("https://images.example.com/%08x.png", h.Sum32()), nil
}

// CallCount returns the number of times Illustrate was called.
func (m *MockIllustrator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIllustrator) Reset() {
	m.callCount = 0
	m.IllustrateFunc = nil
}
