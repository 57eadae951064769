package mock

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/poiesic/recall/ai"
)

// MockTranscriber is a test double for ai.Transcriber.
// It allows custom behavior injection via function fields.
type MockTranscriber struct {
	// TranscribeFunc is called by Transcribe if set.
	// If nil, uses default deterministic behavior.
	TranscribeFunc func(ctx context.Context, audioPath string) (*ai.Transcript, error)

	callCount int
}

// NewMockTranscriber creates a mock transcriber with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockTranscriber().
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcribe produces a deterministic transcript derived from the file name.
// Default behavior: a two-speaker exchange mentioning the audio file, so
// downstream stages always receive labelled segments.
func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (*ai.Transcript, error) {
	m.callCount++

	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audioPath)
	}

	name := filepath.Base(audioPath)
	segments := []ai.TranscriptSegment{
		{Speaker: "Alice", Text: fmt.Sprintf("Let's review the recording %s.", name)},
		{Speaker: "Bob", Text: "Sounds good, I will follow up afterwards."},
	}

	text := segments[0].Text + " " + segments[1].Text
	return &ai.Transcript{Text: text, Segments: segments}, nil
}

// CallCount returns the number of times Transcribe was called.
func (m *MockTranscriber) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockTranscriber) Reset() {
	m.callCount = 0
	m.TranscribeFunc = nil
}
