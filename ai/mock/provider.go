// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/poiesic/recall/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock instances of every inference service.
type MockProvider struct {
	transcriber *MockTranscriber
	summarizer  *MockSummarizer
	extractor   *MockActionExtractor
	embedder    *MockEmbedder
	illustrator *MockIllustrator
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use the GetMock* accessors to reach concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		transcriber: NewMockTranscriber(),
		summarizer:  NewMockSummarizer(),
		extractor:   NewMockActionExtractor(),
		embedder:    NewMockEmbedder(),
		illustrator: NewMockIllustrator(),
	}
}

// Transcriber returns the mock transcriber.
func (p *MockProvider) Transcriber() ai.Transcriber {
	return p.transcriber
}

// Summarizer returns the mock summarizer.
func (p *MockProvider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// ActionExtractor returns the mock action extractor.
func (p *MockProvider) ActionExtractor() ai.ActionExtractor {
	return p.extractor
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Illustrator returns the mock illustrator.
func (p *MockProvider) Illustrator() ai.Illustrator {
	return p.illustrator
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockTranscriber returns the underlying mock transcriber for test assertions.
func (p *MockProvider) GetMockTranscriber() *MockTranscriber {
	return p.transcriber
}

// GetMockSummarizer returns the underlying mock summarizer for test assertions.
func (p *MockProvider) GetMockSummarizer() *MockSummarizer {
	return p.summarizer
}

// GetMockExtractor returns the underlying mock action extractor for test assertions.
func (p *MockProvider) GetMockExtractor() *MockActionExtractor {
	return p.extractor
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockIllustrator returns the underlying mock illustrator for test assertions.
func (p *MockProvider) GetMockIllustrator() *MockIllustrator {
	return p.illustrator
}
