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


package openai

import (
	"log/slog"

	"github.com/poiesic/recall/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages the transcriber, summarizer, extractor, embedder, and
// illustrator instances.
type Provider struct {
	config      *ai.Config
	transcriber *Transcriber
	summarizer  *Summarizer
	extractor   *ActionExtractor
	embedder    *Embedder
	illustrator *Illustrator
	logger      *slog.Logger
}

// NewProvider creates a new inference provider with OpenAI-compatible
// services. The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	transcriber, err := newTranscriber(config)
	if err != nil {
		return nil, err
	}

	summarizer, err := newSummarizer(config)
	if err != nil {
		return nil, err
	}

	extractor, err := newActionExtractor(config)
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	illustrator, err := newIllustrator(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:      config,
		transcriber: transcriber,
		summarizer:  summarizer,
		extractor:   extractor,
		embedder:    embedder,
		illustrator: illustrator,
		logger:      slog.Default().With("component", "openai-provider"),
	}, nil
}

// Transcriber returns the speech-to-text service.
func (p *Provider) Transcriber() ai.Transcriber {
	return p.transcriber
}

// Summarizer returns the summary generation service.
func (p *Provider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// ActionExtractor returns the structured action extraction service.
func (p *Provider) ActionExtractor() ai.ActionExtractor {
	return p.extractor
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Illustrator returns the image generation service.
func (p *Provider) Illustrator() ai.Illustrator {
	return p.illustrator
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
