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


// Package ai provides abstractions for the inference services used in Recall.
//
// This package defines interfaces for the four remote capabilities the
// ingestion pipeline and search engine consume: speech-to-text, chat/text
// generation (summaries and structured action extraction), text embeddings,
// and image generation. It follows the dependency inversion principle,
// allowing the core domain and business logic to depend on abstractions
// rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around five capability interfaces, aggregated by
// a Provider:
//
//   - Transcriber: Converts recorded audio into a transcript
//   - Summarizer: Produces short executive summaries from transcripts
//   - ActionExtractor: Extracts structured action items from transcripts
//   - Embedder: Generates vector embeddings from text
//   - Illustrator: Generates an illustrative image for a meeting
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors in ai/openai return INTERFACE types to enforce
// abstraction. Test constructors in ai/mock return CONCRETE types so tests
// can inject behavior through function fields and assert on call counts.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	transcript, err := provider.Transcriber().Transcribe(ctx, "/tmp/meeting.wav")
//	summary, err := provider.Summarizer().Summarize(ctx, transcript.Text)
package ai
