package ai

import (
	"context"

	"github.com/poiesic/recall/core"
)

// Transcriber converts a recorded audio file into a transcript.
// Implementations must be thread-safe for concurrent use.
type Transcriber interface {
	// Transcribe sends the audio file at the given path to a speech-to-text
	// capability. Diarization is requested; backends that support it return
	// per-segment speaker labels in Transcript.Segments, others return the
	// plain text only.
	// Returns an error if the transcription call fails.
	Transcribe(ctx context.Context, audioPath string) (*Transcript, error)
}

// Summarizer produces a short executive summary of a transcript.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// Summarize generates a 2-3 sentence executive summary of the labelled
	// transcript. The returned text is trimmed. An empty result is not an
	// error; callers decide how to degrade.
	Summarize(ctx context.Context, transcript string) (string, error)
}

// ActionExtractor extracts structured action items from a transcript.
// Implementations must be thread-safe for concurrent use.
type ActionExtractor interface {
	// ExtractActions asks a text-generation capability for a structured
	// payload with one field `items`, an ordered sequence of
	// {title (required), owner (required), due (optional)}.
	// A payload that cannot be parsed against that schema is reported as an
	// error wrapping ErrMalformedResponse.
	ExtractActions(ctx context.Context, transcript string) ([]core.ActionItem, error)
}

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Illustrator generates one illustrative image for a meeting.
// Implementations must be thread-safe for concurrent use.
type Illustrator interface {
	// Illustrate asks an image-generation capability for a single image at
	// the provider's configured resolution and returns a reference (URL) to
	// the result.
	Illustrate(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates the inference services for convenient initialization
// and lifecycle management. A provider creates and manages the capability
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Transcriber returns the speech-to-text service.
	Transcriber() Transcriber

	// Summarizer returns the summary generation service.
	Summarizer() Summarizer

	// ActionExtractor returns the structured action extraction service.
	ActionExtractor() ActionExtractor

	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Illustrator returns the image generation service.
	Illustrator() Illustrator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
