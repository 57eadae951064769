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


package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/calendar"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
	"github.com/poiesic/recall/transcode"
)

const (
	// summaryPlaceholder substitutes for a failed or empty summary.
	summaryPlaceholder = "(no summary)"
	// titleLimit bounds the meeting title derived from the summary.
	titleLimit = 60
	// promptSummaryLimit bounds the summary prefix in the image prompt.
	promptSummaryLimit = 40
	// promptActionLimit bounds the action titles in the image prompt.
	promptActionLimit = 4
)

// Pipeline orchestrates the ingestion of one uploaded recording.
type Pipeline struct {
	store       storage.MeetingStore
	transcriber ai.Transcriber
	summarizer  ai.Summarizer
	extractor   ai.ActionExtractor
	embedder    ai.Embedder
	illustrator ai.Illustrator
	normalize   func(ctx context.Context, inputPath string) (string, error)
	tempDir     string
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithTempDir sets the directory for spooled uploads.
// Default is the system temp directory.
func WithTempDir(dir string) Option {
	return func(p *Pipeline) error {
		if dir != "" {
			p.tempDir = dir
		}
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(store storage.MeetingStore, provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	p := &Pipeline{
		store:       store,
		transcriber: provider.Transcriber(),
		summarizer:  provider.Summarizer(),
		extractor:   provider.ActionExtractor(),
		embedder:    provider.Embedder(),
		illustrator: provider.Illustrator(),
		normalize:   transcode.ToWAV,
		tempDir:     os.TempDir(),
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Ingest runs the full pipeline on one uploaded recording and returns the
// persisted meeting. contentType decides whether the input is normalized
// with ffmpeg first; anything with a "video/" prefix is.
//
// Temporary files are removed before Ingest returns, on success and on
// every failure path.
func (p *Pipeline) Ingest(ctx context.Context, r io.Reader, contentType string) (*core.Meeting, error) {
	started := time.Now()
	isVideo := strings.HasPrefix(contentType, "video/")

	rawPath, err := p.spool(r, isVideo)
	if err != nil {
		return nil, err
	}
	defer os.Remove(rawPath)

	audioPath := rawPath
	if isVideo {
		wavPath, err := p.normalize(ctx, rawPath)
		if err != nil {
			p.logger.Error("normalization failed", "err", err)
			return nil, err
		}
		defer os.Remove(wavPath)
		audioPath = wavPath
	}

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		p.logger.Error("transcription failed", "err", err)
		return nil, err
	}
	labelled := labelledTranscript(transcript)
	p.logger.Debug("transcription complete", "chars", len(labelled))

	summary := p.summarize(ctx, labelled)

	actions, err := p.extractor.ExtractActions(ctx, labelled)
	if err != nil {
		p.logger.Error("action extraction failed", "err", err)
		return nil, err
	}
	links := calendar.EventLinks(actions)

	imageURL, err := p.illustrator.Illustrate(ctx, imagePrompt(summary, actions))
	if err != nil {
		p.logger.Error("illustration failed", "err", err)
		return nil, err
	}

	chunks, err := p.embedChunks(ctx, labelled)
	if err != nil {
		p.logger.Error("chunk embedding failed", "err", err)
		return nil, err
	}

	meeting := &core.Meeting{
		Id:            core.NewMeetingID(),
		Title:         truncate(summary, titleLimit),
		Transcript:    labelled,
		Summary:       summary,
		Actions:       actions,
		CalendarLinks: links,
		ImageURL:      imageURL,
		Chunks:        chunks,
		Fingerprint:   core.FingerprintText(labelled),
		CreatedAt:     time.Now().UTC(),
	}

	if err := p.store.Append(ctx, meeting); err != nil {
		p.logger.Error("persist failed", "meeting_id", meeting.Id, "err", err)
		return nil, err
	}

	p.logger.Info("ingestion complete",
		"meeting_id", meeting.Id,
		"actions", len(actions),
		"chunks", len(chunks),
		"elapsed", time.Since(started))

	return meeting, nil
}

// spool writes the upload to a temp file and returns its path.
func (p *Pipeline) spool(r io.Reader, isVideo bool) (string, error) {
	ext := ".mp3"
	if isVideo {
		ext = ".mp4"
	}

	path := filepath.Join(p.tempDir, uuid.NewString()+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}
	if n == 0 {
		os.Remove(path)
		return "", ErrEmptyUpload
	}

	return path, nil
}

// summarize returns the trimmed summary, or the placeholder when the call
// fails or yields nothing. Summarization has a fallback; it never aborts
// the run.
func (p *Pipeline) summarize(ctx context.Context, labelled string) string {
	summary, err := p.summarizer.Summarize(ctx, labelled)
	if err != nil {
		p.logger.Warn("summarization failed, using placeholder", "err", err)
		return summaryPlaceholder
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		p.logger.Warn("summarization returned no text, using placeholder")
		return summaryPlaceholder
	}
	return summary
}

// embedChunks splits the transcript into word windows and embeds each one
// sequentially. A failure on any window aborts; no partial chunk list is
// ever returned.
func (p *Pipeline) embedChunks(ctx context.Context, labelled string) ([]core.Chunk, error) {
	windows := chunkTranscript(labelled)
	chunks := make([]core.Chunk, 0, len(windows))
	for i, window := range windows {
		vec, err := p.embedder.EmbedText(ctx, window)
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %d: %w", i, err)
		}
		chunks = append(chunks, core.Chunk{Text: window, Embedding: vec})
	}
	return chunks, nil
}

// labelledTranscript reconstructs the canonical transcript. When speaker
// segments are present each becomes a "<speaker>: <text>" line in segment
// order; otherwise the plain text is used verbatim.
func labelledTranscript(transcript *ai.Transcript) string {
	if len(transcript.Segments) == 0 {
		return transcript.Text
	}

	lines := make([]string, len(transcript.Segments))
	for i, segment := range transcript.Segments {
		lines[i] = segment.Speaker + ": " + segment.Text
	}
	return strings.Join(lines, "\n")
}

// imagePrompt builds the illustration prompt from the summary prefix and
// up to the first four action titles.
func imagePrompt(summary string, actions []core.ActionItem) string {
	titles := make([]string, 0, promptActionLimit)
	for _, action := range actions {
		if len(titles) >= promptActionLimit {
			break
		}
		titles = append(titles, action.Title)
	}

	return fmt.Sprintf(
		"Professional slide. Title: %q. Subtitle: key actions – %s. "+
			"Style: flat illustration, soft gradients, corporate blue and teal accents. "+
			"Include small action-item icons (checkmark, calendar, chat bubble).",
		truncate(summary, promptSummaryLimit),
		strings.Join(titles, " • "))
}

// truncate bounds s to limit bytes, backing off to a rune boundary so
// the result stays valid UTF-8.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
