package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// Fingerprint is a content hash of a labelled transcript.
// Identical transcripts produce identical fingerprints, which lets the
// store flag a recording that was ingested twice.
type Fingerprint uint64

// FingerprintText computes a deterministic fingerprint from text content
// using BLAKE2b hashing.
func FingerprintText(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// NewMeetingID generates a fresh opaque meeting identifier.
func NewMeetingID() string {
	return uuid.NewString()
}

// Meeting is one fully ingested recording. It is assembled once at the end
// of a successful pipeline run, appended to the store, and never mutated
// afterwards.
type Meeting struct {
	Id            string       `json:"id"`
	Title         string       `json:"title"`
	Transcript    string       `json:"transcript"`
	Summary       string       `json:"summary"`
	Actions       []ActionItem `json:"actions"`
	CalendarLinks []string     `json:"calendarLinks"`
	ImageURL      string       `json:"imageUrl"`
	Chunks        []Chunk      `json:"chunks"`
	Fingerprint   Fingerprint  `json:"fingerprint"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// ActionItem is a single follow-up extracted from a transcript.
// Title and Owner are required; Due is free-form and optional.
type ActionItem struct {
	Title string `json:"title"`
	Owner string `json:"owner"`
	Due   string `json:"due,omitempty"`
}

// Chunk is a contiguous word-window slice of the labelled transcript paired
// with its embedding vector. The vector dimension is constant across the
// whole corpus.
type Chunk struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
}
