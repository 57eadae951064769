package storage

import (
	"context"

	"github.com/poiesic/recall/core"
)

// MeetingStore provides append-only storage of ingested meetings.
// Implementations must be thread-safe and support concurrent access.
type MeetingStore interface {
	// Load initializes the store by reading all persisted meetings into
	// memory. It must be called before any other operation and is
	// idempotent: repeated calls after a successful load are no-ops.
	Load(ctx context.Context) error

	// Append durably persists a meeting and adds it to the in-memory
	// snapshot. The meeting is validated before it is written. A failed
	// write leaves the snapshot unchanged.
	Append(ctx context.Context, meeting *core.Meeting) error

	// Meetings returns all stored meetings in insertion order.
	// The returned slice is a consistent snapshot; callers must not
	// mutate the meetings it contains.
	Meetings(ctx context.Context) ([]*core.Meeting, error)

	// Get retrieves a single meeting by ID.
	// Returns ErrNotFound if the meeting doesn't exist.
	Get(ctx context.Context, id string) (*core.Meeting, error)

	// Count returns the number of stored meetings.
	Count(ctx context.Context) (int, error)

	// Close closes the store and releases resources.
	Close() error
}
