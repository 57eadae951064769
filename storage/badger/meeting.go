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


package badger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
)

// MeetingStore implements storage.MeetingStore for BadgerDB.
//
// Meetings are stored as values under sequence-ordered keys, so iterating
// the key prefix yields insertion order. The full collection is read into
// memory on Load; reads are served from that snapshot, and Append commits
// the badger transaction before touching the snapshot so a failed write
// never leaves a phantom meeting in memory.
type MeetingStore struct {
	backend *Backend
	idSeq   *badger.Sequence
	logger  *slog.Logger

	mu       sync.RWMutex
	loaded   bool
	meetings []*core.Meeting
	byID     map[string]*core.Meeting
	seen     map[core.Fingerprint]string
}

var _ storage.MeetingStore = (*MeetingStore)(nil)

// NewMeetingStore creates a new MeetingStore on the given backend.
func NewMeetingStore(backend *Backend) (storage.MeetingStore, error) {
	idSeq, err := backend.GetSequence(meetingIDSeq)
	if err != nil {
		return nil, err
	}

	return &MeetingStore{
		backend: backend,
		idSeq:   idSeq,
		logger:  slog.Default().With("component", "meeting-store"),
		byID:    make(map[string]*core.Meeting),
		seen:    make(map[core.Fingerprint]string),
	}, nil
}

// Load reads all persisted meetings into the in-memory snapshot.
// Idempotent: calls after a successful load are no-ops.
func (s *MeetingStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	var meetings []*core.Meeting
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(meetingPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var meeting *core.Meeting
			err := iter.Item().Value(func(val []byte) error {
				var err error
				meeting, err = storage.UnmarshalMeeting(val)
				return err
			})
			if err != nil {
				return err
			}
			meetings = append(meetings, meeting)
		}
		return nil
	}, false)
	if err != nil {
		return err
	}

	s.meetings = meetings
	for _, meeting := range meetings {
		s.byID[meeting.Id] = meeting
		if meeting.Fingerprint != 0 {
			s.seen[meeting.Fingerprint] = meeting.Id
		}
	}
	s.loaded = true

	s.logger.Info("meeting store loaded", "meetings", len(meetings))
	return nil
}

// Append durably persists a meeting and adds it to the snapshot.
func (s *MeetingStore) Append(ctx context.Context, meeting *core.Meeting) error {
	if err := core.ValidateMeeting(meeting); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return storage.ErrNotLoaded
	}

	if prior, ok := s.seen[meeting.Fingerprint]; ok && meeting.Fingerprint != 0 {
		s.logger.Warn("duplicate transcript fingerprint",
			"meeting_id", meeting.Id,
			"prior_meeting_id", prior)
	}

	value, err := storage.MarshalMeeting(meeting)
	if err != nil {
		return err
	}

	err = s.backend.WithTx(func(tx *badger.Txn) error {
		seq, err := s.idSeq.Next()
		if err != nil {
			return err
		}
		if err := tx.Set(makeMeetingKey(seq), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	// Commit succeeded; now it is safe to mutate the snapshot.
	s.meetings = append(s.meetings, meeting)
	s.byID[meeting.Id] = meeting
	if meeting.Fingerprint != 0 {
		s.seen[meeting.Fingerprint] = meeting.Id
	}

	return nil
}

// Meetings returns all stored meetings in insertion order.
func (s *MeetingStore) Meetings(ctx context.Context) ([]*core.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, storage.ErrNotLoaded
	}

	snapshot := make([]*core.Meeting, len(s.meetings))
	copy(snapshot, s.meetings)
	return snapshot, nil
}

// Get retrieves a single meeting by ID.
func (s *MeetingStore) Get(ctx context.Context, id string) (*core.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, storage.ErrNotLoaded
	}

	meeting, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return meeting, nil
}

// Count returns the number of stored meetings.
func (s *MeetingStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return 0, storage.ErrNotLoaded
	}
	return len(s.meetings), nil
}

// Close releases the ID sequence.
func (s *MeetingStore) Close() error {
	return s.idSeq.Release()
}
