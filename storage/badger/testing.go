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

	"github.com/poiesic/recall/storage"
)

// NewMemoryStore creates a loaded in-memory meeting store for testing.
// Returns store, backend, and error.
// Caller must close both the store and backend when done.
func NewMemoryStore() (storage.MeetingStore, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	store, err := NewMeetingStore(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	if err := store.Load(context.Background()); err != nil {
		store.Close()
		backend.Close()
		return nil, nil, err
	}

	return store, backend, nil
}
