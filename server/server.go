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


package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/ingestion"
	"github.com/poiesic/recall/search"
	"github.com/poiesic/recall/storage"
)

const defaultMaxIngests = 2

// Server handles the HTTP API.
type Server struct {
	store    storage.MeetingStore
	pipeline *ingestion.Pipeline
	searcher *search.Searcher
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMaxIngests bounds the number of pipeline runs executing at once.
// Default is 2.
func WithMaxIngests(n int) Option {
	return func(s *Server) error {
		if n < 1 {
			n = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(n)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewServer creates a new API server.
func NewServer(
	store storage.MeetingStore,
	pipeline *ingestion.Pipeline,
	searcher *search.Searcher,
	opts ...Option,
) (*Server, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	pool, err := ants.NewPool(defaultMaxIngests)
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:    store,
		pipeline: pipeline,
		searcher: searcher,
		pool:     pool,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return s, nil
}

// Router builds the HTTP routing table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/upload", s.handleUpload).Methods("POST")
	r.HandleFunc("/api/search", s.handleSearch).Methods("GET")
	r.HandleFunc("/api/list", s.handleList).Methods("GET")
	r.HandleFunc("/api/meeting", s.handleMeeting).Methods("GET")
	return r
}

// Close releases the ingest worker pool.
func (s *Server) Close() error {
	s.pool.Release()
	return nil
}

// handleUpload ingests a raw recording body. The run executes inside the
// bounded pool; the request blocks until its own run finishes.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	var (
		meeting *core.Meeting
		runErr  error
	)
	done := make(chan struct{})
	err := s.pool.Submit(func() {
		defer close(done)
		meeting, runErr = s.pipeline.Ingest(r.Context(), r.Body, contentType)
	})
	if err != nil {
		s.logger.Error("ingest pool rejected upload", "err", err)
		writeError(w, http.StatusServiceUnavailable, "server busy")
		return
	}
	<-done

	if runErr != nil {
		if errors.Is(runErr, ingestion.ErrEmptyUpload) {
			writeError(w, http.StatusBadRequest, runErr.Error())
			return
		}
		s.logger.Error("ingestion failed", "err", runErr)
		writeError(w, http.StatusInternalServerError, runErr.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": meeting.Id})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	result, err := s.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "missing query")
			return
		}
		s.logger.Error("search failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// meetingSummary is one row of the /api/list response.
type meetingSummary struct {
	Idx      int    `json:"idx"`
	Id       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	meetings, err := s.store.Meetings(r.Context())
	if err != nil {
		s.logger.Error("list failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]meetingSummary, len(meetings))
	for i, meeting := range meetings {
		rows[i] = meetingSummary{
			Idx:      i + 1,
			Id:       meeting.Id,
			Title:    meeting.Title,
			ImageURL: meeting.ImageURL,
		}
	}

	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleMeeting(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}

	meeting, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "meeting not found")
			return
		}
		s.logger.Error("meeting lookup failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, meeting)
}
