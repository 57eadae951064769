package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/ai/mock"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/ingestion"
	"github.com/poiesic/recall/search"
	"github.com/poiesic/recall/storage"
	"github.com/poiesic/recall/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server   *Server
	router   http.Handler
	store    storage.MeetingStore
	provider *mock.MockProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store, backend, err := badger.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
		backend.Close()
	})

	provider := mock.NewMockProvider().(*mock.MockProvider)

	pipeline, err := ingestion.NewPipeline(store, provider,
		ingestion.WithTempDir(t.TempDir()))
	require.NoError(t, err)

	searcher, err := search.NewSearcher(store, provider)
	require.NoError(t, err)

	server, err := NewServer(store, pipeline, searcher)
	require.NoError(t, err)
	t.Cleanup(func() { server.Close() })

	return &testServer{
		server:   server,
		router:   server.Router(),
		store:    store,
		provider: provider,
	}
}

func (ts *testServer) upload(t *testing.T, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func TestNewServer(t *testing.T) {
	ts := newTestServer(t)

	t.Run("nil store", func(t *testing.T) {
		_, err := NewServer(nil, ts.server.pipeline, ts.server.searcher)
		assert.Equal(t, ErrStoreRequired, err)
	})

	t.Run("nil pipeline", func(t *testing.T) {
		_, err := NewServer(ts.store, nil, ts.server.searcher)
		assert.Equal(t, ErrPipelineRequired, err)
	})

	t.Run("nil searcher", func(t *testing.T) {
		_, err := NewServer(ts.store, ts.server.pipeline, nil)
		assert.Equal(t, ErrSearcherRequired, err)
	})
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.upload(t, "fake audio bytes", "audio/mpeg")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK bool   `json:"ok"`
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.NotEmpty(t, body.Id)

	count, err := ts.store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUploadRejectsNonPost(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get(t, "/api/upload")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUploadEmptyBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.upload(t, "", "audio/mpeg")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadPipelineFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.provider.GetMockExtractor().ExtractActionsFunc = func(ctx context.Context, transcript string) ([]core.ActionItem, error) {
		return nil, ai.ErrMalformedResponse
	}

	rec := ts.upload(t, "fake audio bytes", "audio/mpeg")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")

	count, err := ts.store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSearchMissingQuery(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		rec := ts.get(t, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}

	// Rejected before any inference call.
	assert.Zero(t, ts.provider.GetMockEmbedder().CallCount())
}

func TestSearchReturnsHits(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.upload(t, "fake audio bytes", "audio/mpeg")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.get(t, "/api/search?q=follow+up")
	require.Equal(t, http.StatusOK, rec.Code)

	var result search.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, 1, result.Hits[0].Idx)
	assert.True(t, result.Hits[0].Score >= 0.05)
}

func TestList(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusOK, ts.upload(t, "recording one", "audio/mpeg").Code)
	require.Equal(t, http.StatusOK, ts.upload(t, "recording two", "audio/mpeg").Code)

	rec := ts.get(t, "/api/list")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []meetingSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Idx)
	assert.Equal(t, 2, rows[1].Idx)
	assert.NotEmpty(t, rows[0].Id)
	assert.NotEmpty(t, rows[0].Title)
}

func TestMeetingDetail(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.upload(t, "fake audio bytes", "audio/mpeg")
	require.Equal(t, http.StatusOK, rec.Code)

	var uploaded struct {
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploaded))

	rec = ts.get(t, "/api/meeting?id="+uploaded.Id)
	require.Equal(t, http.StatusOK, rec.Code)

	var meeting core.Meeting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meeting))
	assert.Equal(t, uploaded.Id, meeting.Id)
	assert.NotEmpty(t, meeting.Transcript)
	assert.Len(t, meeting.CalendarLinks, len(meeting.Actions))
}

func TestMeetingDetailErrors(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get(t, "/api/meeting")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get(t, "/api/meeting?id=unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
