// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/omnisearch/internal/controller"
	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/internal/search"
	"github.com/pdiddy/omnisearch/internal/shortcuts"
	"github.com/pdiddy/omnisearch/internal/store"
	"github.com/pdiddy/omnisearch/pkg/types"
)

type stubAdapter struct{}

func (stubAdapter) Name() string { return "music" }

func (stubAdapter) Search(_ context.Context, term string) []types.ResultItem {
	return []types.ResultItem{types.TrackItem(types.MusicTrack{Title: term, Artist: "Daft Punk"})}
}

type failingKV struct{ *store.Memory }

func (failingKV) Put(string, []byte) error { return errors.New("read-only filesystem") }

func newTestServer(t *testing.T, kv store.KV) *httptest.Server {
	t.Helper()
	ctrl := controller.New(map[types.Category]search.Adapter{types.CategoryMusic: stubAdapter{}})
	sc := shortcuts.Load(context.Background(), kv)
	srv := NewServer(ctrl, sc, store.Preferences{KV: kv})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, store.NewMemory())
	resp, body := do(t, http.MethodGet, ts.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestSearchDeepLinkCategory(t *testing.T) {
	ts := newTestServer(t, store.NewMemory())
	resp, body := do(t, http.MethodPost, ts.URL+"/api/search", `{"term":"best pizza"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got stateResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "best pizza", got.State.LastSearchedTerm)
	assert.True(t, got.State.HasPlaceholder())
	require.Len(t, got.Links, 3)
	assert.Equal(t, `https://www.google.com/search?q="best%20pizza"`, got.Links[0].URL)
}

func TestSearchMusicThenSwitchCategory(t *testing.T) {
	ts := newTestServer(t, store.NewMemory())
	resp, body := do(t, http.MethodPost, ts.URL+"/api/search", `{"term":"one more time","category":"Music"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got stateResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, types.CategoryMusic, got.State.ActiveCategory)
	require.Len(t, got.State.Results, 1)
	assert.Equal(t, "one more time", got.State.Results[0].Track.Title)
	assert.Empty(t, got.Links)

	resp, body = do(t, http.MethodPost, ts.URL+"/api/category", `{"category":"video"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &got))
	assert.True(t, got.State.HasPlaceholder())
	require.Len(t, got.Links, 3)
	assert.Equal(t, "https://www.youtube.com/results?search_query=one%20more%20time", got.Links[0].URL)

	resp, body = do(t, http.MethodGet, ts.URL+"/api/state", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, types.CategoryVideo, got.State.ActiveCategory)
}

func TestSearchErrors(t *testing.T) {
	ts := newTestServer(t, store.NewMemory())
	tests := []struct {
		name, body string
	}{
		{"empty term", `{"term":"   "}`},
		{"unknown category", `{"term":"x","category":"radio"}`},
		{"unknown field", `{"query":"x"}`},
		{"not json", `term=x`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPost, ts.URL+"/api/search", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var e map[string]string
			require.NoError(t, json.Unmarshal(body, &e))
			assert.NotEmpty(t, e["error"])
		})
	}

	resp, _ := do(t, http.MethodGet, ts.URL+"/api/search", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, ts.URL+"/api/category", `{"category":"radio"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLinksQuery(t *testing.T) {
	ts := newTestServer(t, store.NewMemory())

	resp, body := do(t, http.MethodGet, ts.URL+"/api/links", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, body = do(t, http.MethodGet, ts.URL+"/api/links?term=hello+world&category=social", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var links []deeplink.Link
	require.NoError(t, json.Unmarshal(body, &links))
	require.Len(t, links, 4)
	assert.Equal(t, "https://www.instagram.com/explore/tags/helloworld/", links[0].URL)

	resp, _ = do(t, http.MethodGet, ts.URL+"/api/links?term=x&category=radio", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShortcutsListAndMove(t *testing.T) {
	kv := store.NewMemory()
	ts := newTestServer(t, kv)

	resp, body := do(t, http.MethodGet, ts.URL+"/api/shortcuts?term=go", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got shortcutsResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, shortcuts.StateDefault, got.State)
	require.Len(t, got.Shortcuts, 12)
	assert.Equal(t, "https://www.google.com/search?q=go", got.Shortcuts[0].URL)

	resp, body = do(t, http.MethodPost, ts.URL+"/api/shortcuts/move", `{"dragged":"vimeo","target":"google"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, shortcuts.StateReordered, got.State)
	assert.Equal(t, "vimeo", got.Shortcuts[0].ID)

	// Persisted: a fresh manager over the same store sees the new order.
	assert.Equal(t, "vimeo", shortcuts.Load(context.Background(), kv).List()[0].ID)

	resp, _ = do(t, http.MethodPost, ts.URL+"/api/shortcuts/move", `{"dragged":"myspace","target":"google"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, http.MethodPost, ts.URL+"/api/shortcuts/reset", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "google", got.Shortcuts[0].ID)
}

func TestShortcutMoveWriteFailure(t *testing.T) {
	ts := newTestServer(t, failingKV{store.NewMemory()})
	resp, _ := do(t, http.MethodPost, ts.URL+"/api/shortcuts/move", `{"dragged":"vimeo","target":"google"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	_, body := do(t, http.MethodGet, ts.URL+"/api/shortcuts", "")
	var got shortcutsResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "vimeo", got.Shortcuts[0].ID, "in-memory order survives the failed write")
}

func TestAutoListenPreference(t *testing.T) {
	ts := newTestServer(t, store.NewMemory())

	_, body := do(t, http.MethodGet, ts.URL+"/api/prefs/auto-listen", "")
	assert.JSONEq(t, `{"auto_listen":false}`, string(body))

	resp, body := do(t, http.MethodPut, ts.URL+"/api/prefs/auto-listen", `{"auto_listen":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"auto_listen":true}`, string(body))

	_, body = do(t, http.MethodGet, ts.URL+"/api/prefs/auto-listen", "")
	assert.JSONEq(t, `{"auto_listen":true}`, string(body))

	resp, _ = do(t, http.MethodDelete, ts.URL+"/api/prefs/auto-listen", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRequestLoggingRecordsStatus(t *testing.T) {
	h := withRequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?y=1", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.True(t, bytes.Equal([]byte("short and stout"), rec.Body.Bytes()))
}

func TestRequestIDKeepsCallerUUID(t *testing.T) {
	var seen string
	h := withRequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(RequestIDHeader)
	}))

	const id = "3f2c1a9e-8d7b-4c6a-9e5f-1b2a3c4d5e6f"
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, id, seen)

	r = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(RequestIDHeader, "not-a-uuid\r\ninjected")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	got := rec.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid\r\ninjected", got)
	assert.Len(t, got, 36)
}

func TestStatusWriterDefaultsToOK(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, sw.code())
	_, _ = sw.Write([]byte("ok"))
	sw.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusOK, sw.code(), "first status wins")
	assert.EqualValues(t, 2, sw.size)
}

func TestRemoteHost(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "192.0.2.1", remoteHost(r))

	r.RemoteAddr = "@"
	assert.Equal(t, "@", remoteHost(r))
}
