// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httpapi exposes the search session, the quick access order and
// preferences as a local JSON API for a browser front end.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/controller"
	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/internal/shortcuts"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// Preferences reads and writes the persisted auto-listen flag.
type Preferences interface {
	AutoListen(ctx context.Context) bool
	SetAutoListen(on bool) error
}

// Server serves the JSON API.
type Server struct {
	ctrl      *controller.Controller
	shortcuts *shortcuts.Manager
	prefs     Preferences
}

// NewServer constructs a Server.
func NewServer(ctrl *controller.Controller, sc *shortcuts.Manager, prefs Preferences) *Server {
	return &Server{ctrl: ctrl, shortcuts: sc, prefs: prefs}
}

// Handler returns an http.Handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/category", s.handleCategory)
	mux.HandleFunc("/api/links", s.handleLinks)
	mux.HandleFunc("/api/shortcuts", s.handleShortcuts)
	mux.HandleFunc("/api/shortcuts/move", s.handleShortcutMove)
	mux.HandleFunc("/api/shortcuts/reset", s.handleShortcutReset)
	mux.HandleFunc("/api/prefs/auto-listen", s.handleAutoListen)
	return withRequestLogging(mux)
}

// stateResponse is the session state plus the deep-link rows for the
// active category, so a front end can render either panel from one call.
type stateResponse struct {
	State types.SearchState `json:"state"`
	Links []deeplink.Link   `json:"links"`
}

func (s *Server) stateResponse() stateResponse {
	links := s.ctrl.Links()
	if links == nil {
		links = []deeplink.Link{}
	}
	return stateResponse{State: s.ctrl.Snapshot(), Links: links}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	log := pslog.Ctx(r.Context())
	var payload struct {
		Term     string `json:"term"`
		Category string `json:"category"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		log.Warn("http search decode failed", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.ctrl.SetQuery(payload.Term)
	var err error
	if payload.Category == "" {
		err = s.ctrl.Search(r.Context(), payload.Term)
	} else {
		var cat types.Category
		cat, err = types.ParseCategory(payload.Category)
		if err == nil {
			err = s.ctrl.SearchCategory(r.Context(), cat, payload.Term)
		}
	}
	if err != nil {
		log.Warn("http search failed", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp := s.stateResponse()
	writeJSON(w, http.StatusOK, resp)
	log.Info("http search ok", "category", string(resp.State.ActiveCategory), "count", len(resp.State.Results))
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	log := pslog.Ctx(r.Context())
	var payload struct {
		Category string `json:"category"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		log.Warn("http category decode failed", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cat, err := types.ParseCategory(payload.Category)
	if err == nil {
		err = s.ctrl.SetCategory(r.Context(), cat)
	}
	if err != nil {
		log.Warn("http category failed", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	term := q.Get("term")
	if term == "" {
		writeJSON(w, http.StatusOK, s.stateResponse().Links)
		return
	}
	cat := s.ctrl.Snapshot().ActiveCategory
	if name := q.Get("category"); name != "" {
		var err error
		if cat, err = types.ParseCategory(name); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	links := deeplink.ForCategory(cat, term)
	if links == nil {
		links = []deeplink.Link{}
	}
	writeJSON(w, http.StatusOK, links)
}

// shortcutView is a shortcut with its URL resolved for the current term.
type shortcutView struct {
	types.ShortcutDefinition
	URL string `json:"url"`
}

type shortcutsResponse struct {
	State     shortcuts.State `json:"state"`
	Shortcuts []shortcutView  `json:"shortcuts"`
}

func (s *Server) shortcutsResponse(term string) shortcutsResponse {
	list := s.shortcuts.List()
	views := make([]shortcutView, 0, len(list))
	for _, d := range list {
		views = append(views, shortcutView{ShortcutDefinition: d, URL: deeplink.ResolveShortcut(d, term).URL})
	}
	return shortcutsResponse{State: s.shortcuts.State(), Shortcuts: views}
}

func (s *Server) termOrLast(r *http.Request) string {
	if term := r.URL.Query().Get("term"); term != "" {
		return term
	}
	return s.ctrl.Snapshot().LastSearchedTerm
}

func (s *Server) handleShortcuts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.shortcutsResponse(s.termOrLast(r)))
}

func (s *Server) handleShortcutMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	log := pslog.Ctx(r.Context())
	var payload struct {
		Dragged string `json:"dragged"`
		Target  string `json:"target"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		log.Warn("http shortcut move decode failed", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.shortcuts.Move(r.Context(), payload.Dragged, payload.Target); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, shortcuts.ErrUnknownShortcut) {
			status = http.StatusNotFound
		}
		log.Warn("http shortcut move failed", "err", err)
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, s.shortcutsResponse(s.termOrLast(r)))
	log.Info("http shortcut move ok", "dragged", payload.Dragged, "target", payload.Target)
}

func (s *Server) handleShortcutReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := s.shortcuts.Reset(r.Context()); err != nil {
		pslog.Ctx(r.Context()).Warn("http shortcut reset failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, s.shortcutsResponse(s.termOrLast(r)))
}

type autoListenPayload struct {
	AutoListen bool `json:"auto_listen"`
}

func (s *Server) handleAutoListen(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, autoListenPayload{AutoListen: s.prefs.AutoListen(r.Context())})
	case http.MethodPut:
		var payload autoListenPayload
		if err := decodeJSON(r.Body, &payload); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.prefs.SetAutoListen(payload.AutoListen); err != nil {
			pslog.Ctx(r.Context()).Warn("http auto-listen save failed", "err", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func decodeJSON(body io.Reader, target any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}
