// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/pdiddy/omnisearch/pkg/types"
)

func TestNewAdapters(t *testing.T) {
	cfg := types.Config{
		HTTP:  types.HTTPConfig{UserAgent: "test/0.1"},
		Music: types.MusicConfig{Endpoint: "https://m.example", RelayURL: "https://relay.example/raw"},
		Code:  types.CodeConfig{Endpoint: "https://c.example"},
	}
	adapters := NewAdapters(cfg, http.DefaultClient)

	if len(adapters) != 2 {
		t.Fatalf("len(adapters) = %d, want 2", len(adapters))
	}
	m, ok := adapters[types.CategoryMusic].(*MusicAdapter)
	if !ok || m.RelayURL != "https://relay.example/raw" || m.UserAgent != "test/0.1" {
		t.Errorf("music adapter = %+v", adapters[types.CategoryMusic])
	}
	c, ok := adapters[types.CategoryCode].(*CodeAdapter)
	if !ok || c.Endpoint != "https://c.example" {
		t.Errorf("code adapter = %+v", adapters[types.CategoryCode])
	}
}

func TestFormatTableEmptyStates(t *testing.T) {
	tests := []struct {
		cat  types.Category
		want string
	}{
		{types.CategoryMusic, "No music found."},
		{types.CategoryCode, "No repositories found."},
		{types.CategoryWeb, "no fetched results"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		FormatTable(tt.cat, nil, &buf)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("FormatTable(%s) = %q, want %q", tt.cat, buf.String(), tt.want)
		}
	}
}

func TestFormatTableRows(t *testing.T) {
	items := []types.ResultItem{
		types.RepositoryItem(types.CodeRepository{Name: "go", Stars: 10, Forks: 2, Language: "Go", URL: "https://github.com/golang/go"}),
	}
	var buf bytes.Buffer
	FormatTable(types.CategoryCode, items, &buf)
	out := buf.String()
	for _, want := range []string{"go", "https://github.com/golang/go", "No description available.", "1 repositories"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	tracks := []types.ResultItem{types.TrackItem(types.MusicTrack{Title: "Around the World", Artist: "Daft Punk", Album: "Homework"})}
	FormatTable(types.CategoryMusic, tracks, &buf)
	if !strings.Contains(buf.String(), "Around the World") || !strings.Contains(buf.String(), "1 tracks") {
		t.Errorf("track output:\n%s", buf.String())
	}
}

func TestFormatJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(nil, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	var decoded []types.ResultItem
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("FormatJSON(nil) = %q, want []", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("東京タワーの夜景", 6); got != "東京タ..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
}
