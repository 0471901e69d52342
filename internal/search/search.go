// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search holds the adapters for categories that fetch result cards
// from a remote read-only API, and the formatting of those results.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/omnisearch/pkg/types"
)

// Adapter searches a single remote API. Search never fails: any network,
// status or decoding error degrades to an empty result set and is logged.
type Adapter interface {
	Name() string
	Search(ctx context.Context, term string) []types.ResultItem
}

// NewAdapters returns the adapters keyed by the category they serve.
func NewAdapters(cfg types.Config, client *http.Client) map[types.Category]Adapter {
	return map[types.Category]Adapter{
		types.CategoryMusic: &MusicAdapter{
			Client:    client,
			Endpoint:  cfg.Music.Endpoint,
			RelayURL:  cfg.Music.RelayURL,
			UserAgent: cfg.HTTP.UserAgent,
		},
		types.CategoryCode: &CodeAdapter{
			Client:    client,
			Endpoint:  cfg.Code.Endpoint,
			UserAgent: cfg.HTTP.UserAgent,
		},
	}
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(cat types.Category, items []types.ResultItem, w io.Writer) {
	switch cat {
	case types.CategoryMusic:
		formatTracks(items, w)
	case types.CategoryCode:
		formatRepositories(items, w)
	default:
		fmt.Fprintf(w, "%s has no fetched results.\n", cat.Label())
	}
}

func formatTracks(items []types.ResultItem, w io.Writer) {
	var n int
	for _, it := range items {
		if it.Track != nil {
			n++
		}
	}
	if n == 0 {
		fmt.Fprintln(w, "No music found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-36s  %-24s  %-28s  %s\n", "#", "Title", "Artist", "Album", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 120))
	i := 0
	for _, it := range items {
		tr := it.Track
		if tr == nil {
			continue
		}
		i++
		fmt.Fprintf(w, "%-4d  %-36s  %-24s  %-28s  %s\n",
			i, truncate(tr.Title, 36), truncate(tr.Artist, 24), truncate(tr.Album, 28), tr.Link)
	}
	fmt.Fprintf(w, "\n%d tracks\n", n)
}

func formatRepositories(items []types.ResultItem, w io.Writer) {
	var n int
	for _, it := range items {
		if it.Repository != nil {
			n++
		}
	}
	if n == 0 {
		fmt.Fprintln(w, "No repositories found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-7s  %-6s  %-12s  %s\n", "#", "Name", "Stars", "Forks", "Language", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	i := 0
	for _, it := range items {
		r := it.Repository
		if r == nil {
			continue
		}
		i++
		fmt.Fprintf(w, "%-4d  %-30s  %-7d  %-6d  %-12s  %s\n",
			i, truncate(r.Name, 30), r.Stars, r.Forks, truncate(r.Language, 12), r.URL)
		desc := r.Description
		if desc == "" {
			desc = "No description available."
		}
		fmt.Fprintf(w, "      %s\n", truncate(desc, 100))
	}
	fmt.Fprintf(w, "\n%d repositories\n", n)
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(items []types.ResultItem, w io.Writer) error {
	if items == nil {
		items = []types.ResultItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
