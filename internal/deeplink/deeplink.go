// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deeplink maps a platform and a query onto an external URL that
// opens the platform pre-populated with the query. Everything here is pure:
// no network, no state.
package deeplink

import (
	"errors"
	"fmt"

	"github.com/pdiddy/omnisearch/pkg/types"
)

// ErrUnknownTarget is returned by Resolve for an id not in the catalog.
var ErrUnknownTarget = errors.New("unknown deep-link target")

// Target is one entry of the deep-link catalog.
type Target struct {
	ID          string
	Name        string
	Description string
	Category    types.Category
	BaseURL     string
	Suffix      string
	Encoding    types.Encoding

	// CopyIntent marks destinations without a query-string entry point; the
	// term is copied to the clipboard before navigating.
	CopyIntent bool
}

// Link is a resolved target for a concrete term.
type Link struct {
	TargetID    string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	CopyIntent  bool   `json:"copy_intent"`
	Term        string `json:"term"`
}

const spotifySearchBase = "https://open.spotify.com/search/"

var catalog = []Target{
	{ID: "google-exact", Name: "Google Exact Match", Description: "Find exact matches for your query",
		Category: types.CategoryWeb, BaseURL: `https://www.google.com/search?q="`, Suffix: `"`, Encoding: types.EncodePercent},
	{ID: "google", Name: "Google Search", Description: "Standard Google search results",
		Category: types.CategoryWeb, BaseURL: "https://www.google.com/search?q=", Encoding: types.EncodePercent},
	{ID: "duckduckgo", Name: "DuckDuckGo", Description: "Private search without tracking",
		Category: types.CategoryWeb, BaseURL: "https://duckduckgo.com/?q=", Encoding: types.EncodePercent},

	{ID: "chatgpt", Name: "ChatGPT", Description: "Opens ChatGPT (Query copied)",
		Category: types.CategoryAI, BaseURL: "https://chatgpt.com/", Encoding: types.EncodeNone, CopyIntent: true},
	{ID: "gemini", Name: "Gemini", Description: "Opens Google Gemini (Query copied)",
		Category: types.CategoryAI, BaseURL: "https://gemini.google.com/app", Encoding: types.EncodeNone, CopyIntent: true},
	{ID: "perplexity", Name: "Perplexity", Description: "AI-powered answer engine",
		Category: types.CategoryAI, BaseURL: "https://www.perplexity.ai/search?q=", Encoding: types.EncodePercent},

	{ID: "youtube", Name: "YouTube",
		Category: types.CategoryVideo, BaseURL: "https://www.youtube.com/results?search_query=", Encoding: types.EncodePercent},
	{ID: "vimeo", Name: "Vimeo",
		Category: types.CategoryVideo, BaseURL: "https://vimeo.com/search?q=", Encoding: types.EncodePercent},
	{ID: "dailymotion", Name: "Dailymotion",
		Category: types.CategoryVideo, BaseURL: "https://www.dailymotion.com/search/", Encoding: types.EncodePercent},

	{ID: "instagram", Name: "Instagram", Description: "Search Hashtags",
		Category: types.CategorySocial, BaseURL: "https://www.instagram.com/explore/tags/", Suffix: "/", Encoding: types.EncodeTag},
	{ID: "linkedin", Name: "LinkedIn", Description: "Search People & Jobs",
		Category: types.CategorySocial, BaseURL: "https://www.linkedin.com/search/results/all/?keywords=", Encoding: types.EncodePercent},
	{ID: "reddit", Name: "Reddit",
		Category: types.CategorySocial, BaseURL: "https://www.reddit.com/search/?q=", Encoding: types.EncodePercent},
	{ID: "twitter", Name: "Twitter / X",
		Category: types.CategorySocial, BaseURL: "https://twitter.com/search?q=", Encoding: types.EncodePercent},
}

// Catalog returns a copy of every target in display order.
func Catalog() []Target {
	out := make([]Target, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the target with the given id.
func Lookup(id string) (Target, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

// Build splices term into base and suffix according to enc. An empty
// encoding is treated as EncodePercent.
func Build(base, suffix string, enc types.Encoding, term string) string {
	switch enc {
	case types.EncodeNone:
		return base + suffix
	case types.EncodeTag:
		return base + StripWhitespace(term) + suffix
	default:
		return base + EncodeComponent(term) + suffix
	}
}

// Link resolves t for term.
func (t Target) Link(term string) Link {
	desc := t.Description
	if desc == "" {
		desc = fmt.Sprintf("Search %s for %q", t.Name, term)
	}
	return Link{
		TargetID:    t.ID,
		Name:        t.Name,
		Description: desc,
		URL:         Build(t.BaseURL, t.Suffix, t.Encoding, term),
		CopyIntent:  t.CopyIntent,
		Term:        term,
	}
}

// Resolve returns the link for the target id and term.
func Resolve(id, term string) (Link, error) {
	t, ok := Lookup(id)
	if !ok {
		return Link{}, fmt.Errorf("%w: %q", ErrUnknownTarget, id)
	}
	return t.Link(term), nil
}

// ForCategory returns the deep-link rows for a category in display order.
// Fetching categories (music, code) have no deep-link panel and yield nil.
func ForCategory(cat types.Category, term string) []Link {
	var links []Link
	for _, t := range catalog {
		if t.Category == cat {
			links = append(links, t.Link(term))
		}
	}
	return links
}

// ResolveShortcut resolves a quick access shortcut for term.
func ResolveShortcut(def types.ShortcutDefinition, term string) Link {
	return Link{
		TargetID:    def.ID,
		Name:        def.Label,
		Description: def.Label,
		URL:         Build(def.BaseURL, def.URLSuffix, def.Encoding, term),
		CopyIntent:  def.RequiresClipboardCopy,
		Term:        term,
	}
}

// TrackLink returns a streaming-service search URL for a track.
func TrackLink(title, artist string) string {
	return spotifySearchBase + EncodeComponent(title+" "+artist)
}
