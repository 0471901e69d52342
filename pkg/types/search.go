// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the omnisearch
// controller, adapters, resolver, shortcut manager and presentation layers.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name is not one of the six
// recognized tabs.
var ErrUnknownCategory = errors.New("unknown category")

// Category selects which search surface a query is dispatched to.
type Category string

const (
	CategoryWeb    Category = "web"
	CategoryAI     Category = "ai"
	CategorySocial Category = "social"
	CategoryVideo  Category = "video"
	CategoryMusic  Category = "music"
	CategoryCode   Category = "code"
)

// Categories returns the categories in tab order.
func Categories() []Category {
	return []Category{CategoryWeb, CategoryAI, CategorySocial, CategoryVideo, CategoryMusic, CategoryCode}
}

// ParseCategory maps a user-supplied name onto a Category. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Fetches reports whether the category is served by a remote search adapter
// rather than the static deep-link panel.
func (c Category) Fetches() bool {
	return c == CategoryMusic || c == CategoryCode
}

// Label returns the tab label shown to the user.
func (c Category) Label() string {
	switch c {
	case CategoryAI:
		return "AI"
	case "":
		return ""
	default:
		return strings.ToUpper(string(c[:1])) + string(c[1:])
	}
}

// ResultKind discriminates the ResultItem variant.
type ResultKind string

const (
	KindTrack       ResultKind = "track"
	KindRepository  ResultKind = "repository"
	KindPlaceholder ResultKind = "placeholder"
)

// MusicTrack is a normalized track returned by the music adapter.
type MusicTrack struct {
	Title      string `json:"title" yaml:"title"`
	Artist     string `json:"artist" yaml:"artist"`
	Album      string `json:"album" yaml:"album"`
	ArtworkURL string `json:"artwork_url,omitempty" yaml:"artwork_url,omitempty"`

	// Link opens a streaming-service search for "title artist".
	Link string `json:"link" yaml:"link"`
}

// CodeRepository is a normalized repository returned by the code adapter.
type CodeRepository struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Stars       int    `json:"stars" yaml:"stars"`
	Forks       int    `json:"forks" yaml:"forks"`
	Language    string `json:"language,omitempty" yaml:"language,omitempty"`
	URL         string `json:"url" yaml:"url"`
}

// ResultItem is one entry of a result set. Exactly one of Track or
// Repository is set for the track and repository kinds; a placeholder
// carries neither and tells the presentation layer to render the deep-link
// panel for the active category.
type ResultItem struct {
	Kind       ResultKind      `json:"kind" yaml:"kind"`
	Track      *MusicTrack     `json:"track,omitempty" yaml:"track,omitempty"`
	Repository *CodeRepository `json:"repository,omitempty" yaml:"repository,omitempty"`
}

// TrackItem wraps a track as a ResultItem.
func TrackItem(t MusicTrack) ResultItem {
	return ResultItem{Kind: KindTrack, Track: &t}
}

// RepositoryItem wraps a repository as a ResultItem.
func RepositoryItem(r CodeRepository) ResultItem {
	return ResultItem{Kind: KindRepository, Repository: &r}
}

// PlaceholderItem returns the deep-link sentinel.
func PlaceholderItem() ResultItem {
	return ResultItem{Kind: KindPlaceholder}
}

// SearchState is the session state owned by the query controller.
type SearchState struct {
	Query            string       `json:"query"`
	ActiveCategory   Category     `json:"active_category"`
	LastSearchedTerm string       `json:"last_searched_term"`
	Results          []ResultItem `json:"results"`
	IsLoading        bool         `json:"is_loading"`
}

// HasPlaceholder reports whether the result set is the deep-link sentinel.
func (s SearchState) HasPlaceholder() bool {
	return len(s.Results) == 1 && s.Results[0].Kind == KindPlaceholder
}
