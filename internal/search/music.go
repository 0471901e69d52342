// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/internal/httputil"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// musicAPIBase is the track search endpoint used when MusicAdapter.Endpoint
// is empty. Declared as a var so tests can substitute an httptest server.
var musicAPIBase = "https://itunes.apple.com/search"

// MusicLimit caps the number of tracks requested.
const MusicLimit = 12

// MusicAdapter searches a public track catalog. Requests go through a
// CORS-relaxing relay when RelayURL is set, which adds the relay's own
// availability to the failure modes.
type MusicAdapter struct {
	Client    *http.Client
	Endpoint  string
	RelayURL  string
	UserAgent string
}

// Name returns the adapter identifier.
func (a *MusicAdapter) Name() string { return "music" }

// Search returns up to MusicLimit tracks for term, or an empty slice.
func (a *MusicAdapter) Search(ctx context.Context, term string) []types.ResultItem {
	items, err := a.fetch(ctx, term)
	if err != nil {
		pslog.Ctx(ctx).Warn("music search failed", "term", term, "err", err)
		return []types.ResultItem{}
	}
	return items
}

func (a *MusicAdapter) fetch(ctx context.Context, term string) ([]types.ResultItem, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("empty term")
	}

	var resp musicResponse
	if err := httputil.GetJSON(ctx, a.Client, a.requestURL(term), a.UserAgent, &resp); err != nil {
		return nil, err
	}

	items := make([]types.ResultItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.TrackName == "" {
			continue
		}
		items = append(items, types.TrackItem(types.MusicTrack{
			Title:      r.TrackName,
			Artist:     r.ArtistName,
			Album:      r.CollectionName,
			ArtworkURL: strings.Replace(r.ArtworkURL100, "100x100", "600x600", 1),
			Link:       deeplink.TrackLink(r.TrackName, r.ArtistName),
		}))
	}
	return items, nil
}

// requestURL builds the catalog URL and, when a relay is configured, wraps
// it as the relay's url parameter.
func (a *MusicAdapter) requestURL(term string) string {
	endpoint := a.Endpoint
	if endpoint == "" {
		endpoint = musicAPIBase
	}
	target := fmt.Sprintf("%s?term=%s&media=music&limit=%d", endpoint, deeplink.EncodeComponent(term), MusicLimit)
	if a.RelayURL == "" {
		return target
	}
	return a.RelayURL + "?url=" + deeplink.EncodeComponent(target)
}

// Track catalog JSON structures.
type musicResponse struct {
	ResultCount int           `json:"resultCount"`
	Results     []musicResult `json:"results"`
}

type musicResult struct {
	TrackName      string `json:"trackName"`
	ArtistName     string `json:"artistName"`
	ArtworkURL100  string `json:"artworkUrl100"`
	CollectionName string `json:"collectionName"`
}
