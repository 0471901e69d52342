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

// codeAPIBase is the repository search endpoint used when
// CodeAdapter.Endpoint is empty.
var codeAPIBase = "https://api.github.com/search/repositories"

// CodeLimit caps the number of repositories requested.
const CodeLimit = 9

// CodeAdapter searches public repositories by popularity. Requests are
// anonymous, so the host's anonymous rate limit applies; a limited request
// yields zero results.
type CodeAdapter struct {
	Client    *http.Client
	Endpoint  string
	UserAgent string
}

// Name returns the adapter identifier.
func (a *CodeAdapter) Name() string { return "code" }

// Search returns up to CodeLimit repositories for term sorted by stars, or
// an empty slice.
func (a *CodeAdapter) Search(ctx context.Context, term string) []types.ResultItem {
	items, err := a.fetch(ctx, term)
	if err != nil {
		pslog.Ctx(ctx).Warn("code search failed", "term", term, "err", err)
		return []types.ResultItem{}
	}
	return items
}

func (a *CodeAdapter) fetch(ctx context.Context, term string) ([]types.ResultItem, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("empty term")
	}

	endpoint := a.Endpoint
	if endpoint == "" {
		endpoint = codeAPIBase
	}
	reqURL := fmt.Sprintf("%s?q=%s&sort=stars&order=desc&per_page=%d", endpoint, deeplink.EncodeComponent(term), CodeLimit)

	var resp codeResponse
	if err := httputil.GetJSON(ctx, a.Client, reqURL, a.UserAgent, &resp); err != nil {
		return nil, err
	}

	items := make([]types.ResultItem, 0, len(resp.Items))
	for _, r := range resp.Items {
		if r.HTMLURL == "" {
			continue
		}
		items = append(items, types.RepositoryItem(types.CodeRepository{
			Name:        r.Name,
			Description: r.Description,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			Language:    r.Language,
			URL:         r.HTMLURL,
		}))
	}
	return items, nil
}

// Repository search JSON structures. Description and language are null for
// some repositories; null decodes to the empty string.
type codeResponse struct {
	TotalCount int        `json:"total_count"`
	Items      []codeItem `json:"items"`
}

type codeItem struct {
	HTMLURL         string `json:"html_url"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
}
