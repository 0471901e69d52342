// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/omnisearch/pkg/types"
)

const sampleReposJSON = `{"total_count":3,"items":[
 {"html_url":"https://github.com/golang/go","name":"go","description":"The Go programming language","stargazers_count":120000,"forks_count":17000,"language":"Go"},
 {"name":"ghost","stargazers_count":1},
 {"html_url":"https://github.com/x/nodesc","name":"nodesc","description":null,"stargazers_count":3,"forks_count":0,"language":null}
]}`

func TestCodeSearchRequestParams(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		fmt.Fprint(w, `{"total_count":0,"items":[]}`)
	}))
	defer ts.Close()

	a := &CodeAdapter{Client: ts.Client(), Endpoint: ts.URL, UserAgent: "test/0.1"}
	a.Search(context.Background(), "http router")

	require.NotNil(t, capturedReq)
	q := capturedReq.URL.Query()
	assert.Equal(t, "http router", q.Get("q"))
	assert.Equal(t, "stars", q.Get("sort"))
	assert.Equal(t, "desc", q.Get("order"))
	assert.Equal(t, "9", q.Get("per_page"))
	assert.Equal(t, "test/0.1", capturedReq.Header.Get("User-Agent"))
	assert.Empty(t, capturedReq.Header.Get("Authorization"))
}

func TestCodeSearchNormalizes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleReposJSON)
	}))
	defer ts.Close()

	a := &CodeAdapter{Client: ts.Client(), Endpoint: ts.URL}
	items := a.Search(context.Background(), "go")

	require.Len(t, items, 2)
	repo := items[0].Repository
	require.NotNil(t, repo)
	assert.Equal(t, types.KindRepository, items[0].Kind)
	assert.Equal(t, types.CodeRepository{
		Name:        "go",
		Description: "The Go programming language",
		Stars:       120000,
		Forks:       17000,
		Language:    "Go",
		URL:         "https://github.com/golang/go",
	}, *repo)

	assert.Empty(t, items[1].Repository.Description)
	assert.Empty(t, items[1].Repository.Language)
}

func TestCodeSearchRateLimitedYieldsEmpty(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			calls := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls++
				w.WriteHeader(status)
				fmt.Fprint(w, `{"message":"API rate limit exceeded"}`)
			}))
			defer ts.Close()

			a := &CodeAdapter{Client: ts.Client(), Endpoint: ts.URL}
			items := a.Search(context.Background(), "go")
			assert.NotNil(t, items)
			assert.Empty(t, items)
			assert.Equal(t, 1, calls, "no retry")
		})
	}
}

func TestCodeSearchDefaultEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleReposJSON)
	}))
	defer ts.Close()

	old := codeAPIBase
	codeAPIBase = ts.URL
	defer func() { codeAPIBase = old }()

	a := &CodeAdapter{Client: ts.Client()}
	assert.Len(t, a.Search(context.Background(), "go"), 2)
}
