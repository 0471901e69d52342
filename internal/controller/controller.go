// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package controller owns the search session: the live query, the active
// category, the last searched term and the visible result set.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/internal/search"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// ErrEmptyTerm is returned by Search when the term is blank.
var ErrEmptyTerm = errors.New("search term is empty")

// Controller holds one session. It is safe for concurrent use; searches
// may overlap, and only the most recently issued one updates the results.
type Controller struct {
	adapters map[types.Category]search.Adapter

	mu       sync.Mutex
	state    types.SearchState
	gen      uint64
	onChange func(types.SearchState)
}

// New returns a Controller on the web tab with no query.
func New(adapters map[types.Category]search.Adapter) *Controller {
	return &Controller{
		adapters: adapters,
		state:    types.SearchState{ActiveCategory: types.CategoryWeb},
	}
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() types.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() types.SearchState {
	s := c.state
	if s.Results != nil {
		s.Results = append([]types.ResultItem(nil), s.Results...)
	}
	return s
}

// SetOnChange registers fn to receive a snapshot after every state change.
// fn is called outside the lock, possibly from several goroutines, and
// must not block. A nil fn stops notifications.
func (c *Controller) SetOnChange(fn func(types.SearchState)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.onChange
	s := c.snapshotLocked()
	c.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

// SetQuery records the live input text. It does not search.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	c.state.Query = text
	c.mu.Unlock()
	c.notify()
}

// Submit searches the current input text.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	q := c.state.Query
	c.mu.Unlock()
	return c.Search(ctx, q)
}

// Search runs term against the active category and blocks until the
// result is applied or found to be stale. Deep-link categories get the
// placeholder result without any I/O. The term is stored as given.
func (c *Controller) Search(ctx context.Context, term string) error {
	if strings.TrimSpace(term) == "" {
		return ErrEmptyTerm
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	cat := c.state.ActiveCategory
	c.state.LastSearchedTerm = term
	c.state.Results = nil
	c.state.IsLoading = true
	c.mu.Unlock()
	c.notify()

	log := pslog.Ctx(ctx).With("request_id", uuid.NewString(), "category", string(cat), "generation", gen)
	ctx = pslog.ContextWithLogger(ctx, log)
	log.Debug("search dispatched", "term", term)

	var results []types.ResultItem
	if cat.Fetches() {
		if a, ok := c.adapters[cat]; ok {
			results = a.Search(ctx, term)
		}
		if results == nil {
			results = []types.ResultItem{}
		}
	} else {
		results = []types.ResultItem{types.PlaceholderItem()}
	}

	c.mu.Lock()
	if gen != c.gen {
		current := c.gen
		c.mu.Unlock()
		log.Debug("discarding stale results", "current", current, "count", len(results))
		return nil
	}
	c.state.Results = results
	c.state.IsLoading = false
	c.mu.Unlock()
	c.notify()

	log.Info("search complete", "term", term, "count", len(results))
	return nil
}

// SetCategory switches the active tab. Switching to a different category
// clears the results and, when a term has been searched, searches that
// term again. The live input is never used. Selecting the active category
// does nothing.
func (c *Controller) SetCategory(ctx context.Context, cat types.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnknownCategory, cat)
	}

	c.mu.Lock()
	if c.state.ActiveCategory == cat {
		c.mu.Unlock()
		return nil
	}
	// Anything still in flight belongs to the old tab.
	c.gen++
	c.state.ActiveCategory = cat
	c.state.Results = nil
	c.state.IsLoading = false
	term := c.state.LastSearchedTerm
	c.mu.Unlock()
	c.notify()

	if term == "" {
		return nil
	}
	return c.Search(ctx, term)
}

// SearchCategory makes cat the active tab and searches term there. Unlike
// SetCategory followed by Search, the previous term is not searched again
// on the way.
func (c *Controller) SearchCategory(ctx context.Context, cat types.Category, term string) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnknownCategory, cat)
	}
	if strings.TrimSpace(term) == "" {
		return ErrEmptyTerm
	}
	c.mu.Lock()
	if c.state.ActiveCategory != cat {
		c.gen++
		c.state.ActiveCategory = cat
		c.state.Results = nil
	}
	c.mu.Unlock()
	return c.Search(ctx, term)
}

// Links returns the deep-link rows for the active category and the last
// searched term.
func (c *Controller) Links() []deeplink.Link {
	c.mu.Lock()
	cat, term := c.state.ActiveCategory, c.state.LastSearchedTerm
	c.mu.Unlock()
	if term == "" {
		return nil
	}
	return deeplink.ForCategory(cat, term)
}
