// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/omnisearch/pkg/types"
)

// stateRelay hands controller snapshots to the program without blocking
// the caller. Only the newest pending snapshot is kept, since each one
// supersedes the last.
type stateRelay struct {
	mu sync.Mutex
	ch chan types.SearchState
}

func newStateRelay() *stateRelay {
	return &stateRelay{ch: make(chan types.SearchState, 1)}
}

// push replaces any undelivered snapshot with s. It never blocks, so it
// is safe to call from inside Update.
func (r *stateRelay) push(s types.SearchState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	select {
	case <-r.ch:
	default:
	}
	r.ch <- s
}

// forward delivers snapshots to send until ctx ends.
func (r *stateRelay) forward(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-r.ch:
			send(stateMsg(s))
		}
	}
}
