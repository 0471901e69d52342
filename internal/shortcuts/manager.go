// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shortcuts maintains the user-reorderable quick access list and
// persists it as a whole after every change.
package shortcuts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/store"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// ErrUnknownShortcut is returned when an id is not in the current list.
var ErrUnknownShortcut = errors.New("unknown shortcut")

// State describes where the current list came from.
type State string

const (
	// StateDefault means nothing usable was persisted.
	StateDefault State = "default"
	// StateLoaded means the list was read from storage.
	StateLoaded State = "loaded"
	// StateReordered means the list was changed in this session.
	StateReordered State = "reordered"
)

// Manager owns the ordered shortcut list. It is safe for concurrent use.
type Manager struct {
	kv store.KV

	mu    sync.RWMutex
	list  []types.ShortcutDefinition
	state State
}

// Load reads the persisted order from kv. It never fails: a missing key
// yields the defaults, and an unreadable or invalid value is logged and
// also yields the defaults.
func Load(ctx context.Context, kv store.KV) *Manager {
	m := &Manager{kv: kv, list: Defaults(), state: StateDefault}

	raw, err := kv.Get(store.KeyQuickAccessOrder)
	if errors.Is(err, store.ErrNotFound) {
		return m
	}
	if err != nil {
		pslog.Ctx(ctx).Error("reading quick access order, using defaults", "err", err)
		return m
	}

	var list []types.ShortcutDefinition
	if err := json.Unmarshal(raw, &list); err != nil {
		pslog.Ctx(ctx).Error("parsing quick access order, using defaults", "err", err)
		return m
	}
	if err := validate(list); err != nil {
		pslog.Ctx(ctx).Error("invalid quick access order, using defaults", "err", err)
		return m
	}

	m.list = list
	m.state = StateLoaded
	return m
}

// validate requires a non-empty list of shortcuts with unique, non-empty
// ids and a base URL.
func validate(list []types.ShortcutDefinition) error {
	if len(list) == 0 {
		return fmt.Errorf("empty shortcut list")
	}
	seen := make(map[string]bool, len(list))
	for i, d := range list {
		if d.ID == "" {
			return fmt.Errorf("shortcut %d has no id", i)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate shortcut id %q", d.ID)
		}
		if d.BaseURL == "" {
			return fmt.Errorf("shortcut %q has no base_url", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

// List returns a copy of the current order.
func (m *Manager) List() []types.ShortcutDefinition {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.ShortcutDefinition(nil), m.list...)
}

// State returns where the current list came from.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Find returns the shortcut with id.
func (m *Manager) Find(id string) (types.ShortcutDefinition, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexOf(id); i >= 0 {
		return m.list[i], true
	}
	return types.ShortcutDefinition{}, false
}

func (m *Manager) indexOf(id string) int {
	for i, d := range m.list {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Move reorders the list as if the shortcut draggedID were dropped on
// targetID: dragged is removed and reinserted at target's index. Dropping
// a shortcut on itself changes nothing and writes nothing. If the write
// fails the new order is kept in memory and the error is returned.
func (m *Manager) Move(ctx context.Context, draggedID, targetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if draggedID == targetID {
		if m.indexOf(draggedID) < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownShortcut, draggedID)
		}
		return nil
	}
	from := m.indexOf(draggedID)
	if from < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownShortcut, draggedID)
	}
	to := m.indexOf(targetID)
	if to < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownShortcut, targetID)
	}
	return m.moveLocked(ctx, from, to)
}

// MoveIndex moves the shortcut at position from to position to.
func (m *Manager) MoveIndex(ctx context.Context, from, to int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if from < 0 || from >= len(m.list) || to < 0 || to >= len(m.list) {
		return fmt.Errorf("move %d -> %d: index out of range [0,%d)", from, to, len(m.list))
	}
	if from == to {
		return nil
	}
	return m.moveLocked(ctx, from, to)
}

func (m *Manager) moveLocked(ctx context.Context, from, to int) error {
	m.list = arrayMove(m.list, from, to)
	m.state = StateReordered
	pslog.Ctx(ctx).Debug("quick access reordered", "id", m.list[to].ID, "from", from, "to", to)
	return m.persistLocked()
}

// arrayMove removes the element at from and inserts it at to.
func arrayMove(list []types.ShortcutDefinition, from, to int) []types.ShortcutDefinition {
	out := make([]types.ShortcutDefinition, 0, len(list))
	moved := list[from]
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	out = append(out[:to], append([]types.ShortcutDefinition{moved}, out[to:]...)...)
	return out
}

// Reset restores the default order and persists it.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = Defaults()
	m.state = StateDefault
	pslog.Ctx(ctx).Info("quick access reset to defaults")
	return m.persistLocked()
}

// replace installs a validated list and persists it.
func (m *Manager) replace(list []types.ShortcutDefinition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = list
	m.state = StateReordered
	return m.persistLocked()
}

func (m *Manager) persistLocked() error {
	raw, err := json.Marshal(m.list)
	if err != nil {
		return fmt.Errorf("encoding quick access order: %w", err)
	}
	if err := m.kv.Put(store.KeyQuickAccessOrder, raw); err != nil {
		return fmt.Errorf("saving quick access order: %w", err)
	}
	return nil
}
