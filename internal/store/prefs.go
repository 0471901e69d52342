// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pkt.systems/pslog"
)

// Preferences reads and writes user preferences stored in a KV.
type Preferences struct {
	KV KV
}

// AutoListen reports whether voice input should start on launch. An absent
// or malformed value reads as false.
func (p Preferences) AutoListen(ctx context.Context) bool {
	raw, err := p.KV.Get(KeyAutoListen)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			pslog.Ctx(ctx).Warn("reading auto-listen preference", "err", err)
		}
		return false
	}
	var on bool
	if err := json.Unmarshal(raw, &on); err != nil {
		pslog.Ctx(ctx).Warn("malformed auto-listen preference", "value", string(raw), "err", err)
		return false
	}
	return on
}

// SetAutoListen persists the auto-listen preference.
func (p Preferences) SetAutoListen(on bool) error {
	raw, _ := json.Marshal(on)
	if err := p.KV.Put(KeyAutoListen, raw); err != nil {
		return fmt.Errorf("saving auto-listen preference: %w", err)
	}
	return nil
}
