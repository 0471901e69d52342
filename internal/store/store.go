// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the quick access order and user preferences in a
// small key-value store. Each Put replaces the whole value atomically.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/omnisearch/pkg/types"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Well-known keys.
const (
	KeyQuickAccessOrder = "quick-access-order"
	KeyAutoListen       = "auto-listen"
)

// KV is the persistence port. Implementations must be safe for concurrent
// use.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// Open returns the driver selected by cfg. The parent directory of the
// database file is created when missing.
func Open(cfg types.StorageConfig) (KV, error) {
	switch cfg.Driver {
	case types.DriverMemory:
		return NewMemory(), nil
	case types.DriverBolt, "":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		return OpenBolt(cfg.Path)
	case types.DriverSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func ensureDir(path string) error {
	if path == "" {
		return fmt.Errorf("storage path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}
	return nil
}
