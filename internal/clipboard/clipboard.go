// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clipboard places a search term on the user's clipboard for
// destinations that cannot take the term in their URL.
package clipboard

import (
	"context"
	"errors"

	"pkt.systems/pslog"
)

// ErrNoWriter is returned by a Copier with neither writer configured.
var ErrNoWriter = errors.New("no clipboard writer configured")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(text string) error

// WriteText calls f(text).
func (f WriterFunc) WriteText(text string) error { return f(text) }

// Copier tries Primary and falls back to Fallback when it fails.
// Either may be nil.
type Copier struct {
	Primary  Writer
	Fallback Writer
}

// Copy writes text and reports whether any writer accepted it. Failures are
// logged and never returned; a failed copy must not block navigation.
func (c *Copier) Copy(ctx context.Context, text string) bool {
	if text == "" {
		return false
	}
	log := pslog.Ctx(ctx)

	var errs []error
	for _, w := range []Writer{c.Primary, c.Fallback} {
		if w == nil {
			continue
		}
		err := w.WriteText(text)
		if err == nil {
			return true
		}
		log.Debug("clipboard writer failed", "err", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		errs = append(errs, ErrNoWriter)
	}
	log.Debug("clipboard copy failed", "err", errors.Join(errs...))
	return false
}
