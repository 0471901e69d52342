// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package launch activates deep links: it copies the term first for
// destinations that take it through the clipboard, then opens the URL.
package launch

import (
	"context"
	"errors"
	"fmt"

	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// ErrSuppressed is returned by ActivateShortcut when the activation is the
// tail end of a drag and must not navigate.
var ErrSuppressed = errors.New("activation suppressed by drag")

// Copier places text on the clipboard. It reports success and never fails.
type Copier interface {
	Copy(ctx context.Context, text string) bool
}

// Gate decides whether a shortcut activation may proceed.
type Gate interface {
	AllowActivation() bool
}

// Launcher opens links. Copier and Gate are optional.
type Launcher struct {
	Opener Opener
	Copier Copier
	Gate   Gate
}

// Activate opens link. When the link has copy intent the term is copied
// first; a failed copy is logged and navigation continues.
func (l *Launcher) Activate(ctx context.Context, link deeplink.Link) error {
	log := pslog.Ctx(ctx).With("target", link.TargetID)
	if link.CopyIntent && link.Term != "" {
		copied := l.Copier != nil && l.Copier.Copy(ctx, link.Term)
		log.Debug("copy intent", "copied", copied)
	}
	if err := l.Opener.Open(ctx, link.URL); err != nil {
		return fmt.Errorf("opening %s: %w", link.Name, err)
	}
	log.Info("opened deep link", "url", link.URL)
	return nil
}

// ActivateShortcut resolves def for term and activates it, unless the gate
// reports that a drag is in progress or has just ended.
func (l *Launcher) ActivateShortcut(ctx context.Context, def types.ShortcutDefinition, term string) (deeplink.Link, error) {
	if l.Gate != nil && !l.Gate.AllowActivation() {
		return deeplink.Link{}, ErrSuppressed
	}
	link := deeplink.ResolveShortcut(def, term)
	return link, l.Activate(ctx, link)
}
