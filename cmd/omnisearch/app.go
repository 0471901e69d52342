// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"os"

	"github.com/pdiddy/omnisearch/internal/clipboard"
	"github.com/pdiddy/omnisearch/internal/controller"
	"github.com/pdiddy/omnisearch/internal/launch"
	"github.com/pdiddy/omnisearch/internal/search"
	"github.com/pdiddy/omnisearch/internal/shortcuts"
	"github.com/pdiddy/omnisearch/internal/store"
	"github.com/pdiddy/omnisearch/internal/voice"
)

// app wires the components every subcommand shares.
type app struct {
	kv         store.KV
	prefs      store.Preferences
	ctrl       *controller.Controller
	shortcuts  *shortcuts.Manager
	copier     *clipboard.Copier
	opener     launch.Opener
	recognizer *voice.CommandRecognizer
}

func newApp(ctx context.Context) (*app, error) {
	kv, err := store.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: cfg.HTTP.Timeout}

	return &app{
		kv:         kv,
		prefs:      store.Preferences{KV: kv},
		ctrl:       controller.New(search.NewAdapters(cfg, client)),
		shortcuts:  shortcuts.Load(ctx, kv),
		copier:     clipboard.New(os.Stderr),
		opener:     launch.NewOSOpener(),
		recognizer: voice.NewCommandRecognizer(cfg.Voice.Command),
	}, nil
}

func (a *app) launcher(printOnly bool) *launch.Launcher {
	var opener launch.Opener = a.opener
	if printOnly {
		opener = launch.Printer{Out: os.Stdout}
	}
	return &launch.Launcher{Opener: opener, Copier: a.copier}
}

func (a *app) Close() error {
	return a.kv.Close()
}
