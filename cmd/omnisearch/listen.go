// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/internal/search"
	"github.com/pdiddy/omnisearch/internal/voice"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Capture one spoken query and search it",
	Long: `Listen runs the configured speech-to-text command once. A non-empty
transcript becomes the query and is searched in the chosen category. An
empty transcript ends the session without searching.`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func runListen(cmd *cobra.Command, args []string) error {
	cat, err := categoryFlag(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.ctrl.SetCategory(cmd.Context(), cat); err != nil {
		return err
	}

	bridge := voice.NewBridge(a.recognizer, a.ctrl, voice.WriterNotifier{Out: os.Stderr})
	transcript, err := bridge.Listen(cmd.Context())
	if errors.Is(err, voice.ErrUnavailable) {
		// The notice has already been shown.
		return nil
	}
	if err != nil {
		return err
	}
	if transcript == "" {
		return nil
	}

	state := a.ctrl.Snapshot()
	if cat.Fetches() {
		search.FormatTable(cat, state.Results, os.Stdout)
	} else {
		deeplink.FormatTable(a.ctrl.Links(), os.Stdout)
	}
	return nil
}

func init() {
	listenCmd.Flags().StringP("category", "c", "web", "category to search the transcript in")

	rootCmd.AddCommand(listenCmd)
}
