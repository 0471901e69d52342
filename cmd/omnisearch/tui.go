// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/omnisearch/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive interface",
	Long: `Tui opens the full-screen interface: the query input, the six category
tabs, the result panel and the reorderable quick access grid. When the
auto-listen preference is on, a voice session starts shortly after launch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		autoListen := a.prefs.AutoListen(cmd.Context())
		if cmd.Flags().Changed("auto-listen") {
			autoListen, _ = cmd.Flags().GetBool("auto-listen")
		}

		return tui.Run(cmd.Context(), tui.Deps{
			Controller:      a.ctrl,
			Shortcuts:       a.shortcuts,
			Opener:          a.opener,
			Copier:          a.copier,
			Recognizer:      a.recognizer,
			Drag:            cfg.Drag,
			AutoListen:      autoListen,
			AutoListenDelay: cfg.Voice.AutoListenDelay,
		})
	},
}

func init() {
	tuiCmd.Flags().Bool("auto-listen", false, "override the persisted auto-listen preference for this run")

	rootCmd.AddCommand(tuiCmd)
}
