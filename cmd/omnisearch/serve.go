// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/config"
	"github.com/pdiddy/omnisearch/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API on a local address",
	Long: `Serve exposes the controller, deep links, shortcuts and preferences over
HTTP. The process shares one session state across all clients and stops
cleanly on interrupt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Serve.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		server := httpapi.NewServer(a.ctrl, a.shortcuts, a.prefs)
		pslog.Ctx(cmd.Context()).Info("serving", "addr", addr, "storage", cfg.Storage.Driver)
		return httpapi.ListenAndServe(cmd.Context(), addr, server.Handler())
	},
}

func init() {
	serveCmd.Flags().String("addr", config.DefaultServeAddr, "listen address (overrides serve.addr)")

	rootCmd.AddCommand(serveCmd)
}
