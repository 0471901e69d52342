// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the omnisearch CLI.
package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/config"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the settings loaded before any subcommand runs.
var cfg types.Config

// rootCmd is the base command for the omnisearch CLI.
var rootCmd = &cobra.Command{
	Use:   "omnisearch",
	Short: "Search the web, AI assistants, social, video, music and code from one prompt",
	Long: `omnisearch dispatches one query to one of six categories. Web, AI, social
and video resolve to deep links into the respective sites; music and code
fetch result cards from public read-only APIs.

A reorderable quick access row of twelve shortcuts is kept in a local
database, and an optional speech-to-text command can supply the query.
Use the tui subcommand for the interactive interface and serve for the
local JSON API.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		v := viper.GetViper()
		config.SetDefaults(v, version)
		config.Prepare(v, cfgFile)

		loaded, used, err := config.Load(v)
		if err != nil {
			return err
		}
		if used != "" {
			pslog.Ctx(cmd.Context()).Debug("using config file", "path", used)
		}
		if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
			loaded.Storage.Driver = types.DriverMemory
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./omnisearch.yaml or "+config.Dir()+"/omnisearch.yaml)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "keep shortcuts and preferences in memory only")
}

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("omnisearch command failed")
		return 1
	}
	return 0
}
