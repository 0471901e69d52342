// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change persisted preferences",
}

var prefsAutoListenCmd = &cobra.Command{
	Use:   "auto-listen [on|off]",
	Short: "Show or set whether the TUI starts listening on launch",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 1 {
			on, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			if err := a.prefs.SetAutoListen(on); err != nil {
				return err
			}
		}
		fmt.Printf("auto-listen: %s\n", onOff(a.prefs.AutoListen(cmd.Context())))
		return nil
	},
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	prefsCmd.AddCommand(prefsAutoListenCmd)
	rootCmd.AddCommand(prefsCmd)
}
