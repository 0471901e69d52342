// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/omnisearch/internal/shortcuts"
)

var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "List, reorder and open the quick access shortcuts",
	Long: `Shortcuts manages the ordered quick access row. The order is persisted
in the configured store after every move; reset restores the twelve
built-in defaults.`,
}

var shortcutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shortcuts in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		term, _ := cmd.Flags().GetString("term")
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		shortcuts.FormatTable(a.shortcuts.List(), term, os.Stdout)
		return nil
	},
}

var shortcutsMoveCmd = &cobra.Command{
	Use:   "move <dragged-id> <target-id>",
	Short: "Move a shortcut to the position of another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.shortcuts.Move(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		shortcuts.FormatTable(a.shortcuts.List(), "", os.Stdout)
		return nil
	},
}

var shortcutsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default shortcut order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return a.shortcuts.Reset(cmd.Context())
	},
}

var shortcutsOpenCmd = &cobra.Command{
	Use:   "open <id> [term]",
	Short: "Open a shortcut with an optional term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printOnly, _ := cmd.Flags().GetBool("print")
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		def, ok := a.shortcuts.Find(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", shortcuts.ErrUnknownShortcut, args[0])
		}
		term := strings.Join(args[1:], " ")
		_, err = a.launcher(printOnly).ActivateShortcut(cmd.Context(), def, term)
		return err
	},
}

var shortcutsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the current order as YAML, TOML or JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		format, err := exportFormat(cmd, args)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return a.shortcuts.Export(os.Stdout, format)
		}

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating %s: %w", args[0], err)
		}
		if err := a.shortcuts.Export(f, format); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

var shortcutsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the shortcut list from a YAML, TOML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		format, err := exportFormat(cmd, args)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()

		if err := a.shortcuts.Import(cmd.Context(), f, format); err != nil {
			return err
		}
		shortcuts.FormatTable(a.shortcuts.List(), "", os.Stdout)
		return nil
	},
}

// exportFormat takes --format when set, else the file extension, else YAML.
func exportFormat(cmd *cobra.Command, args []string) (shortcuts.Format, error) {
	name, _ := cmd.Flags().GetString("format")
	if name == "" && len(args) > 0 {
		name = filepath.Ext(args[0])
	}
	if name == "" {
		return shortcuts.FormatYAML, nil
	}
	return shortcuts.ParseFormat(name)
}

func init() {
	shortcutsListCmd.Flags().String("term", "", "show the URL each shortcut opens for this term")
	shortcutsOpenCmd.Flags().Bool("print", false, "print the URL instead of launching a browser")
	shortcutsExportCmd.Flags().String("format", "", "yaml, toml or json (default: from file extension, else yaml)")
	shortcutsImportCmd.Flags().String("format", "", "yaml, toml or json (default: from file extension)")

	shortcutsCmd.AddCommand(shortcutsListCmd, shortcutsMoveCmd, shortcutsResetCmd,
		shortcutsOpenCmd, shortcutsExportCmd, shortcutsImportCmd)
	rootCmd.AddCommand(shortcutsCmd)
}
