// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/omnisearch/internal/deeplink"
)

var linksCmd = &cobra.Command{
	Use:   "links <term>",
	Short: "Print the deep links for a term",
	Long: `Links resolves the deep-link panel of a category for the term without
any network access. With --open the named target is opened in the default
browser; targets with copy intent receive the term on the clipboard first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLinks,
}

func runLinks(cmd *cobra.Command, args []string) error {
	cat, err := categoryFlag(cmd)
	if err != nil {
		return err
	}
	openID, _ := cmd.Flags().GetString("open")
	showQR, _ := cmd.Flags().GetBool("qr")
	asJSON, _ := cmd.Flags().GetBool("json")
	printOnly, _ := cmd.Flags().GetBool("print")

	term := strings.Join(args, " ")

	if openID != "" {
		link, err := deeplink.Resolve(openID, term)
		if err != nil {
			return err
		}
		if showQR {
			deeplink.FormatQR(link, os.Stdout)
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.launcher(printOnly).Activate(cmd.Context(), link); err != nil {
			return fmt.Errorf("opening %s: %w", link.Name, err)
		}
		return nil
	}

	links := deeplink.ForCategory(cat, term)
	if len(links) == 0 {
		return fmt.Errorf("category %s has no deep links; use search", cat)
	}
	switch {
	case asJSON:
		return deeplink.FormatJSON(links, os.Stdout)
	case showQR:
		for _, l := range links {
			deeplink.FormatQR(l, os.Stdout)
		}
	default:
		deeplink.FormatTable(links, os.Stdout)
	}
	return nil
}

func init() {
	linksCmd.Flags().StringP("category", "c", "web", "category: web, ai, social or video")
	linksCmd.Flags().String("open", "", "open the target with this id")
	linksCmd.Flags().Bool("print", false, "print the URL instead of launching a browser")
	linksCmd.Flags().Bool("qr", false, "render links as terminal QR codes")
	linksCmd.Flags().Bool("json", false, "output links as JSON")

	rootCmd.AddCommand(linksCmd)
}
