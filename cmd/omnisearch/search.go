// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/internal/search"
	"github.com/pdiddy/omnisearch/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search one category and print the results",
	Long: `Search runs the term against a category. Music and code fetch result
cards from their public APIs; a failed or rate-limited request prints the
empty state. Web, AI, social and video print their deep links.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cat, err := categoryFlag(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	term := strings.Join(args, " ")
	a.ctrl.SetQuery(term)
	if err := a.ctrl.SearchCategory(cmd.Context(), cat, term); err != nil {
		return err
	}

	state := a.ctrl.Snapshot()
	if !cat.Fetches() {
		links := a.ctrl.Links()
		if asJSON {
			return deeplink.FormatJSON(links, os.Stdout)
		}
		deeplink.FormatTable(links, os.Stdout)
		return nil
	}
	if asJSON {
		return search.FormatJSON(state.Results, os.Stdout)
	}
	search.FormatTable(cat, state.Results, os.Stdout)
	return nil
}

func categoryFlag(cmd *cobra.Command) (types.Category, error) {
	name, _ := cmd.Flags().GetString("category")
	return types.ParseCategory(name)
}

func init() {
	searchCmd.Flags().StringP("category", "c", string(types.CategoryWeb), "category: web, ai, social, video, music or code")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
