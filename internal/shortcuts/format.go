// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shortcuts

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// FormatTable writes the shortcut order with each URL resolved for term.
func FormatTable(defs []types.ShortcutDefinition, term string, w io.Writer) {
	fmt.Fprintf(w, "%-3s  %-12s  %-14s  %-5s  %s\n", "#", "ID", "Label", "Copy", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for i, d := range defs {
		l := deeplink.ResolveShortcut(d, term)
		copyMark := ""
		if l.CopyIntent {
			copyMark = "yes"
		}
		fmt.Fprintf(w, "%-3d  %-12s  %-14s  %-5s  %s\n", i+1, d.ID, d.Label, copyMark, l.URL)
	}
}
