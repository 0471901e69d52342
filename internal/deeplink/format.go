// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deeplink

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mdp/qrterminal/v3"
)

// FormatTable writes links as a human-readable list to w.
func FormatTable(links []Link, w io.Writer) {
	if len(links) == 0 {
		fmt.Fprintln(w, "No deep links for this category.")
		return
	}

	fmt.Fprintf(w, "%-14s  %-20s  %-5s  %s\n", "ID", "Platform", "Copy", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, l := range links {
		copyMark := ""
		if l.CopyIntent {
			copyMark = "yes"
		}
		fmt.Fprintf(w, "%-14s  %-20s  %-5s  %s\n", l.TargetID, l.Name, copyMark, l.URL)
	}
}

// FormatJSON writes links as indented JSON to w.
func FormatJSON(links []Link, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(links)
}

// FormatQR writes the link name followed by a terminal QR code of its URL.
func FormatQR(l Link, w io.Writer) {
	fmt.Fprintf(w, "%s  %s\n", l.Name, l.URL)
	qrterminal.GenerateHalfBlock(l.URL, qrterminal.L, w)
}
