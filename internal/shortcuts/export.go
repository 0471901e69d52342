// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shortcuts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/pkg/types"
)

// Format is a serialization format for Export and Import.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat maps a name or file extension onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (want yaml, toml or json)", s)
}

// document is the on-disk layout. TOML has no top-level arrays, so every
// format wraps the list in a shortcuts table.
type document struct {
	Shortcuts []types.ShortcutDefinition `json:"shortcuts" yaml:"shortcuts" toml:"shortcuts"`
}

// Export writes the current order to w.
func (m *Manager) Export(w io.Writer, f Format) error {
	doc := document{Shortcuts: m.List()}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	return fmt.Errorf("unknown format %q", f)
}

// Import replaces the current order with the list read from r and
// persists it. An invalid list is rejected and the current order is kept.
func (m *Manager) Import(ctx context.Context, r io.Reader, f Format) error {
	var doc document
	var err error
	switch f {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return fmt.Errorf("decoding %s: %w", f, err)
	}
	if err := validate(doc.Shortcuts); err != nil {
		return fmt.Errorf("importing shortcuts: %w", err)
	}
	pslog.Ctx(ctx).Info("quick access imported", "count", len(doc.Shortcuts), "format", string(f))
	return m.replace(doc.Shortcuts)
}
