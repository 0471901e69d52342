// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Encoding describes how a search term is spliced into a target URL.
type Encoding string

const (
	// EncodePercent appends the term percent-encoded as a URI component.
	EncodePercent Encoding = "percent"

	// EncodeTag appends the term with all whitespace removed, unencoded.
	// Used for hashtag-style paths.
	EncodeTag Encoding = "tag"

	// EncodeNone ignores the term. Destinations with no query entry point
	// use this together with a clipboard copy.
	EncodeNone Encoding = "none"
)

// ShortcutDefinition is one quick access button. The ordered list of
// definitions is user-local and persisted as a whole.
type ShortcutDefinition struct {
	// ID is stable and unique within a list.
	ID string `json:"id" yaml:"id" toml:"id"`

	Label     string `json:"label" yaml:"label" toml:"label"`
	IconRef   string `json:"icon" yaml:"icon" toml:"icon"`
	ColorHint string `json:"color" yaml:"color" toml:"color"`

	// BaseURL is the URL prefix the encoded term is appended to.
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url"`

	// URLSuffix is appended after the term, e.g. a closing quote or slash.
	URLSuffix string `json:"url_suffix,omitempty" yaml:"url_suffix,omitempty" toml:"url_suffix,omitempty"`

	// Encoding defaults to EncodePercent when empty.
	Encoding Encoding `json:"encoding,omitempty" yaml:"encoding,omitempty" toml:"encoding,omitempty"`

	// RequiresClipboardCopy marks destinations that get the term through the
	// clipboard instead of the URL.
	RequiresClipboardCopy bool `json:"copy,omitempty" yaml:"copy,omitempty" toml:"copy,omitempty"`
}
