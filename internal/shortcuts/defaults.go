// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shortcuts

import "github.com/pdiddy/omnisearch/pkg/types"

var defaults = []types.ShortcutDefinition{
	{ID: "google", Label: "Google", IconRef: "search", ColorHint: "violet",
		BaseURL: "https://www.google.com/search?q=", Encoding: types.EncodePercent},
	{ID: "chatgpt", Label: "ChatGPT", IconRef: "bot", ColorHint: "emerald",
		BaseURL: "https://chatgpt.com/", Encoding: types.EncodeNone, RequiresClipboardCopy: true},
	{ID: "gemini", Label: "Gemini", IconRef: "brain", ColorHint: "blue",
		BaseURL: "https://gemini.google.com/app", Encoding: types.EncodeNone, RequiresClipboardCopy: true},
	{ID: "youtube", Label: "YouTube", IconRef: "youtube", ColorHint: "red",
		BaseURL: "https://www.youtube.com/results?search_query=", Encoding: types.EncodePercent},
	{ID: "instagram", Label: "Instagram", IconRef: "hash", ColorHint: "pink",
		BaseURL: "https://www.instagram.com/explore/tags/", URLSuffix: "/", Encoding: types.EncodeTag},
	{ID: "reddit", Label: "Reddit", IconRef: "external-link", ColorHint: "orange",
		BaseURL: "https://www.reddit.com/search/?q=", Encoding: types.EncodePercent},
	{ID: "dailymotion", Label: "Dailymotion", IconRef: "film", ColorHint: "neutral",
		BaseURL: "https://www.dailymotion.com/search/", Encoding: types.EncodePercent},
	{ID: "linkedin", Label: "LinkedIn", IconRef: "briefcase", ColorHint: "blue",
		BaseURL: "https://www.linkedin.com/search/results/all/?keywords=", Encoding: types.EncodePercent},
	{ID: "perplexity", Label: "Perplexity", IconRef: "search", ColorHint: "cyan",
		BaseURL: "https://www.perplexity.ai/search?q=", Encoding: types.EncodePercent},
	{ID: "duckduckgo", Label: "DuckDuckGo", IconRef: "shield", ColorHint: "orange",
		BaseURL: "https://duckduckgo.com/?q=", Encoding: types.EncodePercent},
	{ID: "twitter", Label: "Twitter / X", IconRef: "hash", ColorHint: "neutral",
		BaseURL: "https://twitter.com/search?q=", Encoding: types.EncodePercent},
	{ID: "vimeo", Label: "Vimeo", IconRef: "film", ColorHint: "sky",
		BaseURL: "https://vimeo.com/search?q=", Encoding: types.EncodePercent},
}

// Defaults returns a fresh copy of the twelve built-in shortcuts in their
// default order.
func Defaults() []types.ShortcutDefinition {
	return append([]types.ShortcutDefinition(nil), defaults...)
}
