// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deeplink

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/pdiddy/omnisearch/pkg/types"
)

var sampleTerms = []string{
	"daft punk",
	"  hello world  ",
	"rock & roll",
	"50% off?",
	"c++ / go",
	"naïve café",
	"東京 タワー",
	"a+b=c#d",
	"it's (really) *fine*!",
	"tab\tand\nnewline",
}

// --- Encoding ---

func TestEncodeComponentKnownValues(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"daft punk", "daft%20punk"},
		{"rock & roll", "rock%20%26%20roll"},
		{"a+b=c#d", "a%2Bb%3Dc%23d"},
		{"it's (really) *fine*!", "it's%20(really)%20*fine*!"},
		{"-_.~", "-_.~"},
		{"café", "caf%C3%A9"},
		{"/?:@", "%2F%3F%3A%40"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EncodeComponent(tt.in); got != tt.want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeComponentRoundTrip(t *testing.T) {
	for _, term := range sampleTerms {
		enc := EncodeComponent(term)
		dec, err := url.PathUnescape(enc)
		if err != nil {
			t.Fatalf("PathUnescape(%q): %v", enc, err)
		}
		if dec != term {
			t.Errorf("round trip of %q = %q", term, dec)
		}
		if strings.ContainsAny(enc, " \t\n&=?#/+") {
			t.Errorf("EncodeComponent(%q) = %q leaves reserved characters", term, enc)
		}
	}
}

func TestStripWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  hello world  ", "helloworld"},
		{"Hello World", "HelloWorld"},
		{"\tleading", "leading"},
		{"trailing \n", "trailing"},
		{"in  ter\u00a0nal", "internal"},
		{"nospace", "nospace"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := StripWhitespace(tt.in); got != tt.want {
			t.Errorf("StripWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// --- Resolution ---

func TestForCategoryPercentEncodesTerm(t *testing.T) {
	for _, cat := range []types.Category{types.CategoryWeb, types.CategoryAI, types.CategoryVideo, types.CategorySocial} {
		for _, term := range sampleTerms {
			for _, l := range ForCategory(cat, term) {
				tgt, _ := Lookup(l.TargetID)
				if tgt.Encoding != types.EncodePercent {
					continue
				}
				if !strings.Contains(l.URL, EncodeComponent(term)) {
					t.Errorf("%s link for %q = %q, missing encoded term", l.TargetID, term, l.URL)
				}
			}
		}
	}
}

func TestInstagramTagScenario(t *testing.T) {
	l, err := Resolve("instagram", "  hello world  ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := "https://www.instagram.com/explore/tags/helloworld/"
	if l.URL != want {
		t.Errorf("URL = %q, want %q", l.URL, want)
	}
	for _, term := range sampleTerms {
		l, _ := Resolve("instagram", term)
		seg := strings.TrimSuffix(strings.TrimPrefix(l.URL, "https://www.instagram.com/explore/tags/"), "/")
		if seg != StripWhitespace(term) {
			t.Errorf("tag segment for %q = %q", term, seg)
		}
	}
}

func TestGoogleExactMatchQuotesTerm(t *testing.T) {
	l, err := Resolve("google-exact", "daft punk")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := `https://www.google.com/search?q="daft%20punk"`
	if l.URL != want {
		t.Errorf("URL = %q, want %q", l.URL, want)
	}
}

func TestCopyIntentTargets(t *testing.T) {
	links := ForCategory(types.CategoryAI, "explain monads")
	if len(links) != 3 {
		t.Fatalf("len(ai links) = %d, want 3", len(links))
	}
	copyIDs := map[string]string{"chatgpt": "https://chatgpt.com/", "gemini": "https://gemini.google.com/app"}
	for _, l := range links {
		wantURL, copyTarget := copyIDs[l.TargetID]
		if l.CopyIntent != copyTarget {
			t.Errorf("%s CopyIntent = %v, want %v", l.TargetID, l.CopyIntent, copyTarget)
		}
		if copyTarget && l.URL != wantURL {
			t.Errorf("%s URL = %q, want %q", l.TargetID, l.URL, wantURL)
		}
		if l.Term != "explain monads" {
			t.Errorf("%s Term = %q", l.TargetID, l.Term)
		}
	}
}

func TestForCategoryCounts(t *testing.T) {
	tests := []struct {
		cat  types.Category
		want []string
	}{
		{types.CategoryWeb, []string{"google-exact", "google", "duckduckgo"}},
		{types.CategoryAI, []string{"chatgpt", "gemini", "perplexity"}},
		{types.CategoryVideo, []string{"youtube", "vimeo", "dailymotion"}},
		{types.CategorySocial, []string{"instagram", "linkedin", "reddit", "twitter"}},
		{types.CategoryMusic, nil},
		{types.CategoryCode, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			links := ForCategory(tt.cat, "x")
			var ids []string
			for _, l := range links {
				ids = append(ids, l.TargetID)
			}
			if strings.Join(ids, ",") != strings.Join(tt.want, ",") {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestResolveUnknownTarget(t *testing.T) {
	_, err := Resolve("myspace", "x")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("err = %v, want ErrUnknownTarget", err)
	}
}

func TestDefaultDescription(t *testing.T) {
	l, _ := Resolve("youtube", "lofi")
	if l.Description != `Search YouTube for "lofi"` {
		t.Errorf("Description = %q", l.Description)
	}
}

func TestResolveShortcut(t *testing.T) {
	tests := []struct {
		name string
		def  types.ShortcutDefinition
		term string
		want string
		copy bool
	}{
		{
			"percent default",
			types.ShortcutDefinition{ID: "reddit", BaseURL: "https://www.reddit.com/search/?q="},
			"go generics", "https://www.reddit.com/search/?q=go%20generics", false,
		},
		{
			"tag style with suffix",
			types.ShortcutDefinition{ID: "instagram", BaseURL: "https://www.instagram.com/explore/tags/", URLSuffix: "/", Encoding: types.EncodeTag},
			" sunny  day ", "https://www.instagram.com/explore/tags/sunnyday/", false,
		},
		{
			"copy intent ignores term",
			types.ShortcutDefinition{ID: "chatgpt", BaseURL: "https://chatgpt.com/", Encoding: types.EncodeNone, RequiresClipboardCopy: true},
			"anything", "https://chatgpt.com/", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ResolveShortcut(tt.def, tt.term)
			if l.URL != tt.want {
				t.Errorf("URL = %q, want %q", l.URL, tt.want)
			}
			if l.CopyIntent != tt.copy {
				t.Errorf("CopyIntent = %v, want %v", l.CopyIntent, tt.copy)
			}
		})
	}
}

func TestTrackLink(t *testing.T) {
	got := TrackLink("One More Time", "Daft Punk")
	want := "https://open.spotify.com/search/One%20More%20Time%20Daft%20Punk"
	if got != want {
		t.Errorf("TrackLink = %q, want %q", got, want)
	}
}

// --- Formatting ---

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(ForCategory(types.CategoryAI, "q"), &buf)
	out := buf.String()
	for _, want := range []string{"ChatGPT", "Perplexity", "yes", "https://www.perplexity.ai/search?q=q"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No deep links") {
		t.Errorf("empty output = %q", buf.String())
	}
}

func TestFormatQRIncludesURL(t *testing.T) {
	var buf bytes.Buffer
	l, _ := Resolve("google", "qr")
	FormatQR(l, &buf)
	if !strings.Contains(buf.String(), l.URL) {
		t.Errorf("QR output missing URL")
	}
	if buf.Len() <= len(l.URL) {
		t.Errorf("QR output has no code")
	}
}
