// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deeplink

import (
	"strings"
	"unicode"
)

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way a URI component is encoded in a
// browser: ASCII letters, digits and -_.!~*'() are kept, every other byte of
// the UTF-8 form becomes %XX. Spaces become %20, never '+'.
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// StripWhitespace removes every whitespace rune from s. Case and all other
// characters are preserved and nothing is encoded.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
