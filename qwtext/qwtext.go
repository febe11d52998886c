// Package qwtext converts the QuakeWorld 8-bit character set into display
// text and provides the name ordering used across the library.
//
// The charset occupies the first Latin-1 block byte-for-byte: bytes
// 0xA0-0xFF are bright ("colored") variants of the printable ASCII range,
// 0x10/0x11 render as brackets and 0x12-0x1B as gold digits.
package qwtext

import (
	"strings"

	"golang.org/x/text/cases"
)

// Decode maps raw server bytes onto Unicode. Each byte becomes the code
// point of the same value, which keeps colored glyphs distinguishable from
// their base characters.
func Decode(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}

	return string(runes)
}

// Plain folds colored glyphs back onto their readable ASCII base, so the
// result reads the way the name renders in-game. Code points above 0xFF
// pass through untouched.
func Plain(s string) string {
	var plain strings.Builder
	plain.Grow(len(s))

	for _, r := range s {
		if r > 0xff {
			plain.WriteRune(r)
			continue
		}

		c := byte(r)
		if c >= 0xa0 {
			c -= 0x80
		}

		switch {
		case c == 0x10 || c == 0x90:
			plain.WriteByte('[')
		case c == 0x11 || c == 0x91:
			plain.WriteByte(']')
		case c >= 0x12 && c <= 0x1b:
			plain.WriteByte('0' + c - 0x12)
		case c >= 0x92 && c <= 0x9b:
			plain.WriteByte('0' + c - 0x92)
		default:
			plain.WriteByte(c)
		}
	}

	return plain.String()
}

// Compare orders two display names the way players read them: colored
// variants fold onto their base glyph and case is ignored. It reports
// -1, 0 or 1 like strings.Compare.
func Compare(a, b string) int {
	fold := cases.Fold()

	return strings.Compare(fold.String(Plain(a)), fold.String(Plain(b)))
}
