package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FoldName reduces a name to a comparison key: lowercase, accents removed,
// and every run of non-alphanumeric characters collapsed to a single space.
// "Céruleum  Blue" and "ceruleum-blue" fold to the same key.
func FoldName(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	pendingSpace := false
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark, dropped
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		default:
			pendingSpace = true
		}
	}

	return b.String()
}
