package util

import (
	"strings"
	"unicode"
)

// Slug lowercases s and collapses every run of non letters or digits into a
// single dash, for file names and HTML anchors. An empty result becomes
// "profile".
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "profile"
	}
	return out
}
