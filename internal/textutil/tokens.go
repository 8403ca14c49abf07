package textutil

import (
	"strings"
	"unicode"
)

// LastToken returns the final whitespace-separated token of value, or an
// empty string when value contains no tokens.
func LastToken(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Digits strips every non-digit character from value, so half-inning labels
// like "t7" and ordinals like "7th" both reduce to "7".
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
