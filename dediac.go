package camel

import (
	"strings"
	"unicode"
)

// DediacAR removes all Arabic diacritical marks from s.
func DediacAR(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(arDiacCharset, r) {
			return -1
		}
		return r
	}, s)
}
