package camel

import "strings"

// CharMapper maps individual characters of a string to replacement
// strings. An empty replacement deletes the character. Instances are
// immutable once constructed and safe for concurrent use.
type CharMapper struct {
	mapping map[rune]string
}

// NewCharMapper builds a CharMapper from mapping. The mapping is copied,
// so later changes to the argument do not affect the mapper.
func NewCharMapper(mapping map[rune]string) *CharMapper {
	m := make(map[rune]string, len(mapping))
	for r, repl := range mapping {
		m[r] = repl
	}
	return &CharMapper{mapping: m}
}

// MapString applies the mapper to every character of s. Characters with
// no mapping are kept as-is.
func (c *CharMapper) MapString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := c.mapping[r]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultNormalizeMap is the character normalization most callers want
// to hand an Analyzer. It removes tatweel and maps hamza variants to
// bare alef, alef maksura to yeh and teh marbuta to heh:
//
//	إ أ آ ٱ → ا
//	ى → ي
//	ة → ه
//	ـ → (removed)
var DefaultNormalizeMap = NewCharMapper(map[rune]string{
	'إ': "ا", // إ → ا
	'أ': "ا", // أ → ا
	'آ': "ا", // آ → ا
	'ٱ': "ا", // ٱ → ا
	'ى': "ي", // ى → ي
	'ة': "ه", // ة → ه
	'ـ': "",       // tatweel removed
})
