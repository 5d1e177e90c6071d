package camel

import "strings"

// ar2caphi maps Arabic letters to their CAPHI phonetic transcription.
// Diacritics and unlisted characters are skipped.
var ar2caphi = map[rune]string{
	'ء': "2",
	'آ': "2_aa",
	'أ': "2",
	'ؤ': "2",
	'إ': "2",
	'ئ': "2",
	'ا': "aa",
	'ب': "b",
	'ت': "t",
	'ث': "th",
	'ج': "j",
	'ح': "7",
	'خ': "kh",
	'د': "d",
	'ذ': "dh",
	'ر': "r",
	'ز': "z",
	'س': "s",
	'ش': "sh",
	'ص': "s.",
	'ض': "d.",
	'ط': "t.",
	'ظ': "dh.",
	'ع': "3",
	'غ': "gh",
	'ف': "f",
	'ق': "q",
	'ك': "k",
	'ل': "l",
	'م': "m",
	'ن': "n",
	'ه': "h",
	'و': "w",
	'ى': "aa",
	'ي': "y",
}

// simpleArToCaphi converts an Arabic-script string to a best-effort
// CAPHI transcription, used to tag out-of-vocabulary stems during
// backoff. A word-initial bare alef is read as a glottal stop.
func simpleArToCaphi(s string) string {
	runes := []rune(s)
	if len(runes) > 0 && runes[0] == 'ا' {
		runes[0] = 'أ'
	}
	parts := make([]string, 0, len(runes))
	for _, r := range runes {
		if c, ok := ar2caphi[r]; ok {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, "_")
}
