package camel

import "unicode"

// arCharset covers the Arabic-script characters accepted by the
// analyzer: the basic letter block, the harakat, tatweel, superscript
// alef, alef wasla and the extended letters peh, tcheh, veh and gaf.
var arCharset = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0621, Hi: 0x063a, Stride: 1}, // ء .. غ
		{Lo: 0x0640, Hi: 0x0652, Stride: 1}, // tatweel, ف .. ي, harakat
		{Lo: 0x0670, Hi: 0x0671, Stride: 1}, // superscript alef, alef wasla
		{Lo: 0x067e, Hi: 0x067e, Stride: 1}, // پ
		{Lo: 0x0686, Hi: 0x0686, Stride: 1}, // چ
		{Lo: 0x06a4, Hi: 0x06a4, Stride: 1}, // ڤ
		{Lo: 0x06af, Hi: 0x06af, Stride: 1}, // گ
	},
}

// arDiacCharset covers the Arabic diacritical marks: fathatan, dammatan,
// kasratan, fatha, damma, kasra, shadda, sukun and superscript alef.
var arDiacCharset = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x064b, Hi: 0x0652, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
	},
}

// isDigitRune reports whether r is a Western or Arabic-Indic digit.
func isDigitRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 0x0660 && r <= 0x0669)
}

// isDigit reports whether word contains at least one digit (the "loose"
// digit classification).
func isDigit(word string) bool {
	for _, r := range word {
		if isDigitRune(r) {
			return true
		}
	}
	return false
}

// isStrictDigit reports whether word consists entirely of digits.
func isStrictDigit(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !isDigitRune(r) {
			return false
		}
	}
	return true
}

// isPunc reports whether word consists entirely of Unicode punctuation
// and symbol characters.
func isPunc(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// hasPunc reports whether word contains any Unicode punctuation or
// symbol character.
func hasPunc(word string) bool {
	for _, r := range word {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}

// isAr reports whether word consists entirely of Arabic-script
// characters.
func isAr(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.Is(arCharset, r) {
			return false
		}
	}
	return true
}
