package camel

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode applies Unicode canonical normalization (NFC) to s,
// or compatibility normalization (NFKC) when compatibility is true.
// Compatibility normalization folds Arabic presentation forms and
// ligatures back to their base letters.
func NormalizeUnicode(s string, compatibility bool) string {
	if compatibility {
		return norm.NFKC.String(s)
	}
	return norm.NFC.String(s)
}

// alefNormalizeReplacer maps all alef variants to bare alef.
var alefNormalizeReplacer = strings.NewReplacer(
	"إ", "ا", // إ → ا
	"أ", "ا", // أ → ا
	"ٱ", "ا", // ٱ → ا
	"آ", "ا", // آ → ا
)

// NormalizeAlefAR maps all alef variants in s to bare alef.
func NormalizeAlefAR(s string) string {
	return alefNormalizeReplacer.Replace(s)
}

// NormalizeAlefMaksuraAR maps alef maksura to yeh.
func NormalizeAlefMaksuraAR(s string) string {
	return strings.ReplaceAll(s, "ى", "ي")
}

// NormalizeTehMarbutaAR maps teh marbuta to heh.
func NormalizeTehMarbutaAR(s string) string {
	return strings.ReplaceAll(s, "ة", "ه")
}

// NormalizeTanwynAR puts each fathatan + alef (or alef maksura) pair in
// canonical order. Mode "AF" (the default used by the feature merger)
// orders the letter before the fathatan; mode "FA" orders the fathatan
// before the letter.
func NormalizeTanwynAR(s string, mode string) string {
	if mode == "FA" {
		s = strings.ReplaceAll(s, "اً", "ًا")
		s = strings.ReplaceAll(s, "ىً", "ًى")
	} else {
		s = strings.ReplaceAll(s, "ًا", "اً")
		s = strings.ReplaceAll(s, "ًى", "ىً")
	}
	return s
}
