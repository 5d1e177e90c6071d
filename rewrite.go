package camel

import "regexp"

// The merged values of concatenated features keep a literal '+' at each
// morpheme boundary. Arabic orthography alters letters at those joints
// (assimilation, vowel insertion), so the boundaries are rewritten by
// ordered find-and-replace passes after concatenation. The passes are
// order-dependent: tanwin normalization, for example, must run after
// sun-letter assimilation.

// sunLetters are the consonants that assimilate the lam of a preceding
// definite article.
const sunLetters = "تثدذرزسش" +
	"صضطظلن"

var (
	// Sun letter after the definite article ال, optionally preceded by
	// the proclitics وَ/فَ and بِ/كَ.
	rewriteDiacSun = regexp.MustCompile(
		`^((\x{0648}\x{064e}|\x{0641}\x{064e})?` +
			`(\x{0628}\x{0650}|\x{0643}\x{064e})?\x{0627}\x{0644})\+?` +
			`([` + sunLetters + `])`)
	// Sun letter after the contracted لِل form of the article.
	rewriteDiacSunLil = regexp.MustCompile(
		`^((\x{0648}\x{064e}|\x{0641}\x{064e})?` +
			`\x{0644}\x{0650}\x{0644})\+?` +
			`([` + sunLetters + `])`)
	// Fatha between alif and teh marbuta / teh.
	rewriteDiacFatha = regexp.MustCompile(
		`\x{0627}\+?\x{064e}([\x{0629}\x{062a}])`)
	// Hamzat wasl.
	rewriteDiacWasl = regexp.MustCompile(`\x{0671}`)
	// Morpheme boundary markers.
	rewriteDiacPlus = regexp.MustCompile(`\+`)
	// Duplicated shaddas left by some database entries.
	rewriteDiacShadda = regexp.MustCompile(`\x{0651}+`)
)

// rewriteDiac fixes the orthography of a merged diac value at morpheme
// boundaries and strips the boundary markers.
func rewriteDiac(word string) string {
	word = rewriteDiacSun.ReplaceAllString(word, "${1}${4}ّ")
	word = rewriteDiacSunLil.ReplaceAllString(word, "${1}${3}ّ")
	word = rewriteDiacFatha.ReplaceAllString(word, "ا${1}")
	word = rewriteDiacWasl.ReplaceAllString(word, "ا")
	word = rewriteDiacPlus.ReplaceAllString(word, "")
	word = rewriteDiacShadda.ReplaceAllString(word, "ّ")
	return word
}

// rewriteTok1 applies the sun-letter and fatha rules to tokenization
// schemes that keep morpheme boundaries in their values.
func rewriteTok1(word string) string {
	word = rewriteDiacSun.ReplaceAllString(word, "${1}${4}ّ")
	word = rewriteDiacSunLil.ReplaceAllString(word, "${1}${3}ّ")
	word = rewriteDiacFatha.ReplaceAllString(word, "ا${1}")
	return word
}

// rewriteTok2 applies only the fatha rule.
func rewriteTok2(word string) string {
	return rewriteDiacFatha.ReplaceAllString(word, "ا${1}")
}

// rewritePattern applies the definite-article rewrite to a computed
// pattern value.
func rewritePattern(word string) string {
	word = rewriteDiacSun.ReplaceAllString(word, "${1}${4}ّ")
	word = rewriteDiacSunLil.ReplaceAllString(word, "${1}${3}ّ")
	word = rewriteDiacPlus.ReplaceAllString(word, "")
	return word
}

// The phonetic (caphi) tier has its own assimilation and elision rules.
// Morphemes are joined with '+' and morpheme-final coarticulation sites
// carry a '-' marker.
var caphiRewrites = []struct {
	re  *regexp.Regexp
	rep string
}{
	// Sun letter assimilation.
	{regexp.MustCompile(`(l-)\+(t_|th_|d_|th\._|r_|z_|s_|sh_|s\._|d\._|` +
		`t\._|dh\._|l_|n_|dh_)`), "${2}${2}"},
	// Shadda doubles the preceding consonant.
	{regexp.MustCompile(`(\S)[-]*\+~`), "${1}_${1}"},
	// Word-final i_y becomes a long vowel before a non-vowel suffix.
	{regexp.MustCompile(`i_y-\+([^iau]+|$)`), "ii_${1}"},
	// Word-final u_w becomes a long vowel before a non-vowel suffix.
	{regexp.MustCompile(`u_w-\+([^iau]+|$)`), "uu_${1}"},
	// Hamzat wasl elision after a vowel.
	{regexp.MustCompile(`([iua])\+-2_[iua]`), "${1}"},
	// Hamzat wasl elision after a non-vowel.
	{regexp.MustCompile(`(.+)\+-2_([iua])`), "${1}_${2}"},
	// u+w before a non-vowel.
	{regexp.MustCompile(`u\+w(_+[^ioua])`), "uu${1}"},
	// Stem-final teh marbuta before a vowel-initial suffix.
	{regexp.MustCompile(`p-\+([iua])`), "t_${1}"},
	// Alef madda followed by fatha.
	{regexp.MustCompile(`aa\+a_*`), "aa_"},
	// Boundary markers become segment separators.
	{regexp.MustCompile(`[+\-]`), "_"},
	// Collapse separator runs.
	{regexp.MustCompile(`_+`), "_"},
	// Trim leading separators and a trailing teh marbuta marker.
	{regexp.MustCompile(`((^_+)|(_p?_*$))`), ""},
}

// rewriteCaphi fixes a merged caphi value at morpheme boundaries.
func rewriteCaphi(word string) string {
	for _, r := range caphiRewrites {
		word = r.re.ReplaceAllString(word, r.rep)
	}
	return word
}
