package camel

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Backoff modes accepted by AnalyzerConfig. NOAN modes produce backoff
// analyses only when the lexicon yields nothing; ADD modes always append
// them. ALL modes use every backoff stem category, PROP modes only the
// proper-noun ones.
const (
	BackoffNone     = "NONE"
	BackoffNoanAll  = "NOAN_ALL"
	BackoffNoanProp = "NOAN_PROP"
	BackoffAddAll   = "ADD_ALL"
	BackoffAddProp  = "ADD_PROP"
)

// AnalyzerConfig configures a new Analyzer.
type AnalyzerConfig struct {
	// Backoff selects how out-of-vocabulary words are handled. The
	// zero value is treated as BackoffNone.
	Backoff string

	// NormMap is the character normalization applied to words before
	// lookup. Nil disables normalization entirely; most callers want
	// DefaultNormalizeMap.
	NormMap *CharMapper

	// StrictDigit classifies a word as a number only if it is made up
	// entirely of digits. When false, any word containing a digit is
	// a number.
	StrictDigit bool

	// CacheSize bounds the analyzer's word-level LRU cache. Zero or
	// negative disables caching.
	CacheSize int
}

// Analyzer produces all morphological analyses of Arabic words against
// a MorphologyDB. An Analyzer is safe for concurrent use.
type Analyzer struct {
	db          *MorphologyDB
	backoff     string
	backoffCond string
	backoffCats map[string]bool
	normMap     *CharMapper
	strictDigit bool
	cache       *lru.Cache[string, []Analysis]
}

// NewAnalyzer returns an Analyzer over db. The db must have been loaded
// with analysis support; configuration problems are reported as an
// *AnalyzerError.
func NewAnalyzer(db *MorphologyDB, cfg AnalyzerConfig) (*Analyzer, error) {
	if db == nil {
		return nil, &AnalyzerError{Msg: "database is nil"}
	}
	if !db.flags.Analysis {
		return nil, &AnalyzerError{
			Msg: "database does not support analysis"}
	}

	a := &Analyzer{
		db:          db,
		backoff:     cfg.Backoff,
		normMap:     cfg.NormMap,
		strictDigit: cfg.StrictDigit,
	}
	if a.backoff == "" {
		a.backoff = BackoffNone
	}

	switch a.backoff {
	case BackoffNone:
	case BackoffNoanAll, BackoffNoanProp, BackoffAddAll, BackoffAddProp:
		parts := strings.SplitN(a.backoff, "_", 2)
		a.backoffCond = parts[0]
		action := parts[1]
		cats, ok := db.stemBackoffs[action]
		if !ok {
			return nil, &AnalyzerError{
				Msg: fmt.Sprintf(
					"database does not support backoff action %q", action)}
		}
		if len(db.stemHash["NOAN"]) == 0 {
			return nil, &AnalyzerError{
				Msg: "database has no NOAN backoff stems"}
		}
		a.backoffCats = make(map[string]bool, len(cats))
		for _, cat := range cats {
			a.backoffCats[cat] = true
		}
	default:
		return nil, &AnalyzerError{
			Msg: fmt.Sprintf("invalid backoff mode %q", cfg.Backoff)}
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, []Analysis](cfg.CacheSize)
		if err != nil {
			return nil, &AnalyzerError{Msg: err.Error()}
		}
		a.cache = cache
	}

	return a, nil
}

// AllFeats returns the set of features defined by the underlying
// database.
func (a *Analyzer) AllFeats() map[string]bool {
	return a.db.AllFeats()
}

// TokFeats returns the set of tokenization features defined by the
// underlying database.
func (a *Analyzer) TokFeats() map[string]bool {
	return a.db.TokFeats()
}

// Analyze returns all analyses of word. Words made up of digits,
// punctuation or non-Arabic script get a single synthetic analysis
// built from the database defaults; words mixing punctuation with other
// characters get none. Callers must not modify the returned analyses
// when caching is enabled.
func (a *Analyzer) Analyze(word string) []Analysis {
	word = strings.TrimSpace(word)
	if word == "" {
		return []Analysis{}
	}

	if a.cache != nil {
		if cached, ok := a.cache.Get(word); ok {
			return cached
		}
	}

	analyses := a.analyzeWord(word)

	if a.cache != nil {
		a.cache.Add(word, analyses)
	}
	return analyses
}

// AnalyzeWords analyzes every word in words, preserving order.
func (a *Analyzer) AnalyzeWords(words []string) []AnalyzedWord {
	out := make([]AnalyzedWord, len(words))
	for i, word := range words {
		out[i] = AnalyzedWord{Word: word, Analyses: a.Analyze(word)}
	}
	return out
}

func (a *Analyzer) isDigit(word string) bool {
	if a.strictDigit {
		return isStrictDigit(word)
	}
	return isDigit(word)
}

func (a *Analyzer) analyzeWord(word string) []Analysis {
	switch {
	case a.isDigit(word):
		return []Analysis{a.classAnalysis(word, "digit")}
	case isPunc(word):
		return []Analysis{a.classAnalysis(word, "punc")}
	case hasPunc(word):
		return []Analysis{}
	case !isAr(word):
		return []Analysis{a.classAnalysis(word, "foreign")}
	}

	wordDediac := DediacAR(word)
	wordNormal := wordDediac
	if a.normMap != nil {
		wordNormal = a.normMap.MapString(wordDediac)
	}

	segments := a.segmentWord(wordNormal)
	analyses := a.combinedAnalyses(wordDediac, segments)

	switch a.backoffCond {
	case "NOAN":
		if len(analyses) == 0 {
			analyses = append(analyses, a.backoffAnalyses(segments)...)
		}
	case "ADD":
		analyses = append(analyses, a.backoffAnalyses(segments)...)
	}
	return analyses
}

// classTags holds the synthetic feature values used for digit,
// punctuation and foreign words.
var classTags = map[string]struct {
	pos    string
	bw     string
	lexTag string
	catib6 string
	ud     string
}{
	"digit":   {"noun_num", "/NOUN_NUM", "DIGIT", "NOM", "NUM"},
	"punc":    {"punc", "/PUNC", "PUNC", "PNX", "PUNCT"},
	"foreign": {"foreign", "/FOREIGN", "FOREIGN", "FOREIGN", "X"},
}

// Features copied verbatim from the word for non-lexical analyses.
var classCopyFeats = []string{"gloss", "atbtok", "atbseg", "d1tok",
	"d1seg", "d2tok", "d2seg", "d3tok", "d3seg", "bwtok"}

// Features tagged with the word class for non-lexical analyses.
var classLexFeats = []string{"root", "pattern", "caphi"}

// classAnalysis builds the single synthetic analysis for a digit,
// punctuation or foreign word from the database defaults. The foreign
// class uses the 'latin' defaults entry.
func (a *Analyzer) classAnalysis(word, class string) Analysis {
	defKey := class
	if class == "foreign" {
		defKey = "latin"
	}
	result := a.db.defaults[defKey].clone()
	tags := classTags[class]

	result["diac"] = word
	result["stem"] = word
	result["stemgloss"] = word
	result["lex"] = word
	result["bw"] = word + tags.bw
	result["pos"] = tags.pos
	result["source"] = class

	for _, feat := range classCopyFeats {
		if a.db.hasDefine(feat) {
			result[feat] = word
		}
	}
	for _, feat := range classLexFeats {
		if a.db.hasDefine(feat) {
			result[feat] = tags.lexTag
		}
	}
	if a.db.hasDefine("catib6") {
		result["catib6"] = tags.catib6
	}
	if a.db.hasDefine("ud") {
		result["ud"] = tags.ud
	}
	for _, feat := range logProbFeats {
		if a.db.hasDefine(feat) {
			result[feat] = "-99.0"
		}
	}
	if a.db.hasDefine("form_gen") && result["gen"] == "-" {
		result["gen"] = result["form_gen"]
	}
	if a.db.hasDefine("form_num") && result["num"] == "-" {
		result["num"] = result["form_num"]
	}

	return result
}

// segment is one (prefix, stem, suffix) split of a word. Lengths are
// in runes; the prefix and suffix may be empty, the stem may not.
type segment struct {
	prefix string
	stem   string
	suffix string
}

// segmentWord enumerates every split of word whose prefix and suffix
// fit the database's morpheme length bounds.
func (a *Analyzer) segmentWord(word string) []segment {
	runes := []rune(word)
	n := len(runes)

	maxPrefix := a.db.maxPrefixSize
	if maxPrefix > n-1 {
		maxPrefix = n - 1
	}

	var segments []segment
	for p := 0; p <= maxPrefix; p++ {
		minStem := n - p - a.db.maxSuffixSize
		if minStem < 1 {
			minStem = 1
		}
		for st := minStem; st <= n-p; st++ {
			segments = append(segments, segment{
				prefix: string(runes[:p]),
				stem:   string(runes[p : p+st]),
				suffix: string(runes[p+st:]),
			})
		}
	}
	return segments
}

// combinedAnalyses runs the combinatorial search: every segmentation
// whose prefix, stem and suffix all occur in the database and whose
// categories pass all three compatibility tables yields one merged
// analysis. Analyses whose dediacritized form differs from the input
// (beyond tatweel) are marked as spelling variants.
func (a *Analyzer) combinedAnalyses(wordDediac string, segments []segment) []Analysis {
	inputDediac := strings.ReplaceAll(wordDediac, "ـ", "")

	var analyses []Analysis
	for _, seg := range segments {
		prefixEntries, ok := a.db.prefixHash[seg.prefix]
		if !ok {
			continue
		}
		stemEntries, ok := a.db.stemHash[seg.stem]
		if !ok {
			continue
		}
		suffixEntries, ok := a.db.suffixHash[seg.suffix]
		if !ok {
			continue
		}

		for _, prefix := range prefixEntries {
			stemCompat := a.db.prefixStemCompat[prefix.cat]
			if stemCompat == nil {
				continue
			}
			for _, stem := range stemEntries {
				if !stemCompat[stem.cat] {
					continue
				}
				for _, suffix := range suffixEntries {
					if !a.db.stemSuffixCompat[stem.cat][suffix.cat] {
						continue
					}
					if !a.db.prefixSuffixCompat[prefix.cat][suffix.cat] {
						continue
					}

					merged := mergeFeatures(a.db, prefix.feats,
						stem.feats, suffix.feats, "AF")
					merged["stemcat"] = stem.cat
					if DediacAR(merged["diac"]) != inputDediac {
						merged["source"] = "spvar"
					}
					analyses = append(analyses, merged)
				}
			}
		}
	}
	return analyses
}

// backoffAnalyses treats each candidate stem of a segmentation as an
// out-of-vocabulary entry: the database's NOAN backoff stems stand in
// for it, with their placeholder surface forms replaced by the actual
// stem. PROP modes keep only proper-noun backoff stems.
func (a *Analyzer) backoffAnalyses(segments []segment) []Analysis {
	propOnly := strings.HasSuffix(a.backoff, "PROP")

	var backoffStems []dbEntry
	for _, entry := range a.db.stemHash["NOAN"] {
		if !a.backoffCats[entry.cat] {
			continue
		}
		if propOnly && !strings.Contains(entry.feats["bw"], "NOUN_PROP") {
			continue
		}
		backoffStems = append(backoffStems, entry)
	}

	var analyses []Analysis
	for _, seg := range segments {
		prefixEntries, ok := a.db.prefixHash[seg.prefix]
		if !ok {
			continue
		}
		suffixEntries, ok := a.db.suffixHash[seg.suffix]
		if !ok {
			continue
		}

		caphi := simpleArToCaphi(seg.stem)

		for _, prefix := range prefixEntries {
			stemCompat := a.db.prefixStemCompat[prefix.cat]
			if stemCompat == nil {
				continue
			}
			for _, entry := range backoffStems {
				if !stemCompat[entry.cat] {
					continue
				}

				stemFeats := entry.feats.clone()
				stemFeats["bw"] = strings.ReplaceAll(
					stemFeats["bw"], "NOAN", seg.stem)
				stemFeats["diac"] = strings.ReplaceAll(
					stemFeats["diac"], "NOAN", seg.stem)
				stemFeats["lex"] = strings.ReplaceAll(
					stemFeats["lex"], "NOAN", seg.stem)
				if a.db.hasDefine("caphi") {
					stemFeats["caphi"] = caphi
				}

				for _, suffix := range suffixEntries {
					if !a.db.stemSuffixCompat[entry.cat][suffix.cat] {
						continue
					}
					if !a.db.prefixSuffixCompat[prefix.cat][suffix.cat] {
						continue
					}

					merged := mergeFeatures(a.db, prefix.feats, stemFeats,
						suffix.feats, "AF")
					merged["stemcat"] = entry.cat
					merged["gloss"] = stemFeats["gloss"]
					merged["source"] = "backoff"
					if a.db.hasDefine("pattern") {
						merged["pattern"] = "backoff"
					}
					analyses = append(analyses, merged)
				}
			}
		}
	}
	return analyses
}
