package camel

import (
	"strconv"
	"strings"
)

// Feature classes that the merger treats specially. Join features take
// a '+'-joined value of the non-empty morpheme values; concat features
// keep a '+' for every morpheme boundary even when a morpheme
// contributes nothing, so a later rewrite pass can see the boundary.
var (
	joinFeats = []string{"gloss", "bw"}

	concatFeats = []string{"diac", "pattern", "caphi", "catib6", "ud"}

	concatFeatsNone = []string{"d3tok", "d3seg", "atbseg", "d2seg",
		"d1seg", "d1tok", "d2tok", "atbtok", "bwtok"}

	logProbFeats = []string{"pos_logprob", "lex_logprob",
		"pos_lex_logprob"}

	// Schemes that keep article and fatha rewrites.
	tokSchemes1 = []string{"d1tok", "d2tok", "atbtok", "d1seg", "d2seg",
		"d3seg", "atbseg"}
	// Schemes that keep only the fatha rewrite.
	tokSchemes2 = []string{"d3tok", "d3seg"}
)

// stripLex reduces a lemma identifier to its root: the part before the
// first '_' or '-'.
func stripLex(lex string) string {
	if i := strings.IndexAny(lex, "_-"); i >= 0 {
		return lex[:i]
	}
	return lex
}

// mergeFeatures combines the feature dictionaries of a compatible
// (prefix, stem, suffix) triple into one merged analysis. For features
// shared between morphemes, the prefix value wins over the suffix value,
// which wins over the stem value; '-' and empty values never override.
// diacMode selects the tanwin ordering applied to the merged diac
// ("AF" or "FA").
func mergeFeatures(db *MorphologyDB, prefixFeats, stemFeats, suffixFeats Analysis, diacMode string) Analysis {
	result := stemFeats.clone()

	for feat := range stemFeats {
		if v := suffixFeats[feat]; v != "-" && v != "" {
			result[feat] = v
		}
		if v := prefixFeats[feat]; v != "-" && v != "" {
			result[feat] = v
		}
	}

	for _, feat := range joinFeats {
		if !db.hasDefine(feat) {
			continue
		}
		vals := make([]string, 0, 3)
		for _, feats := range []Analysis{prefixFeats, stemFeats, suffixFeats} {
			if v, ok := feats[feat]; ok && v != "" {
				vals = append(vals, v)
			}
		}
		result[feat] = strings.Join(vals, "+")
	}

	for _, feat := range concatFeats {
		if !db.hasDefine(feat) {
			continue
		}
		result[feat] = prefixFeats[feat] + "+" + stemFeats[feat] + "+" +
			suffixFeats[feat]
	}

	for _, feat := range concatFeatsNone {
		if !db.hasDefine(feat) {
			continue
		}
		stemVal, ok := stemFeats[feat]
		if !ok {
			stemVal = stemFeats["diac"]
		}
		result[feat] = prefixFeats[feat] + stemVal + suffixFeats[feat]
	}

	result["stem"] = stemFeats["diac"]
	result["stemgloss"] = stemFeats["gloss"]

	result["diac"] = NormalizeTanwynAR(rewriteDiac(result["diac"]), diacMode)

	for _, feat := range tokSchemes1 {
		if db.hasDefine(feat) {
			result[feat] = rewriteTok1(result[feat])
		}
	}
	for _, feat := range tokSchemes2 {
		if db.hasDefine(feat) {
			result[feat] = rewriteTok2(result[feat])
		}
	}

	if db.hasDefine("caphi") {
		result["caphi"] = rewriteCaphi(result["caphi"])
	}

	if db.hasDefine("form_gen") && result["gen"] == "-" {
		result["gen"] = result["form_gen"]
	}
	if db.hasDefine("form_num") && result["num"] == "-" {
		result["num"] = result["form_num"]
	}

	if db.computeFeats["pattern"] {
		stemPattern, ok := stemFeats["pattern"]
		if !ok || stemPattern == "" {
			stemPattern = stemFeats["diac"]
		}
		result["pattern"] = rewritePattern(
			prefixFeats["diac"] + stemPattern + suffixFeats["diac"])
	}

	for _, feat := range logProbFeats {
		if !db.hasDefine(feat) {
			continue
		}
		if _, err := strconv.ParseFloat(result[feat], 64); err != nil {
			result[feat] = "-99.0"
		}
	}

	return result
}
