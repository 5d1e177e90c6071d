// Package camel provides Arabic morphological analysis, generation and
// reinflection on top of a hand-curated lexical database, parsing the
// same line-oriented database format used by the calima-style morphology
// databases.
package camel

import (
	"sort"
	"strconv"
	"strings"
)

// Analysis is a single morphological analysis: a mapping from feature
// name to feature value. The set of keys present depends on which
// database produced it; feature names are opaque strings checked against
// the database's DEFINES section, not a fixed schema.
//
// Lexical analyses always carry at least 'diac' (diacritized surface
// form), 'lex' (lemma), 'bw' (compact tag string), 'pos', 'source' and
// 'stemcat'.
type Analysis map[string]string

// Get returns the value for feat, or the empty string if absent.
func (a Analysis) Get(feat string) string {
	return a[feat]
}

// LogProb returns the value of a log-probability feature as a float,
// defaulting to -99.0 when the feature is absent or not numeric.
func (a Analysis) LogProb(feat string) float64 {
	v, ok := a[feat]
	if !ok {
		return -99.0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return -99.0
	}
	return f
}

// clone returns a shallow copy of a.
func (a Analysis) clone() Analysis {
	c := make(Analysis, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// key returns a canonical string form of a, used for deduplication.
func (a Analysis) key() string {
	feats := make([]string, 0, len(a))
	for k := range a {
		feats = append(feats, k)
	}
	sort.Strings(feats)
	var b strings.Builder
	for i, k := range feats {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(k)
		b.WriteByte('\x1e')
		b.WriteString(a[k])
	}
	return b.String()
}

// AnalyzedWord pairs a word with its list of analyses, as returned by
// Analyzer.AnalyzeWords.
type AnalyzedWord struct {
	Word     string
	Analyses []Analysis
}

// dedupAnalyses returns analyses with exact duplicates removed,
// preserving first-seen order.
func dedupAnalyses(analyses []Analysis) []Analysis {
	seen := make(map[string]bool, len(analyses))
	out := make([]Analysis, 0, len(analyses))
	for _, a := range analyses {
		k := a.key()
		if !seen[k] {
			seen[k] = true
			out = append(out, a)
		}
	}
	return out
}
