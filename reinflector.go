package camel

var reinflectorCliticFeats = map[string]bool{
	"enc0": true, "prc0": true, "prc1": true, "prc2": true, "prc3": true,
}

// Features of a source analysis that are outputs of merging, not
// inflection constraints; they never carry over into generation.
var reinflectorIgnoredFeats = map[string]bool{
	"diac": true, "lex": true, "bw": true, "gloss": true, "source": true,
	"stem": true, "stemcat": true, "lmm": true, "dediac": true,
	"caphi": true, "catib6": true, "ud": true, "d3seg": true,
	"atbseg": true, "d2seg": true, "d1seg": true, "d1tok": true,
	"d2tok": true, "atbtok": true, "d3tok": true, "bwtok": true,
	"root": true, "pattern": true, "freq": true, "pos_logprob": true,
	"lex_logprob": true, "pos_lex_logprob": true, "stemgloss": true,
}

// Form features carried over only when the caller asks for them.
var reinflectorSpecifiedFeats = map[string]bool{
	"form_gen": true, "form_num": true,
}

// Features dropped from the source analysis whenever the request
// changes clitics, since clitics determine them.
var reinflectorCliticIgnoredFeats = map[string]bool{
	"stt": true, "cas": true, "mod": true,
}

// Features that accept the special value 'ANY' to leave them
// unconstrained.
var reinflectorAnyFeats = map[string]bool{
	"per": true, "gen": true, "num": true, "cas": true, "stt": true,
	"vox": true, "mod": true, "asp": true,
}

// Reinflector produces alternate surface forms of a word: it analyzes
// the word, overrides the requested features on each analysis, and
// regenerates. A Reinflector is safe for concurrent use.
type Reinflector struct {
	db        *MorphologyDB
	analyzer  *Analyzer
	generator *Generator
}

// NewReinflector returns a Reinflector over db. The db must have been
// loaded with reinflection support (both analysis and generation).
func NewReinflector(db *MorphologyDB) (*Reinflector, error) {
	if db == nil {
		return nil, &ReinflectorError{Msg: "database is nil"}
	}
	if !db.flags.Analysis || !db.flags.Generation {
		return nil, &ReinflectorError{
			Msg: "database does not support reinflection"}
	}

	analyzer, err := NewAnalyzer(db, AnalyzerConfig{NormMap: DefaultNormalizeMap})
	if err != nil {
		return nil, &ReinflectorError{Msg: err.Error()}
	}
	generator, err := NewGenerator(db)
	if err != nil {
		return nil, &ReinflectorError{Msg: err.Error()}
	}

	return &Reinflector{db: db, analyzer: analyzer, generator: generator}, nil
}

// AllFeats returns the set of features defined by the underlying
// database.
func (r *Reinflector) AllFeats() map[string]bool {
	return r.db.AllFeats()
}

// TokFeats returns the set of tokenization features defined by the
// underlying database.
func (r *Reinflector) TokFeats() map[string]bool {
	return r.db.TokFeats()
}

func (r *Reinflector) validateFeats(feats Analysis) error {
	for feat, val := range feats {
		valSet, ok := r.db.defines[feat]
		if !ok {
			return &InvalidReinflectorFeatureError{Feat: feat}
		}
		if valSet == nil {
			continue
		}
		if reinflectorAnyFeats[feat] && val == "ANY" {
			continue
		}
		if !valSet[val] {
			return &InvalidReinflectorFeatureValueError{
				Feat: feat, Value: val}
		}
	}
	return nil
}

// Reinflect returns all analyses of inflected forms of word that carry
// the requested feature values. Features left out of feats keep the
// values of the source analysis; the value 'ANY' releases a feature
// entirely. A word with no analyses yields an empty list.
func (r *Reinflector) Reinflect(word string, feats Analysis) ([]Analysis, error) {
	analyses := r.analyzer.Analyze(word)
	if len(analyses) == 0 {
		return []Analysis{}, nil
	}

	if err := r.validateFeats(feats); err != nil {
		return nil, err
	}

	hasClitics := false
	for feat := range feats {
		if reinflectorCliticFeats[feat] {
			hasClitics = true
			break
		}
	}

	wordDediac := DediacAR(word)

	var results []Analysis
	for _, analysis := range analyses {
		if DediacAR(analysis["diac"]) != wordDediac {
			continue
		}
		if want, ok := feats["pos"]; ok && want != analysis["pos"] {
			continue
		}

		lemma := stripLex(analysis["lex"])
		if want, ok := feats["lex"]; ok && want != lemma {
			continue
		}

		genFeats := make(Analysis)
		valid := true
		for feat, val := range analysis {
			if reinflectorIgnoredFeats[feat] {
				continue
			}
			_, requested := feats[feat]
			if reinflectorSpecifiedFeats[feat] && !requested {
				continue
			}
			if hasClitics && reinflectorCliticIgnoredFeats[feat] {
				continue
			}

			if requested {
				want := feats[feat]
				if want == "ANY" {
					continue
				}
				// A feature fixed at 'na' by the source analysis cannot
				// be reinflected to another value.
				if val == "na" {
					valid = false
					break
				}
				genFeats[feat] = want
			} else if val != "na" {
				genFeats[feat] = val
			}
		}
		if !valid {
			continue
		}

		generated, err := r.generator.Generate(lemma, genFeats)
		if err != nil {
			return nil, err
		}
		results = append(results, generated...)
	}

	return dedupAnalyses(results), nil
}
