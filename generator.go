package camel

// cliticFeats are the proclitic and enclitic features. They get filled
// from the pos defaults when the caller leaves them unspecified.
var cliticFeats = []string{"prc0", "prc1", "prc2", "prc3", "enc0"}

var procliticFeats = []string{"prc0", "prc1", "prc2", "prc3"}

var encliticFeats = []string{"enc0"}

// Generator produces inflected forms of a lemma constrained by a set of
// feature values. A Generator is safe for concurrent use.
type Generator struct {
	db *MorphologyDB
}

// NewGenerator returns a Generator over db. The db must have been
// loaded with generation support.
func NewGenerator(db *MorphologyDB) (*Generator, error) {
	if db == nil {
		return nil, &GeneratorError{Msg: "database is nil"}
	}
	if !db.flags.Generation {
		return nil, &GeneratorError{
			Msg: "database does not support generation"}
	}
	return &Generator{db: db}, nil
}

// validateFeats checks every requested feature against the database
// defines. Features with a nil define are open and accept any value.
func (g *Generator) validateFeats(feats Analysis) error {
	for feat, val := range feats {
		valSet, ok := g.db.defines[feat]
		if !ok {
			return &InvalidGeneratorFeatureError{Feat: feat}
		}
		if valSet != nil && !valSet[val] {
			return &InvalidGeneratorFeatureValueError{Feat: feat, Value: val}
		}
	}
	if !g.db.defines["pos"][feats["pos"]] {
		return &InvalidGeneratorFeatureValueError{
			Feat: "pos", Value: feats["pos"]}
	}
	return nil
}

// Generate returns all analyses of lemma whose features match feats.
// The 'pos' feature is required; all other features are optional
// constraints. An unknown lemma yields an empty list; an unknown
// feature or feature value yields an error.
func (g *Generator) Generate(lemma string, feats Analysis) ([]Analysis, error) {
	stemFeatsList, ok := g.db.lemmaHash[stripLex(lemma)]
	if !ok {
		return []Analysis{}, nil
	}

	if err := g.validateFeats(feats); err != nil {
		return nil, err
	}

	feats = feats.clone()

	// Features outside the pos default template can never be matched,
	// so such a request generates nothing.
	defaults := g.db.defaults[feats["pos"]]
	for feat := range feats {
		if _, ok := defaults[feat]; !ok {
			return []Analysis{}, nil
		}
	}

	for _, feat := range cliticFeats {
		if _, ok := feats[feat]; ok {
			continue
		}
		if val, ok := defaults[feat]; ok {
			feats[feat] = val
		}
	}

	var analyses []Analysis
	for _, stemFeats := range stemFeatsList {
		if !g.stemMatches(stemFeats, feats) {
			continue
		}

		stemCat := stemFeats["stemcat"]
		for prefixCat := range g.db.stemPrefixCompat[stemCat] {
			for _, prefixFeats := range g.db.prefixCatHash[prefixCat] {
				if !cliticMatches(procliticFeats, feats, prefixFeats, stemFeats) {
					continue
				}

				for suffixCat := range g.db.stemSuffixCompat[stemCat] {
					if !g.db.prefixSuffixCompat[prefixCat][suffixCat] {
						continue
					}
					for _, suffixFeats := range g.db.suffixCatHash[suffixCat] {
						if !cliticMatches(encliticFeats, feats, suffixFeats, stemFeats) {
							continue
						}

						merged := mergeFeatures(g.db, prefixFeats,
							stemFeats, suffixFeats, "AF")
						if analysisMatches(merged, feats) {
							analyses = append(analyses, merged)
						}
					}
				}
			}
		}
	}

	if analyses == nil {
		return []Analysis{}, nil
	}
	return analyses, nil
}

// stemMatches filters lemma stems by the hard stem-level constraints:
// voice, rationality and part of speech, plus any requested clitic a
// stem form already carries.
func (g *Generator) stemMatches(stemFeats, feats Analysis) bool {
	for _, feat := range []string{"vox", "rat", "pos"} {
		if want, ok := feats[feat]; ok && stemFeats[feat] != want {
			return false
		}
	}

	for _, feat := range cliticFeats {
		want, ok := feats[feat]
		if !ok {
			continue
		}
		if have, ok := stemFeats[feat]; ok && have != "0" && have != want {
			return false
		}
	}
	return true
}

// cliticMatches checks the requested clitic features against a prefix
// or suffix morpheme. A morpheme that carries the clitic must carry the
// requested value; a morpheme that does not carry it is acceptable only
// when the request is '0' or the stem itself supplies the value.
func cliticMatches(cliticSet []string, feats, morphemeFeats, stemFeats Analysis) bool {
	for _, feat := range cliticSet {
		want, ok := feats[feat]
		if !ok {
			continue
		}

		have, carried := morphemeFeats[feat]
		if carried {
			if have != want {
				return false
			}
			continue
		}
		if want == "0" {
			continue
		}
		stemVal, ok := stemFeats[feat]
		if !ok {
			stemVal = "0"
		}
		if stemVal != want {
			return false
		}
	}
	return true
}

// analysisMatches reports whether every requested feature present in
// the merged analysis has the requested value.
func analysisMatches(merged, feats Analysis) bool {
	for feat, want := range feats {
		if have, ok := merged[feat]; ok && have != want {
			return false
		}
	}
	return true
}
