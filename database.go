package camel

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DBFlags records which components a database was opened for.
// Reinflection implies both analysis and generation.
type DBFlags struct {
	Analysis     bool
	Generation   bool
	Reinflection bool
}

// dbEntry pairs a morpheme category with its feature dictionary.
// Morpheme surface strings are ambiguous, so the hash tables map each
// surface string to a list of entries.
type dbEntry struct {
	cat   string
	feats Analysis
}

// MorphologyDB holds all index tables parsed from a morphology database
// file. A database is built once by LoadDB and is read-only afterward;
// it may be shared freely across concurrent analyzers, generators and
// reinflectors.
type MorphologyDB struct {
	flags      DBFlags
	defaultKey string

	// defines maps feature name → allowed value set. A nil set marks an
	// open (unconstrained) feature such as lemma or gloss.
	defines map[string]map[string]bool

	// defaults maps a default-class key (the 'pos' value) → a template
	// feature dictionary for digit/punctuation/foreign tokens and for
	// generation. A wildcard value ('*' in the file) is stored as the
	// empty string.
	defaults map[string]Analysis

	// order is the canonical feature sequence used when serializing an
	// analysis.
	order []string

	// tokenizations is the set of tokenization-scheme features named by
	// the ###TOKENIZATIONS### section.
	tokenizations map[string]bool

	// computeFeats is the set of features computed by the merger rather
	// than looked up (e.g. 'pattern'). Populated only for databases with
	// a ###TOKENIZATIONS### section.
	computeFeats map[string]bool

	// stemBackoffs maps a backoff action name (ALL/PROP) → the stem
	// categories eligible for that action.
	stemBackoffs map[string][]string

	prefixHash map[string][]dbEntry
	suffixHash map[string][]dbEntry
	stemHash   map[string][]dbEntry

	// Generation-mode indices.
	prefixCatHash map[string][]Analysis
	suffixCatHash map[string][]Analysis
	lemmaHash     map[string][]Analysis

	// Compatibility tables: the join conditions of the combinatorial
	// search. A category missing from a table simply never combines.
	prefixStemCompat   map[string]map[string]bool
	stemSuffixCompat   map[string]map[string]bool
	prefixSuffixCompat map[string]map[string]bool
	stemPrefixCompat   map[string]map[string]bool

	// Bounds for segmentation enumeration, in runes, derived from the
	// longest keys in prefixHash/suffixHash.
	maxPrefixSize int
	maxSuffixSize int
}

// Flags returns the component flags this database was opened with.
func (db *MorphologyDB) Flags() DBFlags {
	return db.flags
}

// Order returns a copy of the canonical feature order.
func (db *MorphologyDB) Order() []string {
	return append([]string(nil), db.order...)
}

// AllFeats returns the set of all features defined by this database.
func (db *MorphologyDB) AllFeats() map[string]bool {
	out := make(map[string]bool, len(db.defines))
	for feat := range db.defines {
		out[feat] = true
	}
	return out
}

// TokFeats returns the set of tokenization features defined by this
// database.
func (db *MorphologyDB) TokFeats() map[string]bool {
	out := make(map[string]bool, len(db.tokenizations))
	for feat := range db.tokenizations {
		out[feat] = true
	}
	return out
}

func (db *MorphologyDB) hasDefine(feat string) bool {
	_, ok := db.defines[feat]
	return ok
}

// parseFlags interprets the flag string: 'a' analysis, 'g' generation,
// 'r' reinflection (implies both).
func parseFlags(flags string) (DBFlags, error) {
	var f DBFlags
	for _, flag := range flags {
		switch flag {
		case 'a':
			f.Analysis = true
		case 'g':
			f.Generation = true
		case 'r':
			f.Reinflection = true
			f.Analysis = true
			f.Generation = true
		default:
			return f, &InvalidDatabaseFlagError{Flag: flag}
		}
	}
	if f.Analysis && f.Generation {
		f.Reinflection = true
	}
	return f, nil
}

// LoadDB parses a morphology database file into a MorphologyDB. The
// flags string indicates what the database will be used for: 'a' for
// analysis, 'g' for generation, 'r' for reinflection ('r' is equivalent
// to 'ag' since the reinflector uses both).
//
// The returned error is an *InvalidDatabaseFlagError for a bad flag
// string and a *DatabaseParseError (wrapped) for a malformed file.
func LoadDB(path string, flags string) (*MorphologyDB, error) {
	dbFlags, err := parseFlags(flags)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer f.Close()

	db := &MorphologyDB{
		flags:              dbFlags,
		defaultKey:         "pos",
		defines:            make(map[string]map[string]bool),
		defaults:           make(map[string]Analysis),
		tokenizations:      make(map[string]bool),
		computeFeats:       make(map[string]bool),
		stemBackoffs:       make(map[string][]string),
		prefixHash:         make(map[string][]dbEntry),
		suffixHash:         make(map[string][]dbEntry),
		stemHash:           make(map[string][]dbEntry),
		prefixCatHash:      make(map[string][]Analysis),
		suffixCatHash:      make(map[string][]Analysis),
		lemmaHash:          make(map[string][]Analysis),
		prefixStemCompat:   make(map[string]map[string]bool),
		stemSuffixCompat:   make(map[string]map[string]bool),
		prefixSuffixCompat: make(map[string]map[string]bool),
		stemPrefixCompat:   make(map[string]map[string]bool),
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if err := db.parseSections(sc); err != nil {
		return nil, err
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read database: %w", err)
	}

	if db.flags.Analysis {
		for prefix := range db.prefixHash {
			if n := len([]rune(prefix)); n > db.maxPrefixSize {
				db.maxPrefixSize = n
			}
		}
		for suffix := range db.suffixHash {
			if n := len([]rune(suffix)); n > db.maxSuffixSize {
				db.maxSuffixSize = n
			}
		}
	}

	return db, nil
}

// parseSections walks the file section by section. Sections appear in a
// fixed order, each introduced by its sentinel line; the file ends the
// final compatibility table.
func (db *MorphologyDB) parseSections(sc *bufio.Scanner) error {
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "###DEFINES###" {
		return &DatabaseParseError{Msg: "missing ###DEFINES### section"}
	}
	if err := db.parseDefines(sc); err != nil {
		return err
	}
	if err := db.parseDefaults(sc); err != nil {
		return err
	}
	next, err := db.parseOrder(sc)
	if err != nil {
		return err
	}
	if next == "###TOKENIZATIONS###" {
		// Databases with a tokenizations section compute the ordered
		// features at merge time instead of storing them per stem.
		for _, feat := range db.order {
			db.computeFeats[feat] = true
		}
		if err := db.parseTokenizations(sc); err != nil {
			return err
		}
	}
	if err := db.parseStemBackoffs(sc); err != nil {
		return err
	}
	if err := db.parseMorphemes(sc, "###SUFFIXES###", db.addPrefix); err != nil {
		return err
	}
	if err := db.parseMorphemes(sc, "###STEMS###", db.addSuffix); err != nil {
		return err
	}
	if err := db.parseStems(sc); err != nil {
		return err
	}
	if err := db.parseCompat(sc, "###TABLE BC###", db.addPrefixStem); err != nil {
		return err
	}
	if err := db.parseCompat(sc, "###TABLE AC###", db.addStemSuffix); err != nil {
		return err
	}
	return db.parseCompat(sc, "", db.addPrefixSuffix)
}

// parseDefines reads DEFINE lines until ###DEFAULTS###.
// Line grammar: DEFINE <name> <name>:<value> ...; a lone value of
// '*open*' marks the feature as unconstrained.
func (db *MorphologyDB) parseDefines(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "###DEFAULTS###" {
			return nil
		}

		toks := strings.Split(line, " ")
		if len(toks) < 3 || toks[0] != "DEFINE" {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("invalid DEFINES line %q", line)}
		}

		name := toks[1]
		valSet := make(map[string]bool)

		for _, tok := range toks[2:] {
			subtoks := strings.SplitN(tok, ":", 2)
			if len(subtoks) != 2 {
				return &DatabaseParseError{
					Msg: fmt.Sprintf("invalid key value pair %q in DEFINES", tok)}
			}
			if len(toks) == 3 && subtoks[1] == "*open*" {
				valSet = nil
				break
			}
			valSet[subtoks[1]] = true
		}

		db.defines[name] = valSet
	}
	return &DatabaseParseError{Msg: "missing ###DEFAULTS### section"}
}

// parseDefaults reads DEFAULT lines until ###ORDER###. Each line must
// supply the default-class key feature ('pos'); a value of 'na' omits
// the feature and '*' stores a wildcard.
func (db *MorphologyDB) parseDefaults(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "###ORDER###" {
			return nil
		}

		toks := strings.Split(line, " ")
		if len(toks) < 2 || toks[0] != "DEFAULT" {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("invalid DEFAULTS line %q", line)}
		}

		parsed := make(Analysis)
		for _, tok := range toks[1:] {
			subtoks := strings.SplitN(tok, ":", 2)
			if len(subtoks) != 2 {
				return &DatabaseParseError{
					Msg: fmt.Sprintf("invalid key value pair %q in DEFAULTS", tok)}
			}
			feat, val := subtoks[0], subtoks[1]
			switch val {
			case "na":
				// omitted
			case "*":
				parsed[feat] = ""
			default:
				parsed[feat] = val
			}
		}

		dkey, ok := parsed[db.defaultKey]
		if !ok {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("DEFAULTS line %q missing %s value",
					line, db.defaultKey)}
		}
		db.defaults[dkey] = parsed
	}
	return &DatabaseParseError{Msg: "missing ###ORDER### section"}
}

// parseOrder reads the ORDER line(s) until the next section sentinel
// (###TOKENIZATIONS### or ###STEMBACKOFF### depending on the schema
// version). Every named feature must already be defined.
func (db *MorphologyDB) parseOrder(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "###TOKENIZATIONS###" || line == "###STEMBACKOFF###" {
			return line, nil
		}

		toks := strings.Split(line, " ")
		if len(toks) < 2 || toks[0] != "ORDER" {
			return "", &DatabaseParseError{
				Msg: fmt.Sprintf("invalid ORDER line %q", line)}
		}
		for _, feat := range toks[1:] {
			if !db.hasDefine(feat) {
				return "", &DatabaseParseError{
					Msg: fmt.Sprintf("invalid feature %q in ORDER line", feat)}
			}
		}
		db.order = toks[1:]
	}
	return "", &DatabaseParseError{Msg: "missing ###STEMBACKOFF### section"}
}

// parseTokenizations reads TOKENIZATION lines until ###STEMBACKOFF###.
func (db *MorphologyDB) parseTokenizations(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "###STEMBACKOFF###" {
			return nil
		}

		toks := strings.Split(line, " ")
		if len(toks) < 2 || toks[0] != "TOKENIZATION" {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("invalid TOKENIZATION line %q", line)}
		}
		for _, feat := range toks[1:] {
			if !db.hasDefine(feat) {
				return &DatabaseParseError{
					Msg: fmt.Sprintf("invalid feature %q in TOKENIZATION line", feat)}
			}
			db.tokenizations[feat] = true
		}
	}
	return &DatabaseParseError{Msg: "missing ###STEMBACKOFF### section"}
}

// parseStemBackoffs reads STEMBACKOFF lines until ###PREFIXES###.
// Line grammar: STEMBACKOFF <action> <cat1> <cat2> ...
func (db *MorphologyDB) parseStemBackoffs(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "###PREFIXES###" {
			return nil
		}

		toks := strings.Split(line, " ")
		if len(toks) < 3 || toks[0] != "STEMBACKOFF" {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("invalid STEMBACKOFFS line %q", line)}
		}
		db.stemBackoffs[toks[1]] = toks[2:]
	}
	return &DatabaseParseError{Msg: "missing ###PREFIXES### section"}
}

// parseAnalysisToks parses the third field of a morpheme line: space
// separated key:value pairs, split on the first colon only (values may
// themselves contain colons).
func parseAnalysisToks(toks []string) (Analysis, error) {
	res := make(Analysis, len(toks))
	for _, tok := range toks {
		if tok == "" {
			continue
		}
		subtoks := strings.SplitN(tok, ":", 2)
		if len(subtoks) < 2 {
			return nil, &DatabaseParseError{
				Msg: fmt.Sprintf("invalid key value pair %q", tok)}
		}
		res[subtoks[0]] = subtoks[1]
	}
	return res, nil
}

func (db *MorphologyDB) addPrefix(surface, cat string, feats Analysis) {
	if db.flags.Analysis {
		db.prefixHash[surface] = append(db.prefixHash[surface],
			dbEntry{cat: cat, feats: feats})
	}
	if db.flags.Generation {
		db.prefixCatHash[cat] = append(db.prefixCatHash[cat], feats)
	}
}

func (db *MorphologyDB) addSuffix(surface, cat string, feats Analysis) {
	if db.flags.Analysis {
		db.suffixHash[surface] = append(db.suffixHash[surface],
			dbEntry{cat: cat, feats: feats})
	}
	if db.flags.Generation {
		db.suffixCatHash[cat] = append(db.suffixCatHash[cat], feats)
	}
}

// parseMorphemes reads tab-separated PREFIXES or SUFFIXES lines until
// the given sentinel. Field layout: <surface>\t<category>\t<key:value ...>.
func (db *MorphologyDB) parseMorphemes(sc *bufio.Scanner, sentinel string, add func(surface, cat string, feats Analysis)) error {
	for sc.Scan() {
		line := sc.Text()
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			if strings.TrimSpace(line) == sentinel {
				return nil
			}
			return &DatabaseParseError{
				Msg: fmt.Sprintf("invalid morpheme line %q", line)}
		}

		surface := strings.TrimSpace(parts[0])
		cat := parts[1]
		feats, err := parseAnalysisToks(
			strings.Split(strings.TrimSpace(parts[2]), " "))
		if err != nil {
			return err
		}
		add(surface, cat, feats)
	}
	return &DatabaseParseError{
		Msg: fmt.Sprintf("missing %s section", sentinel)}
}

// parseStems reads STEMS lines until ###TABLE AB###. Stems additionally
// register into lemmaHash keyed by the lemma root (the lemma string up
// to the first '_' or '-').
func (db *MorphologyDB) parseStems(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "###TABLE AB###" {
			return nil
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("invalid STEMS line %q", line)}
		}

		stem := parts[0]
		cat := parts[1]
		feats, err := parseAnalysisToks(strings.Split(parts[2], " "))
		if err != nil {
			return err
		}
		lex, ok := feats["lex"]
		if !ok {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("STEMS line %q missing lex value", line)}
		}
		feats["lex"] = stripLex(lex)

		if db.flags.Analysis {
			db.stemHash[stem] = append(db.stemHash[stem],
				dbEntry{cat: cat, feats: feats})
		}
		if db.flags.Generation {
			feats["stemcat"] = cat
			lemmaKey := feats["lex"]
			db.lemmaHash[lemmaKey] = append(db.lemmaHash[lemmaKey], feats)
		}
	}
	return &DatabaseParseError{Msg: "missing ###TABLE AB### section"}
}

func (db *MorphologyDB) addPrefixStem(prefixCat, stemCat string) {
	if db.flags.Analysis {
		addCompat(db.prefixStemCompat, prefixCat, stemCat)
	}
	if db.flags.Generation {
		addCompat(db.stemPrefixCompat, stemCat, prefixCat)
	}
}

func (db *MorphologyDB) addStemSuffix(stemCat, suffixCat string) {
	addCompat(db.stemSuffixCompat, stemCat, suffixCat)
}

func (db *MorphologyDB) addPrefixSuffix(prefixCat, suffixCat string) {
	addCompat(db.prefixSuffixCompat, prefixCat, suffixCat)
}

func addCompat(table map[string]map[string]bool, from, to string) {
	if table[from] == nil {
		table[from] = make(map[string]bool)
	}
	table[from][to] = true
}

// parseCompat reads whitespace-separated category pairs until the given
// sentinel; the final table is ended by EOF (empty sentinel).
func (db *MorphologyDB) parseCompat(sc *bufio.Scanner, sentinel string, add func(a, b string)) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if sentinel != "" && line == sentinel {
			return nil
		}

		toks := strings.Fields(line)
		if len(toks) != 2 {
			return &DatabaseParseError{
				Msg: fmt.Sprintf("invalid compatibility line %q", line)}
		}
		add(toks[0], toks[1])
	}
	if sentinel != "" {
		return &DatabaseParseError{
			Msg: fmt.Sprintf("missing %s section", sentinel)}
	}
	return nil
}
