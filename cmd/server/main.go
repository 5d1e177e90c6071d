// Command server exposes the morphology engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>
//	POST /api/analyze/words   body: {"words":["...", ...]}
//	POST /api/generate        body: {"lemma":"...","feats":{...}}
//	POST /api/reinflect       body: {"word":"...","feats":{...}}
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	camel "github.com/CAMeL-Lab/camel-tools"
)

// ---- JSON response types ------------------------------------------------

type analyzeWordResponse struct {
	Word     string           `json:"word"`
	Analyses []camel.Analysis `json:"analyses"`
}

type analyzeWordsResponse struct {
	Results []analyzeWordResponse `json:"results"`
}

type generateResponse struct {
	Lemma    string           `json:"lemma"`
	Analyses []camel.Analysis `json:"analyses"`
}

type reinflectResponse struct {
	Word     string           `json:"word"`
	Analyses []camel.Analysis `json:"analyses"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// featErrorStatus distinguishes bad requests (unknown features or
// values) from internal failures.
func featErrorStatus(err error) int {
	var genFeat *camel.InvalidGeneratorFeatureError
	var genVal *camel.InvalidGeneratorFeatureValueError
	var reFeat *camel.InvalidReinflectorFeatureError
	var reVal *camel.InvalidReinflectorFeatureValueError
	if errors.As(err, &genFeat) || errors.As(err, &genVal) ||
		errors.As(err, &reFeat) || errors.As(err, &reVal) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ---- handlers -----------------------------------------------------------

func handleAnalyzeWord(analyzer *camel.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		analyses := analyzer.Analyze(word)
		status := http.StatusOK
		if len(analyses) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, analyzeWordResponse{
			Word:     word,
			Analyses: analyses,
		})
	}
}

func handleAnalyzeWords(analyzer *camel.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Words []string `json:"words"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Words) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'words' field")
			return
		}

		results := analyzer.AnalyzeWords(body.Words)
		out := make([]analyzeWordResponse, 0, len(results))
		for _, res := range results {
			out = append(out, analyzeWordResponse{
				Word:     res.Word,
				Analyses: res.Analyses,
			})
		}
		writeJSON(w, http.StatusOK, analyzeWordsResponse{Results: out})
	}
}

func handleGenerate(generator *camel.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Lemma string         `json:"lemma"`
			Feats camel.Analysis `json:"feats"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Lemma == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'lemma' field")
			return
		}

		analyses, err := generator.Generate(body.Lemma, body.Feats)
		if err != nil {
			writeError(w, featErrorStatus(err), err.Error())
			return
		}
		status := http.StatusOK
		if len(analyses) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, generateResponse{
			Lemma:    body.Lemma,
			Analyses: analyses,
		})
	}
}

func handleReinflect(reinflector *camel.Reinflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Word  string         `json:"word"`
			Feats camel.Analysis `json:"feats"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Word == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'word' field")
			return
		}

		analyses, err := reinflector.Reinflect(body.Word, body.Feats)
		if err != nil {
			writeError(w, featErrorStatus(err), err.Error())
			return
		}
		status := http.StatusOK
		if len(analyses) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, reinflectResponse{
			Word:     body.Word,
			Analyses: analyses,
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dbPath := flag.String("db", "morphology.db", "path to morphology database file")
	addr := flag.String("addr", ":8080", "listen address")
	backoff := flag.String("backoff", camel.BackoffNone, "analyzer backoff mode (NONE, NOAN_ALL, NOAN_PROP, ADD_ALL, ADD_PROP)")
	cacheSize := flag.Int("cache", 4096, "analyzer cache size (0 disables)")
	flag.Parse()

	log.WithField("path", *dbPath).Info("loading database")
	db, err := camel.LoadDB(*dbPath, "r")
	if err != nil {
		log.WithError(err).Fatal("failed to load database")
	}

	analyzer, err := camel.NewAnalyzer(db, camel.AnalyzerConfig{
		Backoff:   *backoff,
		NormMap:   camel.DefaultNormalizeMap,
		CacheSize: *cacheSize,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create analyzer")
	}
	generator, err := camel.NewGenerator(db)
	if err != nil {
		log.WithError(err).Fatal("failed to create generator")
	}
	reinflector, err := camel.NewReinflector(db)
	if err != nil {
		log.WithError(err).Fatal("failed to create reinflector")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/words", handleAnalyzeWords(analyzer))
	mux.HandleFunc("/api/analyze", handleAnalyzeWord(analyzer))
	mux.HandleFunc("/api/generate", handleGenerate(generator))
	mux.HandleFunc("/api/reinflect", handleReinflect(reinflector))

	handler := cors.Default().Handler(mux)

	log.WithField("addr", *addr).Info("listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
