// Command morphology runs the analyzer, generator or reinflector over
// words read from a file or standard input.
//
// For the analyze task, each input line holds one word. For generate,
// each line holds a lemma followed by feat:value pairs; for reinflect,
// a word followed by feat:value pairs. Analyses are printed as
// feat:value pairs in the database's canonical feature order, one
// analysis per line, grouped under a ;;WORD header per input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	camel "github.com/CAMeL-Lab/camel-tools"
)

type options struct {
	DBPath      string `short:"d" long:"db" description:"path to morphology database file" required:"true"`
	Task        string `short:"t" long:"task" description:"task to run" choice:"analyze" choice:"generate" choice:"reinflect" default:"analyze"`
	Backoff     string `short:"b" long:"backoff" description:"analyzer backoff mode" choice:"NONE" choice:"NOAN_ALL" choice:"NOAN_PROP" choice:"ADD_ALL" choice:"ADD_PROP" default:"NONE"`
	Cache       int    `long:"cache" description:"analyzer cache size, 0 disables" default:"1024"`
	StrictDigit bool   `long:"strict-digit" description:"classify only all-digit tokens as numbers"`
	NoNormalize bool   `long:"no-normalize" description:"disable character normalization"`
	NFKC        bool   `long:"nfkc" description:"apply unicode compatibility normalization to input"`
	Output      string `short:"o" long:"output" description:"output file (default stdout)"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"input file (default stdin)"`
	} `positional-args:"yes"`
}

// printAnalyses writes analyses one per line as feat:value pairs in the
// database's canonical order, followed by any remaining features in no
// particular order.
func printAnalyses(w io.Writer, order []string, analyses []camel.Analysis) {
	ordered := make(map[string]bool, len(order))
	for _, feat := range order {
		ordered[feat] = true
	}

	for _, analysis := range analyses {
		parts := make([]string, 0, len(analysis))
		for _, feat := range order {
			if val, ok := analysis[feat]; ok {
				parts = append(parts, feat+":"+val)
			}
		}
		for feat, val := range analysis {
			if !ordered[feat] {
				parts = append(parts, feat+":"+val)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
}

// splitInput separates an input line into its head token and trailing
// feat:value constraints.
func splitInput(line string) (string, camel.Analysis, error) {
	toks := strings.Fields(line)
	head := toks[0]
	feats := make(camel.Analysis, len(toks)-1)
	for _, tok := range toks[1:] {
		subtoks := strings.SplitN(tok, ":", 2)
		if len(subtoks) != 2 {
			return "", nil, fmt.Errorf("invalid feature pair %q", tok)
		}
		feats[subtoks[0]] = subtoks[1]
	}
	return head, feats, nil
}

func run(opts *options) error {
	dbFlags := "a"
	switch opts.Task {
	case "generate":
		dbFlags = "g"
	case "reinflect":
		dbFlags = "r"
	}

	log.WithField("path", opts.DBPath).Info("loading database")
	db, err := camel.LoadDB(opts.DBPath, dbFlags)
	if err != nil {
		return err
	}

	in := os.Stdin
	if opts.Args.File != "" {
		f, err := os.Open(opts.Args.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	var analyzer *camel.Analyzer
	var generator *camel.Generator
	var reinflector *camel.Reinflector

	switch opts.Task {
	case "analyze":
		normMap := camel.DefaultNormalizeMap
		if opts.NoNormalize {
			normMap = nil
		}
		analyzer, err = camel.NewAnalyzer(db, camel.AnalyzerConfig{
			Backoff:     opts.Backoff,
			NormMap:     normMap,
			StrictDigit: opts.StrictDigit,
			CacheSize:   opts.Cache,
		})
	case "generate":
		generator, err = camel.NewGenerator(db)
	case "reinflect":
		reinflector, err = camel.NewReinflector(db)
	}
	if err != nil {
		return err
	}

	order := db.Order()
	w := bufio.NewWriter(out)
	defer w.Flush()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if opts.NFKC {
			line = camel.NormalizeUnicode(line, true)
		}

		head, feats, err := splitInput(line)
		if err != nil {
			return err
		}

		var analyses []camel.Analysis
		switch opts.Task {
		case "analyze":
			analyses = analyzer.Analyze(head)
		case "generate":
			analyses, err = generator.Generate(head, feats)
		case "reinflect":
			analyses, err = reinflector.Reinflect(head, feats)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(w, ";;WORD %s\n", head)
		printAnalyses(w, order, analyses)
		fmt.Fprintln(w)
	}
	return sc.Err()
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	if err := run(&opts); err != nil {
		log.WithError(err).Fatal("morphology task failed")
	}
}
