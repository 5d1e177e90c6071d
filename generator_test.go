package camel

import (
	"errors"
	"testing"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	generator, err := NewGenerator(testDB(t, "g"))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return generator
}

func TestNewGeneratorErrors(t *testing.T) {
	if _, err := NewGenerator(nil); err == nil {
		t.Error("nil db: got nil error")
	}
	if _, err := NewGenerator(testDB(t, "a")); err == nil {
		t.Error("analysis-only db: got nil error")
	}
}

func TestGenerateSingular(t *testing.T) {
	generator := testGenerator(t)

	analyses, err := generator.Generate(kitabDiac, Analysis{
		"pos": "noun", "num": "s",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(analyses) != 2 {
		t.Fatalf("Generate returned %d analyses, want 2: %v",
			len(analyses), diacs(analyses))
	}
	for _, want := range []string{kitabDiac, waKitabDiac} {
		if !hasDiac(analyses, want) {
			t.Errorf("missing form %q in %v", want, diacs(analyses))
		}
	}
}

func TestGenerateLemmaWithHomonymMarker(t *testing.T) {
	generator := testGenerator(t)

	analyses, err := generator.Generate(kitabDiac+"_1", Analysis{
		"pos": "noun", "num": "s",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !hasDiac(analyses, kitabDiac) {
		t.Errorf("lemma with homonym marker produced %v", diacs(analyses))
	}
}

func TestGeneratePlural(t *testing.T) {
	generator := testGenerator(t)

	analyses, err := generator.Generate(kitabDiac, Analysis{
		"pos": "noun", "num": "p",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{kutubDiac, waKutubDiac} {
		if !hasDiac(analyses, want) {
			t.Errorf("missing form %q in %v", want, diacs(analyses))
		}
	}
	if hasDiac(analyses, kitabDiac) {
		t.Errorf("singular form leaked into plural generation: %v",
			diacs(analyses))
	}
}

func TestGenerateDeterminer(t *testing.T) {
	generator := testGenerator(t)

	analyses, err := generator.Generate(kitabDiac, Analysis{
		"pos": "noun", "num": "s", "prc0": "Al_det",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(analyses) != 1 || analyses[0]["diac"] != alKitabDiac {
		t.Errorf("Generate with Al_det = %v, want [%s]",
			diacs(analyses), alKitabDiac)
	}
}

func TestGeneratePossessive(t *testing.T) {
	generator := testGenerator(t)

	analyses, err := generator.Generate(kitabDiac, Analysis{
		"pos": "noun", "num": "s", "enc0": "3ms_poss",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !hasDiac(analyses, kitabuhDiac) {
		t.Errorf("missing possessive form %q in %v",
			kitabuhDiac, diacs(analyses))
	}
}

func TestGenerateVerb(t *testing.T) {
	generator := testGenerator(t)

	analyses, err := generator.Generate(katabDiac, Analysis{"pos": "verb"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{katabDiac, waKatabDiac} {
		if !hasDiac(analyses, want) {
			t.Errorf("missing form %q in %v", want, diacs(analyses))
		}
	}
}

func TestGenerateUnknownLemma(t *testing.T) {
	generator := testGenerator(t)

	analyses, err := generator.Generate("قلم", Analysis{"pos": "noun"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(analyses) != 0 {
		t.Errorf("unknown lemma produced %v", diacs(analyses))
	}
}

func TestGenerateInvalidFeature(t *testing.T) {
	generator := testGenerator(t)

	_, err := generator.Generate(kitabDiac, Analysis{
		"pos": "noun", "foo": "bar",
	})
	var featErr *InvalidGeneratorFeatureError
	if !errors.As(err, &featErr) {
		t.Fatalf("got %v, want InvalidGeneratorFeatureError", err)
	}
	if featErr.Feat != "foo" {
		t.Errorf("error feature = %q, want foo", featErr.Feat)
	}
}

func TestGenerateInvalidFeatureValue(t *testing.T) {
	generator := testGenerator(t)

	_, err := generator.Generate(kitabDiac, Analysis{
		"pos": "noun", "num": "x",
	})
	var valErr *InvalidGeneratorFeatureValueError
	if !errors.As(err, &valErr) {
		t.Fatalf("got %v, want InvalidGeneratorFeatureValueError", err)
	}
	if valErr.Feat != "num" || valErr.Value != "x" {
		t.Errorf("error = %v, want num/x", valErr)
	}
}

func TestGenerateMissingPos(t *testing.T) {
	generator := testGenerator(t)

	_, err := generator.Generate(kitabDiac, Analysis{"num": "s"})
	var valErr *InvalidGeneratorFeatureValueError
	if !errors.As(err, &valErr) {
		t.Fatalf("got %v, want InvalidGeneratorFeatureValueError", err)
	}
	if valErr.Feat != "pos" {
		t.Errorf("error feature = %q, want pos", valErr.Feat)
	}
}
