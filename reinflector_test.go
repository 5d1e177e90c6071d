package camel

import (
	"errors"
	"testing"
)

func testReinflector(t *testing.T) *Reinflector {
	t.Helper()
	reinflector, err := NewReinflector(testDB(t, "r"))
	if err != nil {
		t.Fatalf("NewReinflector: %v", err)
	}
	return reinflector
}

func TestNewReinflectorErrors(t *testing.T) {
	if _, err := NewReinflector(nil); err == nil {
		t.Error("nil db: got nil error")
	}

	var rerr *ReinflectorError
	if _, err := NewReinflector(testDB(t, "a")); !errors.As(err, &rerr) {
		t.Errorf("analysis-only db: got %v, want ReinflectorError", err)
	}
	if _, err := NewReinflector(testDB(t, "g")); !errors.As(err, &rerr) {
		t.Errorf("generation-only db: got %v, want ReinflectorError", err)
	}
}

func TestReinflectPlural(t *testing.T) {
	reinflector := testReinflector(t)

	analyses, err := reinflector.Reinflect("كتاب", Analysis{"num": "p"})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	if !hasDiac(analyses, kutubDiac) {
		t.Errorf("missing plural form %q in %v", kutubDiac, diacs(analyses))
	}
	if hasDiac(analyses, kitabDiac) {
		t.Errorf("singular form survived plural reinflection: %v",
			diacs(analyses))
	}
}

func TestReinflectIdentity(t *testing.T) {
	reinflector := testReinflector(t)

	analyses, err := reinflector.Reinflect("كتاب", Analysis{})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	if !hasDiac(analyses, kitabDiac) {
		t.Errorf("identity reinflection lost the source form: %v",
			diacs(analyses))
	}
}

func TestReinflectNormalizedSpelling(t *testing.T) {
	reinflector := testReinflector(t)

	// The stem is indexed under the normalized surface (teh marbuta as
	// heh); the raw spelling must still reach it.
	analyses, err := reinflector.Reinflect("مدرسة", Analysis{})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	if !hasDiac(analyses, madrasaDiac) {
		t.Errorf("missing form %q in %v", madrasaDiac, diacs(analyses))
	}
}

func TestReinflectClitic(t *testing.T) {
	reinflector := testReinflector(t)

	analyses, err := reinflector.Reinflect("كتاب", Analysis{"enc0": "3ms_poss"})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	if !hasDiac(analyses, kitabuhDiac) {
		t.Errorf("missing possessive form %q in %v",
			kitabuhDiac, diacs(analyses))
	}
}

func TestReinflectAny(t *testing.T) {
	reinflector := testReinflector(t)

	analyses, err := reinflector.Reinflect("كتاب", Analysis{"num": "ANY"})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	for _, want := range []string{kitabDiac, kutubDiac} {
		if !hasDiac(analyses, want) {
			t.Errorf("missing form %q in %v", want, diacs(analyses))
		}
	}
}

func TestReinflectPosFilter(t *testing.T) {
	reinflector := testReinflector(t)

	analyses, err := reinflector.Reinflect("كتب", Analysis{"pos": "verb"})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	if !hasDiac(analyses, katabDiac) {
		t.Errorf("missing verb form %q in %v", katabDiac, diacs(analyses))
	}
	if hasDiac(analyses, kutubDiac) {
		t.Errorf("noun form survived pos filter: %v", diacs(analyses))
	}
}

func TestReinflectDeduplicates(t *testing.T) {
	reinflector := testReinflector(t)

	analyses, err := reinflector.Reinflect("كتب", Analysis{"num": "ANY"})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	seen := make(map[string]bool, len(analyses))
	for _, a := range analyses {
		k := a.key()
		if seen[k] {
			t.Errorf("duplicate analysis %v", a)
		}
		seen[k] = true
	}
}

func TestReinflectNoAnalyses(t *testing.T) {
	reinflector := testReinflector(t)

	analyses, err := reinflector.Reinflect("قلم", Analysis{"num": "p"})
	if err != nil {
		t.Fatalf("Reinflect: %v", err)
	}
	if len(analyses) != 0 {
		t.Errorf("out-of-vocabulary word produced %v", diacs(analyses))
	}
}

func TestReinflectInvalidFeature(t *testing.T) {
	reinflector := testReinflector(t)

	var featErr *InvalidReinflectorFeatureError
	_, err := reinflector.Reinflect("كتاب", Analysis{"foo": "bar"})
	if !errors.As(err, &featErr) {
		t.Fatalf("got %v, want InvalidReinflectorFeatureError", err)
	}

	var valErr *InvalidReinflectorFeatureValueError
	_, err = reinflector.Reinflect("كتاب", Analysis{"num": "x"})
	if !errors.As(err, &valErr) {
		t.Fatalf("got %v, want InvalidReinflectorFeatureValueError", err)
	}
}
