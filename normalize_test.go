package camel

import "testing"

func TestDediacAR(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{kitabDiac, "كتاب"},
		{alShamsDiac, "الشمس"},
		{"كتاب", "كتاب"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DediacAR(tt.in); got != tt.want {
			t.Errorf("DediacAR(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultNormalizeMap(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"كتابة", "كتابه"},
		{"أإآٱ", "اااا"},
		{"مستشفى", "مستشفي"},
		{"كـتاب", "كتاب"}, // tatweel removed
		{"كتاب", "كتاب"},
	}
	for _, tt := range tests {
		got := DefaultNormalizeMap.MapString(tt.in)
		if got != tt.want {
			t.Errorf("MapString(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := DefaultNormalizeMap.MapString(got); again != got {
			t.Errorf("MapString not idempotent on %q: %q", got, again)
		}
	}
}

func TestNormalizeUnicode(t *testing.T) {
	// presentation-form kaf folds to plain kaf under NFKC only
	if got := NormalizeUnicode("ﻛ", true); got != "ك" {
		t.Errorf("NFKC(\\ufedb) = %q, want \\u0643", got)
	}
	if got := NormalizeUnicode("ﻛ", false); got != "ﻛ" {
		t.Errorf("NFC(\\ufedb) = %q, want unchanged", got)
	}
}

func TestNormalizeAlefAR(t *testing.T) {
	if got := NormalizeAlefAR("أحمد وآدم وإبراهيم"); got != "احمد وادم وابراهيم" {
		t.Errorf("NormalizeAlefAR = %q", got)
	}
}

func TestNormalizeAlefMaksuraAR(t *testing.T) {
	if got := NormalizeAlefMaksuraAR("مستشفى"); got != "مستشفي" {
		t.Errorf("NormalizeAlefMaksuraAR = %q", got)
	}
}

func TestNormalizeTehMarbutaAR(t *testing.T) {
	if got := NormalizeTehMarbutaAR("كتابة"); got != "كتابه" {
		t.Errorf("NormalizeTehMarbutaAR = %q", got)
	}
}

func TestNormalizeTanwynAR(t *testing.T) {
	fa := "كتابًا" // fathatan before alef
	af := "كتاباً" // alef before fathatan

	if got := NormalizeTanwynAR(fa, "AF"); got != af {
		t.Errorf("NormalizeTanwynAR(AF) = %q, want %q", got, af)
	}
	if got := NormalizeTanwynAR(af, "FA"); got != fa {
		t.Errorf("NormalizeTanwynAR(FA) = %q, want %q", got, fa)
	}
	// already canonical input is untouched
	if got := NormalizeTanwynAR(af, "AF"); got != af {
		t.Errorf("NormalizeTanwynAR(AF) changed canonical input: %q", got)
	}
}

func TestCharsetClassification(t *testing.T) {
	tests := []struct {
		word                              string
		ar, punc, hasP, strictDigit, loose bool
	}{
		{"كتاب", true, false, false, false, false},
		{kitabDiac, true, false, false, false, false},
		{"hello", false, false, false, false, false},
		{"!؟", false, true, true, false, false},
		{"كتاب!", false, false, true, false, false},
		{"123", false, false, false, true, true},
		{"١٢٣", false, false, false, true, true},
		{"xyz123", false, false, false, false, true},
		{"", false, false, false, false, false},
	}
	for _, tt := range tests {
		if got := isAr(tt.word); got != tt.ar {
			t.Errorf("isAr(%q) = %v, want %v", tt.word, got, tt.ar)
		}
		if got := isPunc(tt.word); got != tt.punc {
			t.Errorf("isPunc(%q) = %v, want %v", tt.word, got, tt.punc)
		}
		if got := hasPunc(tt.word); got != tt.hasP {
			t.Errorf("hasPunc(%q) = %v, want %v", tt.word, got, tt.hasP)
		}
		if got := isDigit(tt.word); got != tt.loose {
			t.Errorf("isDigit(%q) = %v, want %v", tt.word, got, tt.loose)
		}
		if got := isStrictDigit(tt.word); got != tt.strictDigit {
			t.Errorf("isStrictDigit(%q) = %v, want %v", tt.word, got, tt.strictDigit)
		}
	}
}

func TestSimpleArToCaphi(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"قلم", "q_l_m"},
		{"اسم", "2_s_m"}, // initial bare alef read as glottal stop
		{"شمس", "sh_m_s"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := simpleArToCaphi(tt.in); got != tt.want {
			t.Errorf("simpleArToCaphi(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
