package phonetics_test

import (
	"strings"
	"testing"

	"github.com/MrWong99/ghostnote/pkg/phonetics"
)

func TestEstimateSyllableCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want int
	}{
		// Fixtures for the corrective rules.
		{"beautiful", 3},
		{"wanted", 2},
		{"ended", 2},
		{"walked", 1},
		{"table", 2},
		{"little", 2},
		{"boxes", 2},
		{"makes", 1},
		{"washes", 2},
		{"pages", 2},
		{"places", 2},

		// Silent e.
		{"store", 1},
		{"bake", 1},
		{"whale", 1},

		// y as a vowel.
		{"rhythm", 1},
		{"fly", 1},
		{"beyond", 2},
		{"yellow", 2},

		// Single characters.
		{"a", 1},
		{"y", 1},
		{"b", 0},

		// Adversarial input.
		{"", 0},
		{"   ", 0},
		{"!!!", 0},
		{"123", 0},
		{"nth", 1},
		{"don't", 1},

		// Case and whitespace insensitive.
		{"  BEAUTIFUL  ", 3},
	}
	for _, tt := range tests {
		if got := phonetics.EstimateSyllableCount(tt.word); got != tt.want {
			t.Errorf("EstimateSyllableCount(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestEstimateStressPattern_SuffixRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{"nation", "10"},
		{"station", "10"},
		{"mission", "10"},
		{"musician", "010"},
		{"psychology", "0100"},
	}
	for _, tt := range tests {
		if got := phonetics.EstimateStressPattern(tt.word); got != tt.want {
			t.Errorf("EstimateStressPattern(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestEstimateStressPattern_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		// Trochaic default for disyllables.
		{"window", "10"},
		{"garden", "10"},

		// Final-stress endings.
		{"shampoo", "01"},
		{"agree", "01"},
		{"marine", "01"},
		{"parade", "01"},

		// Single syllable is always stressed.
		{"cat", "1"},
		{"nth", "1"},

		// Empty input.
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := phonetics.EstimateStressPattern(tt.word); got != tt.want {
			t.Errorf("EstimateStressPattern(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

// Every input must yield a pattern whose length equals the syllable count,
// with exactly one primary stress whenever there are syllables at all, and
// no secondary stress ever.
func TestEstimatorShapeInvariants(t *testing.T) {
	t.Parallel()

	words := []string{
		"", " ", "!!!", "123", "x", "zzz", "don't", "a",
		"cat", "window", "beautiful", "information", "antidisestablishment",
		"supercalifragilistic", "qwrtpsdfg", "aeiouy", "y'all",
		"multicolored", "underwhelming", "overcompensating",
	}
	for _, w := range words {
		count := phonetics.EstimateSyllableCount(w)
		pattern := phonetics.EstimateStressPattern(w)

		if count < 0 {
			t.Errorf("EstimateSyllableCount(%q) = %d, want >= 0", w, count)
		}
		if len(pattern) != count {
			t.Errorf("EstimateStressPattern(%q) length = %d, want %d", w, len(pattern), count)
		}
		if count >= 1 && strings.Count(pattern, "1") != 1 {
			t.Errorf("EstimateStressPattern(%q) = %q, want exactly one '1'", w, pattern)
		}
		if strings.ContainsRune(pattern, '2') {
			t.Errorf("EstimateStressPattern(%q) = %q: estimator must never emit '2'", w, pattern)
		}
	}
}

func TestEstimateWithConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word       string
		method     phonetics.Method
		confidence float64
		suffix     string
	}{
		{"cat", phonetics.MethodSingleSyllable, 1.0, ""},
		{"nation", phonetics.MethodSuffixRule, 0.9, "tion"},
		{"happiness", phonetics.MethodSuffixRule, 0.8, "ness"},
		{"window", phonetics.MethodDefaultRule, 0.6, ""},
	}
	for _, tt := range tests {
		est := phonetics.EstimateWithConfidence(tt.word)
		if est.Method != tt.method {
			t.Errorf("EstimateWithConfidence(%q).Method = %q, want %q", tt.word, est.Method, tt.method)
		}
		if est.Confidence != tt.confidence {
			t.Errorf("EstimateWithConfidence(%q).Confidence = %v, want %v", tt.word, est.Confidence, tt.confidence)
		}
		if est.Suffix != tt.suffix {
			t.Errorf("EstimateWithConfidence(%q).Suffix = %q, want %q", tt.word, est.Suffix, tt.suffix)
		}
		if est.Word != tt.word {
			t.Errorf("EstimateWithConfidence(%q).Word = %q, want the original input", tt.word, est.Word)
		}
		if len(est.Pattern) != est.Syllables {
			t.Errorf("EstimateWithConfidence(%q): pattern %q does not match %d syllables",
				tt.word, est.Pattern, est.Syllables)
		}
	}
}

func TestAnalyzeUnknown(t *testing.T) {
	t.Parallel()

	a := phonetics.AnalyzeUnknown("glimmerly")
	if a.InDictionary {
		t.Error("AnalyzeUnknown: InDictionary = true, want false")
	}
	if len(a.Phonemes) != 0 {
		t.Errorf("AnalyzeUnknown: Phonemes = %v, want empty", a.Phonemes)
	}
	if a.Syllables == 0 {
		t.Error("AnalyzeUnknown(\"glimmerly\"): Syllables = 0, want > 0")
	}
	if len(a.StressPattern) != a.Syllables {
		t.Errorf("AnalyzeUnknown: pattern %q does not match %d syllables", a.StressPattern, a.Syllables)
	}
}
