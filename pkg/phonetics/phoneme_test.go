package phonetics_test

import (
	"testing"

	"github.com/MrWong99/ghostnote/pkg/phonetics"
)

var vowelSymbols = []string{
	"AA", "AE", "AH", "AO", "AW", "AY", "EH", "ER",
	"EY", "IH", "IY", "OW", "OY", "UH", "UW",
}

var consonantSymbols = []string{
	"B", "CH", "D", "DH", "F", "G", "HH", "JH", "K", "L", "M", "N",
	"NG", "P", "R", "S", "SH", "T", "TH", "V", "W", "Y", "Z", "ZH",
}

func TestVowelConsonantClassification(t *testing.T) {
	t.Parallel()

	// The two classes must be mutually exclusive and exhaustive over the 39
	// canonical symbols, with and without stress digits on vowels.
	for _, v := range vowelSymbols {
		for _, p := range []string{v, v + "0", v + "1", v + "2"} {
			if !phonetics.IsVowel(p) {
				t.Errorf("IsVowel(%q) = false, want true", p)
			}
			if phonetics.IsConsonant(p) {
				t.Errorf("IsConsonant(%q) = true, want false", p)
			}
		}
	}
	for _, c := range consonantSymbols {
		if phonetics.IsVowel(c) {
			t.Errorf("IsVowel(%q) = true, want false", c)
		}
		if !phonetics.IsConsonant(c) {
			t.Errorf("IsConsonant(%q) = false, want true", c)
		}
		// A stress digit disqualifies a consonant outright.
		if phonetics.IsConsonant(c + "1") {
			t.Errorf("IsConsonant(%q) = true, want false", c+"1")
		}
	}
}

func TestPhonemeStress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phoneme string
		want    phonetics.Stress
		ok      bool
	}{
		{"AH0", phonetics.StressNone, true},
		{"OW1", phonetics.StressPrimary, true},
		{"AY2", phonetics.StressSecondary, true},
		{"AH", 0, false}, // digitless vowel
		{"K", 0, false},
		{"T1", 0, false}, // digit on a consonant is not a stress marker
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := phonetics.PhonemeStress(tt.phoneme)
		if ok != tt.ok || got != tt.want {
			t.Errorf("PhonemeStress(%q) = (%q, %v), want (%q, %v)",
				tt.phoneme, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePronunciation(t *testing.T) {
	t.Parallel()

	p := phonetics.ParsePronunciation("  HH   AH0 L  OW1 ")
	want := phonetics.Pronunciation{"HH", "AH0", "L", "OW1"}
	if !p.Equal(want) {
		t.Fatalf("ParsePronunciation = %v, want %v", p, want)
	}
	if got := phonetics.ParsePronunciation("   "); got != nil {
		t.Errorf("ParsePronunciation(blank) = %v, want nil", got)
	}
}

func TestPronunciationAggregates(t *testing.T) {
	t.Parallel()

	// "together" → T AH0 G EH1 DH ER0
	p := phonetics.ParsePronunciation("T AH0 G EH1 DH ER0")
	if got := p.SyllableCount(); got != 3 {
		t.Errorf("SyllableCount = %d, want 3", got)
	}
	if got := p.StressPattern(); got != "010" {
		t.Errorf("StressPattern = %q, want %q", got, "010")
	}
}

func TestRhymingPart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pron string
		want string
	}{
		{
			name: "from last primary stress",
			pron: "T AH0 G EH1 DH ER0",
			want: "EH1 DH ER0",
		},
		{
			name: "monosyllable",
			pron: "K AE1 T",
			want: "AE1 T",
		},
		{
			name: "no primary stress falls back to last vowel",
			pron: "DH AH0",
			want: "AH0",
		},
		{
			name: "no vowels",
			pron: "S T",
			want: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := phonetics.ParsePronunciation(tt.pron)
			got := p.RhymingPart()
			if tt.want == "" {
				if got != nil {
					t.Fatalf("RhymingPart(%q) = %v, want nil", tt.pron, got)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("RhymingPart(%q) = %q, want %q", tt.pron, got.String(), tt.want)
			}
		})
	}
}

func TestStripStress(t *testing.T) {
	t.Parallel()

	p := phonetics.ParsePronunciation("N AY1 T")
	q := phonetics.ParsePronunciation("N AY2 T")
	if !p.StripStress().Equal(q.StripStress()) {
		t.Error("stress-stripped pronunciations should compare equal")
	}
	// The original must not be mutated.
	if p[1] != "AY1" {
		t.Errorf("StripStress mutated receiver: %v", p)
	}
}
