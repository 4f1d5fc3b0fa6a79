package cmudict_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrWong99/ghostnote/pkg/phonetics"
	"github.com/MrWong99/ghostnote/pkg/phonetics/cmudict"
)

func TestParse(t *testing.T) {
	t.Parallel()

	const input = `;;; comment line
hello  HH AH0 L OW1

world  W ER1 L D
read  R IY1 D
read(2)  R EH1 D
`
	table, err := cmudict.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := table["hello"]; len(got) != 1 || got[0] != "HH AH0 L OW1" {
		t.Errorf("table[hello] = %v, want one pronunciation", got)
	}

	// Variant lines fold into the base word, primary first.
	got := table["read"]
	if len(got) != 2 {
		t.Fatalf("table[read] = %v, want 2 pronunciations", got)
	}
	if got[0] != "R IY1 D" || got[1] != "R EH1 D" {
		t.Errorf("table[read] = %v, want primary then variant", got)
	}

	if _, ok := table["read(2)"]; ok {
		t.Error("variant marker leaked into a table key")
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	t.Parallel()

	_, err := cmudict.Parse(strings.NewReader("lonelyword\n"))
	if err == nil {
		t.Fatal("Parse accepted a line without phonemes")
	}
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.dict")
	if err := os.WriteFile(path, []byte("cat  K AE1 T\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := cmudict.FileSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := table["cat"]; len(got) != 1 || got[0] != "K AE1 T" {
		t.Errorf("table[cat] = %v, want [K AE1 T]", got)
	}

	if _, err := cmudict.FileSource(filepath.Join(t.TempDir(), "missing.dict")).Load(context.Background()); err == nil {
		t.Error("Load of a missing file did not fail")
	}
}

func TestMapSource(t *testing.T) {
	t.Parallel()

	src := cmudict.MapSource{"hello": "HH AH0 L OW1"}
	table, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := table["hello"]; len(got) != 1 || got[0] != "HH AH0 L OW1" {
		t.Errorf("table[hello] = %v, want [HH AH0 L OW1]", got)
	}
}

// The embedded base lexicon must parse, and every entry must satisfy the
// pronunciation invariants: only canonical phonemes, at least one vowel, and
// a stress pattern whose length equals the vowel count.
func TestEmbeddedLexiconIntegrity(t *testing.T) {
	t.Parallel()

	d := phonetics.NewDictionary(cmudict.Embedded())
	if err := d.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("embedded lexicon is empty")
	}

	for _, word := range d.Words() {
		res := d.LookupSync(word)
		if !res.Found {
			t.Fatalf("Words() returned %q but LookupSync misses it", word)
		}
		for _, pron := range res.Pronunciations {
			vowelCount := 0
			for _, ph := range pron {
				switch {
				case phonetics.IsVowel(ph):
					vowelCount++
				case phonetics.IsConsonant(ph):
				default:
					t.Errorf("%s: %q is neither a vowel nor a consonant phoneme", word, ph)
				}
			}
			if vowelCount == 0 {
				t.Errorf("%s: pronunciation %q has no vowels", word, pron)
			}
		}

		syllables, ok := d.SyllableCount(word)
		if !ok {
			t.Fatalf("SyllableCount(%q): ok = false", word)
		}
		stress, ok := d.Stress(word)
		if !ok {
			t.Fatalf("Stress(%q): ok = false", word)
		}
		if len(stress) != syllables {
			t.Errorf("%s: stress %q does not match %d syllables", word, stress, syllables)
		}
		if syllables != res.Primary().SyllableCount() {
			t.Errorf("%s: SyllableCount disagrees with the primary pronunciation", word)
		}
	}
}

func TestEmbeddedLexiconRhymes(t *testing.T) {
	t.Parallel()

	d := phonetics.NewDictionary(cmudict.Embedded())
	if err := d.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}

	pairs := [][2]string{
		{"cat", "hat"}, {"bat", "mat"}, {"day", "say"}, {"night", "light"},
		{"moon", "june"}, {"love", "dove"},
	}
	for _, pair := range pairs {
		if !d.WordsRhyme(pair[0], pair[1]) {
			t.Errorf("WordsRhyme(%q, %q) = false, want true", pair[0], pair[1])
		}
	}
	if d.WordsRhyme("cat", "dog") {
		t.Error("WordsRhyme(cat, dog) = true, want false")
	}
}
