// Package suggest finds rhyme candidates for a word against a loaded
// pronunciation dictionary.
//
// For words the dictionary knows, candidates are exact rhymes: every
// dictionary word whose stress-stripped rhyming part matches the query's.
//
// For out-of-vocabulary words, the query is first respelled to the
// closest-sounding dictionary word in two stages, following the usual
// phonetic-correction recipe:
//
//  1. Phonetic candidate filtering: Double Metaphone codes are computed for
//     the query and for each dictionary word; words sharing a code become
//     candidates.
//
//  2. Jaro-Winkler ranking: among phonetic candidates, the word with the
//     highest Jaro-Winkler similarity is selected, provided its score
//     exceeds the configurable phonetic threshold. When no phonetic
//     candidate qualifies, a secondary pass tests pure Jaro-Winkler
//     similarity against a higher fuzzy threshold (default 0.85).
package suggest

import (
	"context"
	"sort"

	"github.com/antzucaro/matchr"

	"github.com/MrWong99/ghostnote/pkg/phonetics"
)

const (
	defaultPhoneticThreshold = 0.70
	defaultFuzzyThreshold    = 0.85
	defaultLimit             = 10
)

// Option is a functional option for configuring a [Suggester].
type Option func(*Suggester)

// WithPhoneticThreshold sets the minimum Jaro-Winkler score required for a
// phonetically-matched respelling to be accepted. Default: 0.70.
func WithPhoneticThreshold(threshold float64) Option {
	return func(s *Suggester) {
		s.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum Jaro-Winkler score required when no
// phonetic match is found and the suggester falls back to pure string
// similarity. Default: 0.85.
func WithFuzzyThreshold(threshold float64) Option {
	return func(s *Suggester) {
		s.fuzzyThreshold = threshold
	}
}

// WithLimit caps the number of rhyme candidates returned. Default: 10.
// A limit of 0 means unlimited.
func WithLimit(limit int) Option {
	return func(s *Suggester) {
		s.limit = limit
	}
}

// Suggester finds rhymes in a [phonetics.Dictionary]. All methods are safe
// for concurrent use — the Suggester is read-only after construction.
type Suggester struct {
	dict              *phonetics.Dictionary
	phoneticThreshold float64
	fuzzyThreshold    float64
	limit             int
}

// New returns a [Suggester] over dict configured with the supplied options.
func New(dict *phonetics.Dictionary, opts ...Option) *Suggester {
	s := &Suggester{
		dict:              dict,
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
		limit:             defaultLimit,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Rhymes returns dictionary words that rhyme with word, in sorted order. When
// word is out of vocabulary it is respelled via [Suggester.Respell] first;
// respelled is the dictionary word the search was actually keyed on (equal to
// the normalized query when it was known). An empty result with a nil error
// means no respelling or no rhymes were found.
//
// The only possible error is a dictionary load failure.
func (s *Suggester) Rhymes(ctx context.Context, word string) (rhymes []string, respelled string, err error) {
	if err := s.dict.EnsureLoaded(ctx); err != nil {
		return nil, "", err
	}

	key := phonetics.Normalize(word)
	if !s.dict.HasWord(key) {
		r, _, ok := s.Respell(key)
		if !ok {
			return nil, "", nil
		}
		key = r
	}

	part, ok := s.dict.RhymingPart(key)
	if !ok {
		return nil, key, nil
	}
	want := part.StripStress()

	for _, candidate := range s.dict.Words() {
		if candidate == key {
			continue
		}
		cp, ok := s.dict.RhymingPart(candidate)
		if !ok {
			continue
		}
		if cp.StripStress().Equal(want) {
			rhymes = append(rhymes, candidate)
			if s.limit > 0 && len(rhymes) == s.limit {
				break
			}
		}
	}
	// Words() is sorted, so rhymes already is; keep the guarantee explicit.
	sort.Strings(rhymes)
	return rhymes, key, nil
}

// Respell maps an out-of-vocabulary word to the closest-sounding dictionary
// word. matched is false when no candidate clears the thresholds. Requires
// the dictionary to be loaded; call [phonetics.Dictionary.EnsureLoaded]
// first.
func (s *Suggester) Respell(word string) (corrected string, confidence float64, matched bool) {
	w := phonetics.Normalize(word)
	if w == "" {
		return "", 0, false
	}

	primary, secondary := matchr.DoubleMetaphone(w)

	type candidate struct {
		word     string
		score    float64
		phonetic bool
	}
	var best candidate

	for _, entry := range s.dict.Words() {
		ep, es := matchr.DoubleMetaphone(entry)
		phoneticMatch := codesOverlap(primary, secondary, ep, es)

		jwScore := matchr.JaroWinkler(w, entry, false)

		if phoneticMatch {
			if jwScore >= s.phoneticThreshold {
				if !best.phonetic || jwScore > best.score {
					best = candidate{word: entry, score: jwScore, phonetic: true}
				}
			}
		} else if !best.phonetic {
			if jwScore >= s.fuzzyThreshold && jwScore > best.score {
				best = candidate{word: entry, score: jwScore, phonetic: false}
			}
		}
	}

	if best.word == "" {
		return "", 0, false
	}
	return best.word, best.score, true
}

// codesOverlap reports whether the two Double Metaphone code pairs share at
// least one non-empty code.
func codesOverlap(p1, s1, p2, s2 string) bool {
	for _, a := range [2]string{p1, s1} {
		if a == "" {
			continue
		}
		if a == p2 || a == s2 {
			return true
		}
	}
	return false
}
