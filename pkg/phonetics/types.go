package phonetics

// LookupResult is the outcome of a dictionary query for a single word.
type LookupResult struct {
	// Word is the normalized form the lookup was keyed on.
	Word string

	// Pronunciations lists every known pronunciation of the word, primary
	// first. Empty when the word is not in the dictionary.
	Pronunciations []Pronunciation

	// Found is true iff Pronunciations is non-empty.
	Found bool
}

// Primary returns the primary (first) pronunciation, or nil when the word was
// not found.
func (r LookupResult) Primary() Pronunciation {
	if len(r.Pronunciations) == 0 {
		return nil
	}
	return r.Pronunciations[0]
}

// Analysis is the unified phonetic descriptor for a single word, produced by
// both the dictionary path and the estimator path.
//
// Invariant: len(StressPattern) == Syllables. When InDictionary is false,
// Phonemes is empty and Syllables/StressPattern come from estimation.
type Analysis struct {
	// Word is the original word string as supplied by the caller.
	Word string

	// Phonemes is the phoneme sequence of the primary pronunciation, empty
	// when the word is unknown.
	Phonemes Pronunciation

	// Syllables is the syllable count, always >= 0.
	Syllables int

	// StressPattern holds one stress digit per syllable, in order.
	StressPattern string

	// InDictionary reports whether the analysis came from dictionary data.
	InDictionary bool

	// Alternatives lists pronunciations beyond the primary one, when the
	// data source provides them. Usually empty.
	Alternatives []Pronunciation
}

// Method identifies which estimator rule produced a stress estimation.
type Method string

const (
	// MethodSingleSyllable covers one-syllable words, which are always
	// stressed.
	MethodSingleSyllable Method = "single_syllable"

	// MethodSuffixRule covers words whose stress placement was decided by a
	// suffix table (stress-shifting or unstressed).
	MethodSuffixRule Method = "suffix_rule"

	// MethodDefaultRule covers words that fell through to the positional
	// defaults (trochaic or antepenultimate).
	MethodDefaultRule Method = "default_rule"
)

// Estimation is the stress estimator's output for one word.
type Estimation struct {
	// Word is the original input string.
	Word string

	// Syllables is the estimated syllable count, always >= 0.
	Syllables int

	// Pattern is the estimated stress pattern, one digit per syllable.
	Pattern string

	// Confidence is the estimator's self-assessed reliability in [0, 1].
	Confidence float64

	// Method records which rule family decided the stress placement.
	Method Method

	// Suffix is the matched suffix when Method is [MethodSuffixRule],
	// otherwise empty.
	Suffix string
}
