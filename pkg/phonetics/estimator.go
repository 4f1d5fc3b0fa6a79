package phonetics

import "strings"

// The estimator produces a plausible syllable count and stress pattern for
// words the dictionary does not know. It is purely lexical: vowel-group
// counting with corrective rules for common inflectional endings, then stress
// placement driven by ordered suffix/prefix tables with positional defaults.
// Every input, including empty and nonsense strings, yields a structurally
// valid result.

// ── Rule tables ──────────────────────────────────────────────────────────────

// stressSuffix is a stress-shifting suffix: when a word ends with Pattern,
// primary stress lands StressFromEnd syllables before the end of the word.
// Evaluated in table order; first match wins.
type stressSuffix struct {
	// Pattern is the literal word ending.
	Pattern string

	// Syllables is the number of syllables the suffix itself occupies.
	Syllables int

	// StressFromEnd is the distance of the stressed syllable from the end of
	// the word. For most suffixes this is Syllables+1 (stress immediately
	// before the suffix), but e.g. "ology" stresses its own first syllable.
	StressFromEnd int
}

// stressShiftingSuffixes throw primary stress to a fixed position relative to
// the word end. Order matters: earlier entries win ("tion" before "ion"-like
// overlaps), mirroring the most-specific-first convention.
var stressShiftingSuffixes = []stressSuffix{
	{Pattern: "tion", Syllables: 1, StressFromEnd: 2},
	{Pattern: "sion", Syllables: 1, StressFromEnd: 2},
	{Pattern: "cian", Syllables: 1, StressFromEnd: 2},
	{Pattern: "tian", Syllables: 1, StressFromEnd: 2},
	{Pattern: "ical", Syllables: 2, StressFromEnd: 3},
	{Pattern: "ic", Syllables: 1, StressFromEnd: 2},
	{Pattern: "ity", Syllables: 2, StressFromEnd: 3},
	{Pattern: "ety", Syllables: 2, StressFromEnd: 3},
	{Pattern: "ious", Syllables: 1, StressFromEnd: 2},
	{Pattern: "eous", Syllables: 1, StressFromEnd: 2},
	{Pattern: "ian", Syllables: 1, StressFromEnd: 2},
	{Pattern: "ual", Syllables: 1, StressFromEnd: 2},
	{Pattern: "ology", Syllables: 3, StressFromEnd: 3},
	{Pattern: "ography", Syllables: 3, StressFromEnd: 3},
	{Pattern: "ation", Syllables: 2, StressFromEnd: 2},
}

// affix is an unstressed prefix or suffix with its syllable span.
type affix struct {
	Pattern   string
	Syllables int
}

// unstressedPrefixes never carry primary stress themselves. The longest
// matching entry is used when computing the prefix syllable span.
var unstressedPrefixes = []affix{
	{"un", 1}, {"re", 1}, {"de", 1}, {"dis", 1}, {"mis", 1},
	{"pre", 1}, {"pro", 1}, {"in", 1}, {"im", 1}, {"il", 1},
	{"ir", 1}, {"en", 1}, {"em", 1}, {"non", 1}, {"sub", 1},
	{"super", 2}, {"anti", 2}, {"auto", 2}, {"bi", 1}, {"co", 1},
	{"ex", 1}, {"inter", 2}, {"multi", 2}, {"out", 1}, {"over", 2},
	{"post", 1}, {"semi", 2}, {"trans", 1}, {"under", 2},
}

// unstressedSuffixes never carry primary stress; stress is thrown onto the
// syllable immediately before them. The longest matching entry wins.
var unstressedSuffixes = []affix{
	{"ing", 1}, {"ed", 1}, {"es", 1}, {"s", 0}, {"ly", 1},
	{"ful", 1}, {"less", 1}, {"ness", 1}, {"ment", 1}, {"able", 2},
	{"ible", 2}, {"ous", 1}, {"ive", 1}, {"er", 1}, {"or", 1},
	{"en", 1}, {"al", 1}, {"ary", 2}, {"ery", 2}, {"ory", 2},
}

// finalStressEndings mark two-syllable words that take stress on the second
// syllable instead of the trochaic default ("balloon", "marine", "parade").
var finalStressEndings = []string{"oo", "ee", "ine", "ade", "ete", "ute", "ique"}

// ── Syllable counting ────────────────────────────────────────────────────────

func isVowelLetter(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// vowelAt reports whether position i of w acts as a vowel during the group
// scan. 'y' counts only when it is not the first character and is not
// immediately followed by another vowel, so it terminates or stands alone in
// a group but never leads one.
func vowelAt(w string, i int) bool {
	c := w[i]
	if isVowelLetter(c) {
		return true
	}
	if c != 'y' {
		return false
	}
	if i == 0 {
		return false
	}
	if i+1 < len(w) && isVowelLetter(w[i+1]) {
		return false
	}
	return true
}

// hasLetter reports whether w contains at least one ASCII letter.
func hasLetter(w string) bool {
	for i := 0; i < len(w); i++ {
		c := w[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// EstimateSyllableCount estimates the number of syllables in word using
// vowel-group counting with corrections for silent -e, -ed, and -es endings.
// It accepts any string and never fails: the empty string yields 0, and a
// word with no letters at all yields 0.
func EstimateSyllableCount(word string) int {
	w := Normalize(word)
	if w == "" {
		return 0
	}
	if len(w) == 1 {
		switch w[0] {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return 1
		}
		return 0
	}

	// Count maximal vowel groups.
	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := vowelAt(w, i)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	n := len(w)

	// Silent trailing e: "store" loses a syllable, but the syllabic "-le" of
	// "table"/"little" keeps it.
	if n > 2 && w[n-1] == 'e' && !isVowelLetter(w[n-2]) {
		syllabicLE := w[n-2] == 'l' && !isVowelLetter(w[n-3])
		if !syllabicLE {
			count--
		}
	}

	// -ed is syllabic only after t or d: "wanted" yes, "walked" no.
	if n > 2 && strings.HasSuffix(w, "ed") {
		if c := w[n-3]; c != 't' && c != 'd' && count > 1 {
			count--
		}
	}

	// -es is syllabic only after a sibilant: "boxes" yes, "makes" no.
	if n > 2 && strings.HasSuffix(w, "es") && !sibilantBeforeES(w) && count > 1 {
		count--
	}

	// Any word with at least one letter has at least one syllable.
	if count < 1 {
		if hasLetter(w) {
			return 1
		}
		return 0
	}
	return count
}

// sibilantBeforeES reports whether the -es ending of w follows s, z, x, sh,
// ch, or the soft-consonant spellings ge/ce (as in "pages", "places").
func sibilantBeforeES(w string) bool {
	n := len(w)
	switch w[n-3] {
	case 's', 'z', 'x':
		return true
	}
	if n >= 4 {
		switch w[n-4 : n-2] {
		case "sh", "ch":
			return true
		}
		// "ge"/"ce" overlap the ending's own e: pages → page, places → place.
		switch w[n-3 : n-1] {
		case "ge", "ce":
			return true
		}
	}
	return false
}

// ── Stress placement ─────────────────────────────────────────────────────────

// EstimateStressPattern estimates the stress pattern of word: one digit per
// estimated syllable, with exactly one '1' whenever the word has syllables at
// all. The estimator never produces secondary stress.
func EstimateStressPattern(word string) string {
	pattern, _, _ := estimateStress(Normalize(word), EstimateSyllableCount(word))
	return pattern
}

// EstimateWithConfidence estimates word's syllable count and stress pattern
// and reports which rule decided the placement along with a confidence score:
// 1.0 for single-syllable words, 0.9 when a stress-shifting suffix fired,
// 0.8 when an unstressed-suffix rule fired, 0.6 for the positional defaults.
func EstimateWithConfidence(word string) Estimation {
	count := EstimateSyllableCount(word)
	pattern, method, suffix := estimateStress(Normalize(word), count)

	est := Estimation{
		Word:      word,
		Syllables: count,
		Pattern:   pattern,
		Method:    method,
		Suffix:    suffix,
	}
	switch {
	case method == MethodSingleSyllable:
		est.Confidence = 1.0
	case method == MethodSuffixRule && isStressShifting(suffix):
		est.Confidence = 0.9
	case method == MethodSuffixRule:
		est.Confidence = 0.8
	default:
		est.Confidence = 0.6
	}
	return est
}

// AnalyzeUnknown produces a complete [Analysis] for a word absent from the
// dictionary, shaped identically to the dictionary path's output but with no
// phoneme data.
func AnalyzeUnknown(word string) Analysis {
	count := EstimateSyllableCount(word)
	pattern, _, _ := estimateStress(Normalize(word), count)
	return Analysis{
		Word:          word,
		Syllables:     count,
		StressPattern: pattern,
	}
}

func isStressShifting(suffix string) bool {
	for _, s := range stressShiftingSuffixes {
		if s.Pattern == suffix {
			return true
		}
	}
	return false
}

// estimateStress places primary stress for a normalized word with the given
// syllable count. Rules, in priority order: stress-shifting suffix table,
// two-syllable defaults, then the prefix-aware antepenultimate rule.
func estimateStress(w string, count int) (pattern string, method Method, suffix string) {
	switch count {
	case 0:
		return "", MethodDefaultRule, ""
	case 1:
		return "1", MethodSingleSyllable, ""
	}

	// Stress-shifting suffixes decide the position outright.
	for _, s := range stressShiftingSuffixes {
		if !strings.HasSuffix(w, s.Pattern) {
			continue
		}
		idx := count - s.StressFromEnd
		if idx < 0 {
			idx = 0
		}
		return stressAt(count, idx), MethodSuffixRule, s.Pattern
	}

	// Disyllables: a few endings take final stress; everything else is
	// trochaic, the statistically dominant pattern for English.
	if count == 2 {
		for _, ending := range finalStressEndings {
			if strings.HasSuffix(w, ending) {
				return stressAt(count, 1), MethodDefaultRule, ""
			}
		}
		return stressAt(count, 0), MethodDefaultRule, ""
	}

	// Three or more syllables: account for unstressed affixes.
	prefixSpan := 0
	if p, ok := longestAffix(w, unstressedPrefixes, strings.HasPrefix); ok {
		prefixSpan = p.Syllables
	}

	if s, ok := longestAffix(w, unstressedSuffixes, strings.HasSuffix); ok {
		idx := count - s.Syllables - 1
		if idx >= prefixSpan && idx >= 0 && idx < count {
			return stressAt(count, idx), MethodSuffixRule, s.Pattern
		}
	}

	// Antepenultimate default, nudged off a detected prefix.
	idx := count - 3
	if idx < prefixSpan {
		idx = prefixSpan
	}
	if idx >= count {
		idx = count - 2
	}
	if idx < 0 {
		idx = 0
	}
	return stressAt(count, idx), MethodDefaultRule, ""
}

// longestAffix returns the longest entry in affixes matching w under match
// (HasPrefix or HasSuffix).
func longestAffix(w string, affixes []affix, match func(s, affix string) bool) (affix, bool) {
	var best affix
	found := false
	for _, a := range affixes {
		if match(w, a.Pattern) && (!found || len(a.Pattern) > len(best.Pattern)) {
			best = a
			found = true
		}
	}
	return best, found
}

// stressAt builds a pattern of count syllables with primary stress at idx.
func stressAt(count, idx int) string {
	b := make([]byte, count)
	for i := range b {
		b[i] = byte(StressNone)
	}
	b[idx] = byte(StressPrimary)
	return string(b)
}
