package phonetics

// Fallback composition: prefer dictionary data, estimate otherwise. These are
// the entry points downstream analysis code should use, since they guarantee
// an answer regardless of dictionary coverage.

// StressWithFallback returns dictStress unchanged when ok is true, otherwise
// the estimated stress pattern for word.
func StressWithFallback(word, dictStress string, ok bool) string {
	if ok {
		return dictStress
	}
	return EstimateStressPattern(word)
}

// SyllableCountWithFallback returns dictCount unchanged when ok is true,
// otherwise the estimated syllable count for word.
func SyllableCountWithFallback(word string, dictCount int, ok bool) int {
	if ok {
		return dictCount
	}
	return EstimateSyllableCount(word)
}

// AnalyzeWithFallback returns d's analysis of word when the word is in the
// dictionary, and the estimator's analysis otherwise. The result is always
// well-formed: len(StressPattern) == Syllables for every input.
func AnalyzeWithFallback(d *Dictionary, word string) Analysis {
	if a := d.Analyze(word); a.InDictionary {
		return a
	}
	return AnalyzeUnknown(word)
}
