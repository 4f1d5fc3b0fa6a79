package phonetics

import "strings"

// Stress is the stress level carried by a vowel phoneme, encoded as the
// ARPAbet stress digit character.
type Stress byte

const (
	// StressNone marks an unstressed syllable.
	StressNone Stress = '0'

	// StressPrimary marks the syllable carrying primary stress.
	StressPrimary Stress = '1'

	// StressSecondary marks a syllable carrying secondary stress.
	StressSecondary Stress = '2'
)

// IsValid reports whether s is one of the three ARPAbet stress digits.
func (s Stress) IsValid() bool {
	return s == StressNone || s == StressPrimary || s == StressSecondary
}

// vowels is the set of 15 canonical ARPAbet vowel symbols. A vowel phoneme in
// a pronunciation denotes exactly one syllable and may carry a trailing
// stress digit.
var vowels = map[string]struct{}{
	"AA": {}, "AE": {}, "AH": {}, "AO": {}, "AW": {},
	"AY": {}, "EH": {}, "ER": {}, "EY": {}, "IH": {},
	"IY": {}, "OW": {}, "OY": {}, "UH": {}, "UW": {},
}

// consonants is the set of 24 canonical ARPAbet consonant symbols. Consonants
// never carry a stress digit.
var consonants = map[string]struct{}{
	"B": {}, "CH": {}, "D": {}, "DH": {}, "F": {}, "G": {},
	"HH": {}, "JH": {}, "K": {}, "L": {}, "M": {}, "N": {},
	"NG": {}, "P": {}, "R": {}, "S": {}, "SH": {}, "T": {},
	"TH": {}, "V": {}, "W": {}, "Y": {}, "Z": {}, "ZH": {},
}

// BaseSymbol returns phoneme with a single trailing stress digit removed, if
// one is present. Non-vowel phonemes are returned unchanged.
func BaseSymbol(phoneme string) string {
	if n := len(phoneme); n > 0 {
		if c := phoneme[n-1]; c >= '0' && c <= '2' {
			return phoneme[:n-1]
		}
	}
	return phoneme
}

// IsVowel reports whether phoneme is one of the 15 ARPAbet vowel symbols,
// with or without a trailing stress digit.
func IsVowel(phoneme string) bool {
	_, ok := vowels[BaseSymbol(phoneme)]
	return ok
}

// IsConsonant reports whether phoneme is one of the 24 ARPAbet consonant
// symbols. Consonants are matched exactly; a trailing digit disqualifies.
func IsConsonant(phoneme string) bool {
	_, ok := consonants[phoneme]
	return ok
}

// PhonemeStress returns the stress level encoded in a vowel phoneme's
// trailing digit. ok is false for consonants and for vowel symbols written
// without a stress digit.
func PhonemeStress(phoneme string) (Stress, bool) {
	n := len(phoneme)
	if n < 2 {
		return 0, false
	}
	c := phoneme[n-1]
	if c < '0' || c > '2' {
		return 0, false
	}
	if _, ok := vowels[phoneme[:n-1]]; !ok {
		return 0, false
	}
	return Stress(c), true
}

// Pronunciation is an ordered sequence of ARPAbet phoneme tokens describing
// one way to pronounce a word. The number of vowel phonemes equals the
// syllable count.
type Pronunciation []string

// ParsePronunciation splits a space-delimited ARPAbet string (e.g.
// "HH AH0 L OW1") into a [Pronunciation]. Empty tokens are discarded, so any
// run of whitespace is tolerated. An empty or all-whitespace input yields nil.
func ParsePronunciation(s string) Pronunciation {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return Pronunciation(fields)
}

// SyllableCount returns the number of vowel phonemes in p.
func (p Pronunciation) SyllableCount() int {
	n := 0
	for _, ph := range p {
		if IsVowel(ph) {
			n++
		}
	}
	return n
}

// StressPattern returns the concatenated stress digits of p's vowel phonemes,
// in order. Vowels written without a digit contribute '0'.
func (p Pronunciation) StressPattern() string {
	var b strings.Builder
	for _, ph := range p {
		if !IsVowel(ph) {
			continue
		}
		if s, ok := PhonemeStress(ph); ok {
			b.WriteByte(byte(s))
		} else {
			b.WriteByte(byte(StressNone))
		}
	}
	return b.String()
}

// RhymingPart returns the tail of p that determines rhyme: from the last
// phoneme carrying primary stress to the end. When no phoneme has primary
// stress, the tail starts at the last vowel of any stress level. Returns nil
// when p contains no vowels.
func (p Pronunciation) RhymingPart() Pronunciation {
	start := -1
	for i, ph := range p {
		if s, ok := PhonemeStress(ph); ok && s == StressPrimary {
			start = i
		}
	}
	if start < 0 {
		for i, ph := range p {
			if IsVowel(ph) {
				start = i
			}
		}
	}
	if start < 0 {
		return nil
	}
	return p[start:]
}

// StripStress returns a copy of p with stress digits removed from every
// phoneme. Used for rhyme comparison, where stress level is ignored.
func (p Pronunciation) StripStress() Pronunciation {
	if p == nil {
		return nil
	}
	out := make(Pronunciation, len(p))
	for i, ph := range p {
		out[i] = BaseSymbol(ph)
	}
	return out
}

// Equal reports whether p and q contain the same phoneme tokens in the same
// order.
func (p Pronunciation) Equal(q Pronunciation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String renders p back to the space-delimited ARPAbet form.
func (p Pronunciation) String() string {
	return strings.Join(p, " ")
}
