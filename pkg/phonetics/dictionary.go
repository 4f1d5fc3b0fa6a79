// Package phonetics provides dictionary-backed phonetic analysis of English
// words: syllable counts, stress patterns, and rhyme testing over ARPAbet
// pronunciations, with a rule-based estimator as fallback for words the
// dictionary does not know.
//
// The package has three layers:
//
//  1. [Dictionary] wraps a word → pronunciation table behind a normalized,
//     cached lookup API. The table is loaded lazily: the synchronous methods
//     are best-effort and report "not found" until the load completes, while
//     [Dictionary.Lookup] and [Dictionary.EnsureLoaded] await the load and
//     give definitive answers.
//
//  2. The Estimate* functions compute a plausible syllable count and stress
//     pattern for any string at all — vowel-group counting plus ordered
//     suffix/prefix rule tables. They never fail, so callers always get a
//     structurally valid result even for nonsense input.
//
//  3. [StressWithFallback] and [SyllableCountWithFallback] compose the two:
//     dictionary data when present, estimation otherwise.
//
// All lookup and estimation operations are pure and safe for concurrent use;
// the loaded table is immutable and is only ever fully absent or fully
// present.
package phonetics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Source supplies the raw pronunciation table: a mapping from word to one or
// more space-delimited ARPAbet pronunciation strings. Implementations may
// have the data already resident or may fetch it on demand; [Dictionary]
// calls Load at most once per successful load.
type Source interface {
	Load(ctx context.Context) (map[string][]string, error)
}

// table is the parsed, immutable dictionary keyed by normalized word.
type table map[string][]Pronunciation

// loadKey is the singleflight key shared by every load attempt.
const loadKey = "load"

// Dictionary is a lazily-loaded, cached pronunciation lookup service.
//
// All methods are safe for concurrent use. The synchronous query methods
// never block on the load: before the table is resident they simply report
// "not found". Code that needs a guaranteed answer should use
// [Dictionary.Lookup] or call [Dictionary.EnsureLoaded] first.
type Dictionary struct {
	src Source
	log *slog.Logger

	group singleflight.Group
	table atomic.Pointer[table]
}

// DictionaryOption is a functional option for [NewDictionary].
type DictionaryOption func(*Dictionary)

// WithLogger sets the logger used for load reporting. Defaults to
// [slog.Default].
func WithLogger(log *slog.Logger) DictionaryOption {
	return func(d *Dictionary) {
		d.log = log
	}
}

// NewDictionary returns a [Dictionary] backed by src. The table is not loaded
// yet; call [Dictionary.Preload] to warm it in the background or
// [Dictionary.EnsureLoaded] to wait for it.
func NewDictionary(src Source, opts ...DictionaryOption) *Dictionary {
	d := &Dictionary{src: src}
	for _, o := range opts {
		o(d)
	}
	if d.log == nil {
		d.log = slog.Default()
	}
	return d
}

// Normalize returns the canonical lookup key for word: lower-cased and
// trimmed of surrounding whitespace. Case and whitespace never affect
// lookup results.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// ── Loading ──────────────────────────────────────────────────────────────────

// Loaded reports whether the pronunciation table is resident.
func (d *Dictionary) Loaded() bool {
	return d.table.Load() != nil
}

// EnsureLoaded blocks until the pronunciation table is resident, triggering
// the load if necessary. Concurrent callers share a single in-flight load.
//
// A load failure is returned to every caller awaiting that attempt and clears
// the in-flight guard, so a later call retries. Cancelling ctx stops the wait
// for the calling goroutine only; the shared load itself is not interruptible.
func (d *Dictionary) EnsureLoaded(ctx context.Context) error {
	if d.Loaded() {
		return nil
	}
	ch := d.group.DoChan(loadKey, d.loadTable)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

// Preload triggers the background load without making the caller wait.
// Errors are logged and swallowed; a subsequent [Dictionary.EnsureLoaded]
// will retry.
func (d *Dictionary) Preload() {
	if d.Loaded() {
		return
	}
	go func() {
		if err := d.EnsureLoaded(context.Background()); err != nil {
			d.log.Warn("dictionary preload failed", "err", err)
		}
	}()
}

// loadTable fetches, parses, and publishes the table. Runs inside the
// singleflight group, so at most one invocation is in flight at a time.
func (d *Dictionary) loadTable() (any, error) {
	if t := d.table.Load(); t != nil {
		return t, nil
	}

	start := time.Now()
	raw, err := d.src.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("phonetics: load dictionary: %w", err)
	}

	t := make(table, len(raw))
	for word, prons := range raw {
		key := Normalize(word)
		if key == "" {
			continue
		}
		for _, s := range prons {
			if p := ParsePronunciation(s); p != nil {
				t[key] = append(t[key], p)
			}
		}
	}

	// Publish. The table pointer only ever transitions absent → present.
	d.table.Store(&t)

	d.log.Info("pronunciation dictionary loaded",
		"words", len(t),
		"duration", time.Since(start),
	)
	return &t, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

// lookup is the shared resolution path for all query methods.
func (d *Dictionary) lookup(word string) ([]Pronunciation, bool) {
	t := d.table.Load()
	if t == nil {
		return nil, false
	}
	prons, ok := (*t)[Normalize(word)]
	return prons, ok
}

// LookupSync answers from the cached table without blocking. While the table
// is not yet resident every word reports Found=false; once resident,
// Found=false means the word is genuinely absent.
func (d *Dictionary) LookupSync(word string) LookupResult {
	prons, ok := d.lookup(word)
	return LookupResult{
		Word:           Normalize(word),
		Pronunciations: prons,
		Found:          ok,
	}
}

// Lookup awaits the table load and returns a definitive answer: Found=false
// means the word is not in the dictionary. The only possible error is a load
// failure (or ctx cancellation while waiting).
func (d *Dictionary) Lookup(ctx context.Context, word string) (LookupResult, error) {
	if err := d.EnsureLoaded(ctx); err != nil {
		return LookupResult{Word: Normalize(word)}, err
	}
	return d.LookupSync(word), nil
}

// HasWord reports whether the normalized word is a key in the loaded table.
// Always false before the table is resident.
func (d *Dictionary) HasWord(word string) bool {
	_, ok := d.lookup(word)
	return ok
}

// Stress returns the stress pattern of word's primary pronunciation: one
// stress digit per syllable, in order. ok is false when the word is unknown.
func (d *Dictionary) Stress(word string) (string, bool) {
	prons, ok := d.lookup(word)
	if !ok || len(prons) == 0 {
		return "", false
	}
	return prons[0].StressPattern(), true
}

// SyllableCount returns the number of syllables (vowel phonemes) in word's
// primary pronunciation. ok is false when the word is unknown.
func (d *Dictionary) SyllableCount(word string) (int, bool) {
	prons, ok := d.lookup(word)
	if !ok || len(prons) == 0 {
		return 0, false
	}
	return prons[0].SyllableCount(), true
}

// Analyze returns the full phonetic analysis of word from dictionary data.
// When the word is unknown (or the table is not yet resident) it returns a
// well-formed zero analysis with InDictionary=false rather than failing;
// callers wanting estimated values for unknown words should use
// [AnalyzeWithFallback].
func (d *Dictionary) Analyze(word string) Analysis {
	prons, ok := d.lookup(word)
	if !ok || len(prons) == 0 {
		return Analysis{Word: word}
	}
	primary := prons[0]
	return Analysis{
		Word:          word,
		Phonemes:      primary,
		Syllables:     primary.SyllableCount(),
		StressPattern: primary.StressPattern(),
		InDictionary:  true,
		Alternatives:  prons[1:],
	}
}

// RhymingPart returns the rhyme-determining tail of word's primary
// pronunciation; see [Pronunciation.RhymingPart]. ok is false when the word
// is unknown or its pronunciation has no vowels.
func (d *Dictionary) RhymingPart(word string) (Pronunciation, bool) {
	prons, ok := d.lookup(word)
	if !ok || len(prons) == 0 {
		return nil, false
	}
	part := prons[0].RhymingPart()
	if part == nil {
		return nil, false
	}
	return part, true
}

// WordsRhyme reports whether two words rhyme: both must be known and their
// rhyming parts must be equal after stripping stress digits (stress level is
// ignored; only phoneme identity matters). Unknown words never rhyme with
// anything, including themselves.
func (d *Dictionary) WordsRhyme(wordA, wordB string) bool {
	partA, okA := d.RhymingPart(wordA)
	if !okA {
		return false
	}
	partB, okB := d.RhymingPart(wordB)
	if !okB {
		return false
	}
	return partA.StripStress().Equal(partB.StripStress())
}

// Len returns the number of words in the loaded table, or 0 before the table
// is resident.
func (d *Dictionary) Len() int {
	t := d.table.Load()
	if t == nil {
		return 0
	}
	return len(*t)
}

// Words returns all dictionary words in sorted order, or nil before the table
// is resident. The slice is freshly allocated on every call.
func (d *Dictionary) Words() []string {
	t := d.table.Load()
	if t == nil {
		return nil
	}
	words := make([]string, 0, len(*t))
	for w := range *t {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
