// Package analysis builds prosody reports for whole poems: per-word phonetic
// analyses, per-line syllable totals and stress strings, and an end-rhyme
// scheme.
//
// Dictionary-backed data is used wherever the word is known; everything else
// goes through the stress estimator, so a report is always produced no matter
// how exotic the text is. Lines are analyzed concurrently; rhyme-scheme
// assignment runs afterwards since it compares lines pairwise.
package analysis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/ghostnote/internal/observe"
	"github.com/MrWong99/ghostnote/pkg/phonetics"
)

// Line is the prosody report for a single non-blank line of the poem.
type Line struct {
	// Number is the 1-based line number in the original text, counting
	// blank lines.
	Number int

	// Text is the original line.
	Text string

	// Words holds one analysis per token, in order.
	Words []phonetics.Analysis

	// Syllables is the sum of the word syllable counts.
	Syllables int

	// Stress is the concatenation of the word stress patterns, one digit per
	// syllable across the whole line.
	Stress string

	// RhymeLetter labels this line's end-rhyme group ("A", "B", ...).
	// Empty for lines with no words.
	RhymeLetter string
}

// Poem is the aggregate prosody report.
type Poem struct {
	// Lines holds the per-line reports for every non-blank line.
	Lines []Line

	// TotalSyllables sums the line syllable counts.
	TotalSyllables int

	// RhymeScheme is the concatenation of the line rhyme letters.
	RhymeScheme string

	// Coverage is the fraction of words found in the dictionary, in [0, 1].
	// Zero when the poem has no words.
	Coverage float64
}

// Option is a functional option for [New].
type Option func(*Analyzer)

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(a *Analyzer) {
		a.log = log
	}
}

// WithMetrics sets the metrics instance. Defaults to [observe.DefaultMetrics].
func WithMetrics(m *observe.Metrics) Option {
	return func(a *Analyzer) {
		a.metrics = m
	}
}

// Analyzer produces [Poem] reports over a pronunciation dictionary.
// Safe for concurrent use.
type Analyzer struct {
	dict    *phonetics.Dictionary
	log     *slog.Logger
	metrics *observe.Metrics
}

// New returns an [Analyzer] over dict configured with the supplied options.
func New(dict *phonetics.Dictionary, opts ...Option) *Analyzer {
	a := &Analyzer{dict: dict}
	for _, o := range opts {
		o(a)
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	if a.metrics == nil {
		a.metrics = observe.DefaultMetrics()
	}
	return a
}

// AnalyzePoem analyzes every non-blank line of text. The only possible error
// is a dictionary load failure or ctx cancellation; unknown words degrade to
// estimated values instead of failing.
func (a *Analyzer) AnalyzePoem(ctx context.Context, text string) (*Poem, error) {
	loadedBefore := a.dict.Loaded()
	loadStart := time.Now()
	if err := a.dict.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	if !loadedBefore {
		a.metrics.RecordDictLoad(ctx, time.Since(loadStart).Seconds(), a.dict.Len())
	}

	// Collect non-blank lines with their original line numbers.
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: raw})
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range lines {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a.analyzeLine(gctx, &lines[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	poem := &Poem{Lines: lines}
	a.assignRhymeScheme(poem)

	inDict, total := 0, 0
	for _, line := range poem.Lines {
		poem.TotalSyllables += line.Syllables
		for _, w := range line.Words {
			total++
			if w.InDictionary {
				inDict++
			}
		}
	}
	if total > 0 {
		poem.Coverage = float64(inDict) / float64(total)
	}

	a.metrics.PoemAnalyses.Add(ctx, 1)
	a.log.Debug("poem analyzed",
		"lines", len(poem.Lines),
		"syllables", poem.TotalSyllables,
		"coverage", poem.Coverage,
	)
	return poem, nil
}

// AnalyzeWord analyzes a single word via the dictionary-first fallback path,
// recording lookup and estimation metrics. The dictionary's sync path is
// used, so call this after the table is loaded for definitive results.
func (a *Analyzer) AnalyzeWord(ctx context.Context, word string) phonetics.Analysis {
	if da := a.dict.Analyze(word); da.InDictionary {
		a.metrics.RecordLookup(ctx, true)
		return da
	}
	a.metrics.RecordLookup(ctx, false)

	est := phonetics.EstimateWithConfidence(word)
	a.metrics.RecordEstimation(ctx, string(est.Method))
	return phonetics.Analysis{
		Word:          word,
		Syllables:     est.Syllables,
		StressPattern: est.Pattern,
	}
}

// analyzeLine fills in the word analyses and per-line aggregates of line.
func (a *Analyzer) analyzeLine(ctx context.Context, line *Line) {
	tokens := Tokenize(line.Text)
	line.Words = make([]phonetics.Analysis, 0, len(tokens))

	var stress strings.Builder
	for _, tok := range tokens {
		w := a.AnalyzeWord(ctx, tok)
		line.Words = append(line.Words, w)
		line.Syllables += w.Syllables
		stress.WriteString(w.StressPattern)
	}
	line.Stress = stress.String()
}

// assignRhymeScheme labels each line's end-rhyme group. Two lines share a
// letter iff their final words rhyme per dictionary data; lines ending in an
// unknown word always open a fresh group, since unknown words never rhyme.
func (a *Analyzer) assignRhymeScheme(poem *Poem) {
	next := 0
	var scheme strings.Builder

	for i := range poem.Lines {
		line := &poem.Lines[i]
		if len(line.Words) == 0 {
			continue
		}
		last := line.Words[len(line.Words)-1].Word

		letter := ""
		for j := 0; j < i; j++ {
			prev := poem.Lines[j]
			if len(prev.Words) == 0 {
				continue
			}
			prevLast := prev.Words[len(prev.Words)-1].Word
			if a.dict.WordsRhyme(last, prevLast) {
				letter = prev.RhymeLetter
				break
			}
		}
		if letter == "" {
			letter = string(rune('A' + next%26))
			next++
		}
		line.RhymeLetter = letter
		scheme.WriteString(letter)
	}
	poem.RhymeScheme = scheme.String()
}

// Tokenize splits a line into word tokens: whitespace-separated runs with
// surrounding punctuation stripped. Inner apostrophes and hyphens survive
// ("don't", "well-worn"); tokens that are pure punctuation are dropped.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return !isWordRune(r)
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return false
}
