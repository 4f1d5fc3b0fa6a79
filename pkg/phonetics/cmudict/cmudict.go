// Package cmudict supplies pronunciation tables in the CMU Pronouncing
// Dictionary plain-text format to a [phonetics.Dictionary].
//
// The format is line-oriented: ";;;" starts a comment, every other non-blank
// line is a word followed by its space-delimited ARPAbet phonemes. Variant
// lines ("WORD(2)  ...") are folded into the same word's pronunciation list,
// primary form first.
//
// Three sources are provided: [Embedded] (a base lexicon of common English
// words compiled into the binary, so the engine works with zero
// configuration), [FileSource] (a full CMUdict file on disk), and [MapSource]
// (an already-resident table, mainly for tests).
package cmudict

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/base.dict
var baseDict string

// MapSource is an in-memory word → pronunciation table. It satisfies
// [phonetics.Source] with the data already resident.
type MapSource map[string]string

// Load returns the table unchanged, one pronunciation per word.
func (m MapSource) Load(_ context.Context) (map[string][]string, error) {
	out := make(map[string][]string, len(m))
	for word, pron := range m {
		out[word] = []string{pron}
	}
	return out, nil
}

// FileSource loads a CMU-format dictionary file from disk.
type FileSource string

// Load opens and parses the file.
func (f FileSource) Load(_ context.Context) (map[string][]string, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, fmt.Errorf("cmudict: open %q: %w", string(f), err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("cmudict: parse %q: %w", string(f), err)
	}
	return table, nil
}

// embeddedSource serves the compiled-in base lexicon.
type embeddedSource struct{}

func (embeddedSource) Load(_ context.Context) (map[string][]string, error) {
	table, err := Parse(strings.NewReader(baseDict))
	if err != nil {
		return nil, fmt.Errorf("cmudict: parse embedded lexicon: %w", err)
	}
	return table, nil
}

// Embedded returns a source serving the base lexicon shipped with the binary.
func Embedded() embeddedSource {
	return embeddedSource{}
}

// Parse reads a CMU-format dictionary from r. Variant entries ("WORD(2)")
// are appended to the base word's pronunciation list in file order.
func Parse(r io.Reader) (map[string][]string, error) {
	table := make(map[string][]string)
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and phonemes, got %q", lineNum, line)
		}

		word := stripVariant(fields[0])
		if word == "" {
			return nil, fmt.Errorf("line %d: empty word in %q", lineNum, line)
		}
		table[word] = append(table[word], strings.Join(fields[1:], " "))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum, err)
	}
	return table, nil
}

// stripVariant removes a trailing "(N)" variant marker from a word token.
func stripVariant(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}
