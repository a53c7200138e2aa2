// Package lexicon loads the word-frequency table and answer corpus that
// drive simulations. The lexicon is immutable after load and safe to share
// across concurrent games.
package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox/wordlebench/internal/wordle"
)

//go:embed data/lexicon.txt
var embeddedLexicon string

//go:embed data/answers.txt
var embeddedAnswers string

// Entry is one lexicon line: a word and its corpus frequency.
type Entry struct {
	Word  string
	Count uint64
}

// Lexicon is the ordered word-frequency table plus a membership set derived
// from the same source. Entry order follows the source, most frequent first
// in the shipped data; strategies depend on that order being stable.
type Lexicon struct {
	entries []Entry
	words   map[string]struct{}
}

// Load parses a lexicon from r, one "<word> <count>" pair per line. Any
// malformed line fails the whole load; there are no partial lexicons.
func Load(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		word, countStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("lexicon line %d: expected \"word count\", got %q", lineNum, line)
		}
		if !wordle.ValidWord(word) {
			return nil, fmt.Errorf("lexicon line %d: invalid word %q", lineNum, word)
		}
		count, err := strconv.ParseUint(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: invalid count for %q: %w", lineNum, word, err)
		}

		if _, dup := lex.words[word]; dup {
			return nil, fmt.Errorf("lexicon line %d: duplicate word %q", lineNum, word)
		}
		lex.entries = append(lex.entries, Entry{Word: word, Count: count})
		lex.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}
	if len(lex.entries) == 0 {
		return nil, fmt.Errorf("lexicon is empty")
	}

	return lex, nil
}

// LoadFile loads a lexicon from path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded lexicon shipped with the binary.
func Default() (*Lexicon, error) {
	return Load(strings.NewReader(embeddedLexicon))
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Contains reports whether word is a valid guess.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Entries returns the entries in source order. The slice is owned by the
// lexicon and must not be mutated.
func (l *Lexicon) Entries() []Entry {
	return l.entries
}

// Candidates converts the full table into the weighted candidate slice a
// strategy seeds its working set from, preserving source order.
func (l *Lexicon) Candidates() []wordle.WeightedCandidate {
	out := make([]wordle.WeightedCandidate, len(l.entries))
	for i, e := range l.entries {
		out[i] = wordle.WeightedCandidate{Word: e.Word, Weight: e.Count}
	}
	return out
}

// LoadAnswers parses a whitespace-separated answer corpus from r. Every
// entry must be a valid word; a malformed entry fails the whole load.
func LoadAnswers(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, fmt.Errorf("answer corpus is empty")
	}
	for _, w := range fields {
		if !wordle.ValidWord(w) {
			return nil, fmt.Errorf("invalid answer %q in corpus", w)
		}
	}
	return fields, nil
}

// LoadAnswersFile loads an answer corpus from path.
func LoadAnswersFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answers: %w", err)
	}
	defer f.Close()
	return LoadAnswers(f)
}

// DefaultAnswers returns the embedded answer corpus.
func DefaultAnswers() ([]string, error) {
	return LoadAnswers(strings.NewReader(embeddedAnswers))
}
