// Package guesser contains the guessing strategies the benchmark compares.
// Every strategy implements wordle.Guesser and is re-instantiated per game;
// the shared Lexicon is the only state that crosses games.
package guesser

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/wordlebench/internal/lexicon"
	"github.com/lox/wordlebench/internal/randutil"
	"github.com/lox/wordlebench/internal/wordle"
)

// Strategies lists the recognised strategy names.
func Strategies() []string {
	return []string{"entropy", "naive", "random"}
}

// New creates a fresh guesser of the named strategy. The seed only affects
// strategies that randomise; deterministic strategies ignore it.
func New(strategy string, lex *lexicon.Lexicon, seed int64, logger *log.Logger) (wordle.Guesser, error) {
	switch strategy {
	case "entropy":
		return NewEntropy(lex, logger), nil
	case "naive":
		return NewNaive(lex), nil
	case "random":
		return NewRandom(lex, randutil.New(seed)), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", strategy, Strategies())
	}
}

// lastGuess returns the most recent history record, if any.
func lastGuess(history []wordle.Guess) (wordle.Guess, bool) {
	if len(history) == 0 {
		return wordle.Guess{}, false
	}
	return history[len(history)-1], true
}
