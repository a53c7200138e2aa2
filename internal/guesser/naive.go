package guesser

import (
	"github.com/lox/wordlebench/internal/lexicon"
	"github.com/lox/wordlebench/internal/wordle"
)

// Naive is the baseline strategy: filter to consistent candidates, then play
// the one with the highest corpus frequency. No lookahead.
type Naive struct {
	remaining *wordle.CandidateSet
}

// NewNaive creates a naive guesser seeded from the full lexicon.
func NewNaive(lex *lexicon.Lexicon) *Naive {
	return &Naive{remaining: wordle.NewCandidateSet(lex.Candidates())}
}

// Guess implements wordle.Guesser. Ties on weight go to the candidate
// encountered first in scan order.
func (n *Naive) Guess(history []wordle.Guess) string {
	if last, ok := lastGuess(history); ok {
		n.remaining.Filter(last.Word, last.Mask)
	}

	best := ""
	var bestWeight uint64
	for _, c := range n.remaining.Candidates() {
		if best == "" || c.Weight > bestWeight {
			best = c.Word
			bestWeight = c.Weight
		}
	}
	return best
}
