package guesser

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/lox/wordlebench/internal/lexicon"
	"github.com/lox/wordlebench/internal/wordle"
)

// openingGuess is the fixed first guess. Chosen offline for its historically
// high first-round information gain; re-deriving it every run would spend the
// most expensive scoring pass on an answer that never changes.
const openingGuess = "tares"

// Entropy picks, each round, the remaining candidate whose outcome
// distribution against the rest of the remaining set carries the most
// Shannon entropy, i.e. the guess expected to shrink the search space the
// most. Candidate guesses are restricted to the remaining set itself.
type Entropy struct {
	remaining *wordle.CandidateSet
	logger    *log.Logger
}

// NewEntropy creates an entropy-maximising guesser seeded from the full
// lexicon.
func NewEntropy(lex *lexicon.Lexicon, logger *log.Logger) *Entropy {
	return &Entropy{
		remaining: wordle.NewCandidateSet(lex.Candidates()),
		logger:    logger.WithPrefix("entropy"),
	}
}

// Guess implements wordle.Guesser.
//
// Scoring buckets every remaining candidate c by Compute(c, w).Ordinal() and
// sums weights per bucket, which is equivalent to enumerating all 243 masks
// and testing Matches(w, mask, c) but costs one mask computation per pair.
// Ties are broken by scan order: the first candidate to reach the best score
// wins (strict > comparison), which is deterministic because the remaining
// set preserves lexicon order.
func (e *Entropy) Guess(history []wordle.Guess) string {
	if last, ok := lastGuess(history); ok {
		e.remaining.Filter(last.Word, last.Mask)
	}

	// Custom lexicons may not carry the precomputed opener; fall through to
	// scoring in that case.
	if len(history) == 0 && e.remaining.Contains(openingGuess) {
		return openingGuess
	}

	candidates := e.remaining.Candidates()
	total := float64(e.remaining.TotalWeight())

	best := ""
	bestScore := math.Inf(-1)
	var buckets [wordle.NumPatterns]uint64

	for _, w := range candidates {
		for i := range buckets {
			buckets[i] = 0
		}
		for _, c := range candidates {
			buckets[wordle.Compute(c.Word, w.Word).Ordinal()] += c.Weight
		}

		var score float64
		for _, weight := range buckets {
			if weight == 0 {
				continue
			}
			p := float64(weight) / total
			score -= p * math.Log2(p)
		}

		if score > bestScore {
			best = w.Word
			bestScore = score
		}
	}

	e.logger.Debug("selected guess",
		"round", len(history)+1,
		"guess", best,
		"bits", bestScore,
		"remaining", len(candidates))

	return best
}
