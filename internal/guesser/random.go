package guesser

import (
	rand "math/rand/v2"

	"github.com/lox/wordlebench/internal/lexicon"
	"github.com/lox/wordlebench/internal/wordle"
)

// Random plays a uniformly random consistent candidate each round. It exists
// to give the benchmark a noise floor: any strategy worth keeping should beat
// it comfortably.
type Random struct {
	remaining *wordle.CandidateSet
	rng       *rand.Rand
}

// NewRandom creates a random guesser seeded from the full lexicon. The rng
// should be derived per game so runs stay reproducible.
func NewRandom(lex *lexicon.Lexicon, rng *rand.Rand) *Random {
	return &Random{
		remaining: wordle.NewCandidateSet(lex.Candidates()),
		rng:       rng,
	}
}

// Guess implements wordle.Guesser.
func (r *Random) Guess(history []wordle.Guess) string {
	if last, ok := lastGuess(history); ok {
		r.remaining.Filter(last.Word, last.Mask)
	}

	candidates := r.remaining.Candidates()
	if len(candidates) == 0 {
		return ""
	}
	return candidates[r.rng.IntN(len(candidates))].Word
}
