// Package wordle implements the core game mechanics for a fixed-length
// word-guessing puzzle: per-letter feedback computation, consistency
// filtering of candidate answers, and the round loop that drives a Guesser
// against a hidden answer.
package wordle

import "fmt"

// MaxRounds caps a single game. It is a safety bound against pathological
// strategies; nothing sensible gets anywhere near it.
const MaxRounds = 32

// Guess is one round's record: the word played and the mask observed.
// Records are immutable once appended to a game's history.
type Guess struct {
	Word string
	Mask Mask
}

// Guesser produces the next guess given the history of prior rounds.
// Implementations may carry state between calls within one game (for example
// a pruned candidate set) but must be re-instantiated per game.
type Guesser interface {
	Guess(history []Guess) string
}

// GuesserFunc adapts a plain function to the Guesser interface.
type GuesserFunc func(history []Guess) string

// Guess implements Guesser.
func (f GuesserFunc) Guess(history []Guess) string {
	return f(history)
}

// Dictionary is the membership view of the lexicon used to validate guesses.
type Dictionary interface {
	Contains(word string) bool
}

// Result is the outcome of one game.
type Result struct {
	// Won reports whether the answer was found within MaxRounds.
	Won bool
	// Rounds is the round the answer was guessed on, or MaxRounds when the
	// game was exhausted.
	Rounds int
	// History holds one record per completed round, excluding the winning
	// guess.
	History []Guess
}

// Play runs a single game of guesser against answer, validating every guess
// against dict. It returns an error only for contract violations: an invalid
// answer, or a strategy producing a word that is not a valid lexicon entry.
// Exhausting MaxRounds is a normal outcome, not an error.
func Play(dict Dictionary, answer string, guesser Guesser) (Result, error) {
	if !ValidWord(answer) {
		return Result{}, fmt.Errorf("invalid answer %q: must be %d lowercase letters", answer, WordLen)
	}

	var history []Guess
	for round := 1; round <= MaxRounds; round++ {
		guess := guesser.Guess(history)

		if !ValidWord(guess) {
			return Result{}, fmt.Errorf("strategy returned invalid word %q on round %d", guess, round)
		}
		if !dict.Contains(guess) {
			return Result{}, fmt.Errorf("strategy returned word %q not in lexicon on round %d", guess, round)
		}

		if guess == answer {
			return Result{Won: true, Rounds: round, History: history}, nil
		}

		history = append(history, Guess{Word: guess, Mask: Compute(answer, guess)})
	}

	return Result{Won: false, Rounds: MaxRounds, History: history}, nil
}
