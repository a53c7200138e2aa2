package wordle

import "strings"

// WordLen is the fixed word length. The engine does not support other lengths;
// callers are expected to validate words before they cross into this package.
const WordLen = 5

// Outcome is the per-letter feedback for a single guess position.
type Outcome uint8

const (
	// Correct means the letter is in the answer at this position.
	Correct Outcome = iota
	// Misplaced means the letter is in the answer at a different position.
	Misplaced
	// Absent means no unclaimed occurrence of the letter remains in the answer.
	Absent
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	case Absent:
		return "absent"
	}
	return "unknown"
}

// NumPatterns is the number of distinct masks (3^WordLen).
const NumPatterns = 243

// Mask is the full feedback for one guess, one Outcome per position.
// Masks are comparable and can be used as map keys.
type Mask [WordLen]Outcome

// Ordinal returns the base-3 index of the mask in [0, NumPatterns).
// Position 0 is the most significant digit.
func (m Mask) Ordinal() int {
	n := 0
	for _, o := range m {
		n = n*3 + int(o)
	}
	return n
}

// MaskFromOrdinal is the inverse of Ordinal.
func MaskFromOrdinal(n int) Mask {
	var m Mask
	for i := WordLen - 1; i >= 0; i-- {
		m[i] = Outcome(n % 3)
		n /= 3
	}
	return m
}

// AllCorrect reports whether every position is Correct.
func (m Mask) AllCorrect() bool {
	return m == Mask{Correct, Correct, Correct, Correct, Correct}
}

// String renders the mask as one rune per position: G for Correct,
// Y for Misplaced, and . for Absent.
func (m Mask) String() string {
	var b strings.Builder
	for _, o := range m {
		switch o {
		case Correct:
			b.WriteByte('G')
		case Misplaced:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Compute returns the feedback mask for guess against answer.
//
// Two passes: exact matches first, each consuming its answer position, then
// misplaced matches, each consuming the leftmost unconsumed answer position
// holding the guessed letter. The consume-on-first-match order is what makes
// duplicate letters come out right: a guess letter can claim at most one
// answer occurrence, and exact matches claim theirs before any misplaced one.
//
// Both inputs must already be WordLen lowercase letters.
func Compute(answer, guess string) Mask {
	var m Mask
	var used [WordLen]bool

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			m[i] = Correct
			used[i] = true
		} else {
			m[i] = Absent
		}
	}

	for i := 0; i < WordLen; i++ {
		if m[i] == Correct {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if !used[j] && answer[j] == guess[i] {
				m[i] = Misplaced
				used[j] = true
				break
			}
		}
	}

	return m
}

// Matches reports whether candidate could be the hidden answer, given that
// guessing guess against it produced mask. It is exactly equivalent to
// Compute(candidate, guess) == mask but avoids building the second mask.
//
// The letter budget works on counts: candidate letters at non-Correct
// positions form the pool a Misplaced mark consumes from. Non-Correct
// positions are walked in order, mirroring Compute's left-to-right second
// pass, so a mask that marks a letter Absent before marking the same letter
// Misplaced later can never match (Compute would have claimed the earlier
// position first).
func Matches(guess string, mask Mask, candidate string) bool {
	var pool [26]int

	for i := 0; i < WordLen; i++ {
		if mask[i] == Correct {
			if candidate[i] != guess[i] {
				return false
			}
			continue
		}
		// A matching letter here would have been marked Correct.
		if candidate[i] == guess[i] {
			return false
		}
		pool[candidate[i]-'a']++
	}

	for i := 0; i < WordLen; i++ {
		switch mask[i] {
		case Misplaced:
			if pool[guess[i]-'a'] == 0 {
				return false
			}
			pool[guess[i]-'a']--
		case Absent:
			if pool[guess[i]-'a'] > 0 {
				return false
			}
		}
	}

	return true
}

// ValidWord reports whether s is exactly WordLen lowercase ASCII letters.
func ValidWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
