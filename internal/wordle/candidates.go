package wordle

// WeightedCandidate pairs a word with its corpus frequency weight. The weight
// is a relevance prior used by scoring strategies; it plays no part in
// consistency filtering.
type WeightedCandidate struct {
	Word   string
	Weight uint64
}

// CandidateSet is the mutable working set of words that could still be the
// answer. It only ever shrinks: each round the latest observed guess/mask
// prunes it in place. A candidate surviving round k is by induction consistent
// with every earlier round, so only the newest record needs checking.
type CandidateSet struct {
	candidates []WeightedCandidate
}

// NewCandidateSet copies the given candidates into a fresh working set.
// Iteration order is preserved; strategies rely on a stable scan order.
func NewCandidateSet(candidates []WeightedCandidate) *CandidateSet {
	cs := &CandidateSet{candidates: make([]WeightedCandidate, len(candidates))}
	copy(cs.candidates, candidates)
	return cs
}

// Len returns the number of remaining candidates.
func (cs *CandidateSet) Len() int {
	return len(cs.candidates)
}

// Candidates exposes the remaining candidates in scan order. The slice is
// owned by the set and must not be mutated or retained across a Filter.
func (cs *CandidateSet) Candidates() []WeightedCandidate {
	return cs.candidates
}

// TotalWeight sums the weights of all remaining candidates.
func (cs *CandidateSet) TotalWeight() uint64 {
	var total uint64
	for _, c := range cs.candidates {
		total += c.Weight
	}
	return total
}

// Filter removes every candidate inconsistent with observing mask after
// guessing guess. Filtering is in place and keeps relative order.
func (cs *CandidateSet) Filter(guess string, mask Mask) {
	kept := cs.candidates[:0]
	for _, c := range cs.candidates {
		if Matches(guess, mask, c.Word) {
			kept = append(kept, c)
		}
	}
	cs.candidates = kept
}

// Contains reports whether word is still in the set.
func (cs *CandidateSet) Contains(word string) bool {
	for _, c := range cs.candidates {
		if c.Word == word {
			return true
		}
	}
	return false
}
