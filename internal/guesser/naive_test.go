package guesser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wordlebench/internal/lexicon"
	"github.com/lox/wordlebench/internal/wordle"
)

func TestNaivePicksHighestWeight(t *testing.T) {
	lex := loadLexicon(t, "moved 50\ntares 1000\nright 40\n")
	n := NewNaive(lex)

	assert.Equal(t, "tares", n.Guess(nil))
}

func TestNaiveFiltersOnHistory(t *testing.T) {
	lex := loadLexicon(t, "tares 1000\nmoved 50\nright 40\n")
	n := NewNaive(lex)

	history := []wordle.Guess{
		{Word: "tares", Mask: wordle.Compute("right", "tares")},
	}
	assert.Equal(t, "right", n.Guess(history))
}

func TestNaiveTieGoesToFirstEncountered(t *testing.T) {
	lex := loadLexicon(t, "moved 50\nright 50\n")
	n := NewNaive(lex)

	assert.Equal(t, "moved", n.Guess(nil))
}

func TestNaiveSolvesGame(t *testing.T) {
	lex, err := lexicon.Default()
	require.NoError(t, err)

	result, err := wordle.Play(lex, "right", NewNaive(lex))
	require.NoError(t, err)
	assert.True(t, result.Won)
}
