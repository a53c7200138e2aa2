package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLexicon = `tares 1000
stare 900
moved 50
right 40
wrong 30
`

func TestLoad(t *testing.T) {
	lex, err := Load(strings.NewReader(sampleLexicon))
	require.NoError(t, err)

	assert.Equal(t, 5, lex.Len())
	assert.True(t, lex.Contains("tares"))
	assert.True(t, lex.Contains("wrong"))
	assert.False(t, lex.Contains("brink"))

	// Source order is preserved.
	entries := lex.Entries()
	assert.Equal(t, "tares", entries[0].Word)
	assert.Equal(t, uint64(1000), entries[0].Count)
	assert.Equal(t, "wrong", entries[4].Word)

	candidates := lex.Candidates()
	require.Len(t, candidates, 5)
	assert.Equal(t, "stare", candidates[1].Word)
	assert.Equal(t, uint64(900), candidates[1].Weight)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	lex, err := Load(strings.NewReader("tares 10\n\n\nstare 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing count", "tares\n"},
		{"word too short", "tare 10\n"},
		{"word too long", "taress 10\n"},
		{"uppercase word", "Tares 10\n"},
		{"non-numeric count", "tares ten\n"},
		{"negative count", "tares -5\n"},
		{"duplicate word", "tares 10\ntares 20\n"},
		{"empty input", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(test.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadAnswers(t *testing.T) {
	answers, err := LoadAnswers(strings.NewReader("moved right\nwrong\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"moved", "right", "wrong"}, answers)
}

func TestLoadAnswersRejectsMalformedInput(t *testing.T) {
	_, err := LoadAnswers(strings.NewReader("moved nope!\n"))
	assert.Error(t, err)

	_, err = LoadAnswers(strings.NewReader("   \n"))
	assert.Error(t, err)
}

func TestDefaultLexicon(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	assert.Greater(t, lex.Len(), 100)
	// The entropy opener must always be a legal guess.
	assert.True(t, lex.Contains("tares"))
}

// TestDefaultAnswersAreInLexicon guards the shipped data: every default
// answer must be playable against the default lexicon.
func TestDefaultAnswersAreInLexicon(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)
	answers, err := DefaultAnswers()
	require.NoError(t, err)

	require.NotEmpty(t, answers)
	for _, answer := range answers {
		assert.True(t, lex.Contains(answer), "answer %q missing from lexicon", answer)
	}
}
