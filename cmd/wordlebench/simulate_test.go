package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/wordlebench/internal/simulator"
)

func TestApplyFileConfigOverridesFlags(t *testing.T) {
	cmd := &SimulateCmd{
		Strategy: "entropy",
		Games:    100,
		Seed:     1,
		Progress: 5,
	}

	cmd.applyFileConfig(&simulator.FileConfig{
		Simulation: &simulator.SimulationBlock{
			Strategy: "naive",
			Games:    250,
			Workers:  4,
			Seed:     42,
		},
		Words: &simulator.WordsBlock{
			Lexicon: "custom/lexicon.txt",
		},
	})

	assert.Equal(t, "naive", cmd.Strategy)
	assert.Equal(t, 250, cmd.Games)
	assert.Equal(t, 4, cmd.Workers)
	assert.Equal(t, int64(42), cmd.Seed)
	assert.Equal(t, 5, cmd.Progress)
	assert.Equal(t, "custom/lexicon.txt", cmd.Lexicon)
	assert.Empty(t, cmd.Answers)
}

func TestApplyFileConfigEmptyKeepsFlags(t *testing.T) {
	cmd := &SimulateCmd{
		Strategy: "random",
		Games:    50,
		Workers:  2,
		Seed:     9,
		Progress: 3,
	}

	cmd.applyFileConfig(&simulator.FileConfig{})

	assert.Equal(t, "random", cmd.Strategy)
	assert.Equal(t, 50, cmd.Games)
	assert.Equal(t, 2, cmd.Workers)
	assert.Equal(t, int64(9), cmd.Seed)
	assert.Equal(t, 3, cmd.Progress)
}
