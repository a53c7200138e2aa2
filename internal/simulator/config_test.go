package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
simulation {
  strategy         = "naive"
  games            = 250
  workers          = 4
  seed             = 42
  progress_seconds = 10
}

words {
  lexicon = "words/lexicon.txt"
  answers = "words/answers.txt"
}
`)

	config, err := LoadFileConfig(path)
	require.NoError(t, err)
	require.NotNil(t, config.Simulation)
	require.NotNil(t, config.Words)

	assert.Equal(t, "naive", config.Simulation.Strategy)
	assert.Equal(t, 250, config.Simulation.Games)
	assert.Equal(t, 4, config.Simulation.Workers)
	assert.Equal(t, int64(42), config.Simulation.Seed)
	assert.Equal(t, 10, config.Simulation.ProgressSeconds)
	assert.Equal(t, "words/lexicon.txt", config.Words.Lexicon)
	assert.Equal(t, "words/answers.txt", config.Words.Answers)
}

func TestLoadFileConfigPartial(t *testing.T) {
	path := writeConfig(t, `
simulation {
  strategy = "entropy"
}
`)

	config, err := LoadFileConfig(path)
	require.NoError(t, err)
	require.NotNil(t, config.Simulation)

	assert.Equal(t, "entropy", config.Simulation.Strategy)
	assert.Zero(t, config.Simulation.Games)
	assert.Nil(t, config.Words)
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	config, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Nil(t, config.Simulation)
	assert.Nil(t, config.Words)
}

func TestLoadFileConfigInvalidHCL(t *testing.T) {
	path := writeConfig(t, `simulation { strategy = `)
	_, err := LoadFileConfig(path)
	assert.Error(t, err)
}

func TestLoadFileConfigUnknownBlock(t *testing.T) {
	path := writeConfig(t, `
network {
  port = 9000
}
`)
	_, err := LoadFileConfig(path)
	assert.Error(t, err)
}
