package simulator

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wordlebench/internal/statistics"
)

func sampleStats() *statistics.Statistics {
	stats := &statistics.Statistics{}
	for _, rounds := range []int{3, 4, 4, 5} {
		stats.Add(statistics.GameResult{Answer: "tares", Rounds: rounds, Solved: true})
	}
	return stats
}

func TestBuildReport(t *testing.T) {
	stats := sampleStats()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Second)

	report := BuildReport(Config{Strategy: "entropy", Workers: 4, Seed: 7}, stats, 372, 85, start, end)

	assert.Equal(t, "entropy", report.Strategy)
	assert.Equal(t, 4, report.Metadata.Workers)
	assert.Equal(t, int64(7), report.Metadata.Seed)
	assert.Equal(t, 372, report.Metadata.LexiconSize)
	assert.Equal(t, 85, report.Metadata.CorpusSize)
	assert.Equal(t, 2.0, report.Metadata.DurationSeconds)
	assert.Equal(t, 2.0, report.Metadata.GamesPerSecond)

	assert.Equal(t, 4, report.Results.Games)
	assert.Equal(t, 4, report.Results.Solved)
	assert.Equal(t, 4.0, report.Results.MeanRounds)
	assert.Equal(t, map[int]int{3: 1, 4: 2, 5: 1}, report.Results.Histogram)
	assert.LessOrEqual(t, report.Results.CI95Low, report.Results.MeanRounds)
	assert.GreaterOrEqual(t, report.Results.CI95High, report.Results.MeanRounds)
}

func TestReportWriteJSON(t *testing.T) {
	report := BuildReport(Config{Strategy: "naive", Seed: 1}, sampleStats(), 372, 85,
		time.Now(), time.Now().Add(time.Second))

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "naive", decoded.Strategy)
	assert.Equal(t, 4, decoded.Results.Games)
}

func TestPrintSummary(t *testing.T) {
	report := BuildReport(Config{Strategy: "entropy", Workers: 2, Seed: 1}, sampleStats(), 372, 85,
		time.Now(), time.Now().Add(time.Second))

	var buf bytes.Buffer
	PrintSummary(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "entropy strategy")
	assert.Contains(t, out, "Solved: 4/4")
	assert.Contains(t, out, "95% CI")
	assert.Contains(t, out, "3:1 4:2 5:1")
}
