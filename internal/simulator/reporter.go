package simulator

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/wordlebench/internal/fileutil"
	"github.com/lox/wordlebench/internal/statistics"
	"github.com/lox/wordlebench/internal/wordle"
)

// Static styles for summary output
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Report is the machine-readable result of a simulation run.
type Report struct {
	Strategy string         `json:"strategy"`
	Metadata ReportMetadata `json:"metadata"`
	Results  ReportResults  `json:"results"`
}

// ReportMetadata describes how the run was executed.
type ReportMetadata struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds float64   `json:"duration_seconds"`
	GamesPerSecond  float64   `json:"games_per_second"`
	Workers         int       `json:"workers"`
	Seed            int64     `json:"seed"`
	LexiconSize     int       `json:"lexicon_size"`
	CorpusSize      int       `json:"corpus_size"`
}

// ReportResults carries the aggregated statistics.
type ReportResults struct {
	Games        int     `json:"games"`
	Solved       int     `json:"solved"`
	Exhausted    int     `json:"exhausted"`
	SolveRate    float64 `json:"solve_rate"`
	MeanRounds   float64 `json:"mean_rounds"`
	MedianRounds float64 `json:"median_rounds"`
	StdDev       float64 `json:"std_dev"`
	StdError     float64 `json:"std_error"`
	CI95Low      float64 `json:"ci95_low"`
	CI95High     float64 `json:"ci95_high"`

	// Histogram maps rounds-to-solve to game counts, solved games only.
	Histogram map[int]int `json:"histogram"`
}

// BuildReport assembles a report from run configuration and statistics.
func BuildReport(config Config, stats *statistics.Statistics, lexiconSize, corpusSize int, start, end time.Time) Report {
	low, high := stats.ConfidenceInterval95()

	hist := make(map[int]int)
	for rounds, games := range stats.Histogram {
		if games > 0 {
			hist[rounds] = games
		}
	}

	duration := end.Sub(start)
	gamesPerSec := 0.0
	if duration > 0 {
		gamesPerSec = float64(stats.Games) / duration.Seconds()
	}

	return Report{
		Strategy: config.Strategy,
		Metadata: ReportMetadata{
			StartTime:       start,
			EndTime:         end,
			DurationSeconds: duration.Seconds(),
			GamesPerSecond:  gamesPerSec,
			Workers:         config.Workers,
			Seed:            config.Seed,
			LexiconSize:     lexiconSize,
			CorpusSize:      corpusSize,
		},
		Results: ReportResults{
			Games:        stats.Games,
			Solved:       stats.Solved,
			Exhausted:    stats.Exhausted,
			SolveRate:    stats.SolveRate(),
			MeanRounds:   stats.Mean(),
			MedianRounds: stats.Median(),
			StdDev:       stats.StdDev(),
			StdError:     stats.StdError(),
			CI95Low:      low,
			CI95High:     high,
			Histogram:    hist,
		},
	}
}

// WriteJSON writes the report to path atomically.
func (r Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	data = append(data, '\n')
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

// PrintSummary writes a human-readable summary of the report to w.
func PrintSummary(w io.Writer, r Report) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render(fmt.Sprintf(" %s strategy, %d games ", r.Strategy, r.Results.Games)))

	solvedLine := fmt.Sprintf("Solved: %d/%d (%.1f%%)", r.Results.Solved, r.Results.Games, r.Results.SolveRate*100)
	if r.Results.Exhausted == 0 {
		fmt.Fprintln(w, successStyle.Render(solvedLine))
	} else {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%s, %d exhausted", solvedLine, r.Results.Exhausted)))
	}

	fmt.Fprintf(w, "Rounds: mean %.3f, median %.1f, stddev %.3f\n",
		r.Results.MeanRounds, r.Results.MedianRounds, r.Results.StdDev)
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f] rounds\n", r.Results.CI95Low, r.Results.CI95High)

	if len(r.Results.Histogram) > 0 {
		fmt.Fprint(w, "Distribution:")
		for rounds := 1; rounds <= wordle.MaxRounds; rounds++ {
			if games, ok := r.Results.Histogram[rounds]; ok {
				fmt.Fprintf(w, " %d:%d", rounds, games)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("Took %.2fs (%.0f games/sec, %d workers, seed %d)",
		r.Metadata.DurationSeconds, r.Metadata.GamesPerSecond, r.Metadata.Workers, r.Metadata.Seed)))
}
