// Package statistics aggregates per-game results into the summary numbers a
// benchmark run reports: solve rate, round distribution, and uncertainty on
// the mean.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lox/wordlebench/internal/wordle"
)

// GameResult is the outcome of a single simulated game.
type GameResult struct {
	Answer   string        // The hidden answer for this game
	Rounds   int           // Rounds used (MaxRounds when exhausted)
	Solved   bool          // Whether the answer was found within the cap
	Seed     int64         // Per-game RNG seed (for replay)
	Duration time.Duration // Wall time spent on this game
}

// Statistics accumulates game results. Only solved games contribute to the
// round statistics; exhausted games are counted separately since they carry
// no score.
type Statistics struct {
	Games     int
	Solved    int
	Exhausted int

	SumRounds  float64
	SumRounds2 float64   // Sum of squares for variance
	Values     []float64 // Rounds per solved game, for median/percentiles

	// Histogram[r] counts games solved in exactly r rounds.
	Histogram [wordle.MaxRounds + 1]int

	TotalDuration time.Duration
}

// Add incorporates one game result.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.TotalDuration += result.Duration

	if !result.Solved {
		s.Exhausted++
		return
	}

	rounds := float64(result.Rounds)
	s.Solved++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)
	if result.Rounds >= 1 && result.Rounds <= wordle.MaxRounds {
		s.Histogram[result.Rounds]++
	}
}

// Merge folds other into s. Used when per-worker accumulators are combined
// after a parallel run.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Solved += other.Solved
	s.Exhausted += other.Exhausted
	s.SumRounds += other.SumRounds
	s.SumRounds2 += other.SumRounds2
	s.Values = append(s.Values, other.Values...)
	for r, n := range other.Histogram {
		s.Histogram[r] += n
	}
	s.TotalDuration += other.TotalDuration
}

// SolveRate returns the fraction of games solved within the round cap.
func (s *Statistics) SolveRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Games)
}

// Mean returns the mean rounds per solved game.
func (s *Statistics) Mean() float64 {
	if s.Solved == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Solved)
}

// Variance returns the sample variance of rounds per solved game.
func (s *Statistics) Variance() float64 {
	if s.Solved < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Solved)*mean*mean) / float64(s.Solved-1)
}

// StdDev returns the sample standard deviation of rounds per solved game.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Solved == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Solved))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median rounds per solved game.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the p-th percentile (0..1) of rounds per solved game,
// linearly interpolated.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// GamesPerSecond returns throughput over the accumulated game durations.
func (s *Statistics) GamesPerSecond() float64 {
	if s.TotalDuration <= 0 {
		return 0
	}
	return float64(s.Games) / s.TotalDuration.Seconds()
}

// Validate checks internal consistency of the accumulator.
func (s *Statistics) Validate() error {
	if s.Solved+s.Exhausted != s.Games {
		return fmt.Errorf("solved (%d) + exhausted (%d) != games (%d)", s.Solved, s.Exhausted, s.Games)
	}
	if len(s.Values) != s.Solved {
		return fmt.Errorf("have %d round samples for %d solved games", len(s.Values), s.Solved)
	}
	histTotal := 0
	for _, n := range s.Histogram {
		histTotal += n
	}
	if histTotal != s.Solved {
		return fmt.Errorf("histogram total (%d) != solved (%d)", histTotal, s.Solved)
	}
	return nil
}
