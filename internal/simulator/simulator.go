// Package simulator drives batch benchmark runs: one game per corpus answer,
// fanned out over a worker pool, aggregated into statistics and a report.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wordlebench/internal/guesser"
	"github.com/lox/wordlebench/internal/lexicon"
	"github.com/lox/wordlebench/internal/randutil"
	"github.com/lox/wordlebench/internal/statistics"
	"github.com/lox/wordlebench/internal/wordle"
)

// Config holds configuration for a simulation run.
type Config struct {
	// Strategy names the guesser to benchmark (see guesser.Strategies).
	Strategy string
	// Games limits how many corpus answers are played; 0 plays them all.
	Games int
	// Workers is the worker pool size; 0 uses GOMAXPROCS-worth of CPUs.
	Workers int
	// Seed is the master seed; each game derives its own sub-seed from it.
	Seed int64
	// ProgressInterval throttles progress logging; 0 disables it.
	ProgressInterval time.Duration
	// Clock is used for progress timing; nil means the real clock.
	Clock quartz.Clock
	// OnResult, when set, is invoked for every finished game from the
	// collector goroutine, in completion order.
	OnResult func(statistics.GameResult)

	Logger *log.Logger
}

// Simulator runs one guessing strategy across an answer corpus. Games are
// independent: the lexicon is immutable after load and every game owns its
// guesser, so workers share nothing mutable.
type Simulator struct {
	config  Config
	lex     *lexicon.Lexicon
	answers []string
}

// New creates a simulator over the given lexicon and answer corpus.
func New(config Config, lex *lexicon.Lexicon, answers []string) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config, lex: lex, answers: answers}
}

// Run executes the simulation and returns aggregated statistics. A strategy
// contract violation (an invalid or out-of-lexicon guess) aborts the whole
// run; exhausted games are normal results and never abort.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	answers := s.answers
	if s.config.Games > 0 && s.config.Games < len(answers) {
		answers = answers[:s.config.Games]
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(answers) {
		workers = len(answers)
	}

	s.config.Logger.Debug("starting simulation",
		"strategy", s.config.Strategy,
		"games", len(answers),
		"workers", workers,
		"seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan statistics.GameResult, workers)

	g.Go(func() error {
		defer close(jobs)
		for i := range answers {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				result, err := s.playGame(answers[i], i)
				if err != nil {
					return err
				}
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(results)
		g.Wait()
	}()

	stats := &statistics.Statistics{}
	progress := NewProgress(s.config.Clock, s.config.Logger, len(answers), s.config.ProgressInterval)
	for result := range results {
		stats.Add(result)
		progress.Observe()
		if s.config.OnResult != nil {
			s.config.OnResult(result)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGame runs a single game with a freshly instantiated guesser.
func (s *Simulator) playGame(answer string, index int) (statistics.GameResult, error) {
	seed := randutil.Sub(s.config.Seed, index)

	strategy, err := guesser.New(s.config.Strategy, s.lex, seed, s.config.Logger)
	if err != nil {
		return statistics.GameResult{}, err
	}

	start := time.Now()
	result, err := wordle.Play(s.lex, answer, strategy)
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("game for answer %q: %w", answer, err)
	}

	return statistics.GameResult{
		Answer:   answer,
		Rounds:   result.Rounds,
		Solved:   result.Won,
		Seed:     seed,
		Duration: time.Since(start),
	}, nil
}
