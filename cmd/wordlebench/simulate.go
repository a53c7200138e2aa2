package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lox/wordlebench/internal/lexicon"
	"github.com/lox/wordlebench/internal/simulator"
	"github.com/lox/wordlebench/internal/statistics"
)

// SimulateCmd benchmarks a strategy across the answer corpus
type SimulateCmd struct {
	Strategy string `kong:"default='entropy',help='Guessing strategy: entropy, naive, random'"`
	Games    int    `kong:"default='0',help='Number of games to play (0 = whole corpus)'"`
	Workers  int    `kong:"default='0',help='Worker pool size (0 = all CPUs)'"`
	Seed     int64  `kong:"default='1',help='Master RNG seed; each game derives a sub-seed'"`
	Lexicon  string `kong:"help='Path to word-frequency lexicon (default: embedded)'"`
	Answers  string `kong:"help='Path to answer corpus (default: embedded)'"`
	Config   string `kong:"help='HCL run configuration file; file values take precedence'"`
	Output   string `kong:"help='Write a JSON report to this path'"`
	Progress int    `kong:"default='5',help='Seconds between progress log lines (0 disables)'"`
	Verbose  bool   `kong:"short='v',help='Print a result line for every game'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	if c.Config != "" {
		fc, err := simulator.LoadFileConfig(c.Config)
		if err != nil {
			return err
		}
		c.applyFileConfig(fc)
	}

	lex, err := loadLexicon(c.Lexicon)
	if err != nil {
		return err
	}
	answers, err := loadAnswers(c.Answers)
	if err != nil {
		return err
	}

	config := simulator.Config{
		Strategy:         c.Strategy,
		Games:            c.Games,
		Workers:          c.Workers,
		Seed:             c.Seed,
		ProgressInterval: time.Duration(c.Progress) * time.Second,
		Logger:           logger,
	}
	if c.Verbose {
		config.OnResult = printGameResult
	}

	sim := simulator.New(config, lex, answers)

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	report := simulator.BuildReport(config, stats, lex.Len(), len(answers), start, time.Now())
	simulator.PrintSummary(os.Stdout, report)

	if c.Output != "" {
		if err := report.WriteJSON(c.Output); err != nil {
			return err
		}
		logger.Info("wrote report", "path", c.Output)
	}
	return nil
}

// applyFileConfig overrides flag values with anything set in the file.
func (c *SimulateCmd) applyFileConfig(fc *simulator.FileConfig) {
	if sim := fc.Simulation; sim != nil {
		if sim.Strategy != "" {
			c.Strategy = sim.Strategy
		}
		if sim.Games > 0 {
			c.Games = sim.Games
		}
		if sim.Workers > 0 {
			c.Workers = sim.Workers
		}
		if sim.Seed != 0 {
			c.Seed = sim.Seed
		}
		if sim.ProgressSeconds > 0 {
			c.Progress = sim.ProgressSeconds
		}
	}
	if words := fc.Words; words != nil {
		if words.Lexicon != "" {
			c.Lexicon = words.Lexicon
		}
		if words.Answers != "" {
			c.Answers = words.Answers
		}
	}
}

func printGameResult(result statistics.GameResult) {
	if result.Solved {
		fmt.Printf("guessed %s in %d rounds\n", result.Answer, result.Rounds)
	} else {
		fmt.Printf("failed to guess %s\n", result.Answer)
	}
}

func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default()
	}
	return lexicon.LoadFile(path)
}

func loadAnswers(path string) ([]string, error) {
	if path == "" {
		return lexicon.DefaultAnswers()
	}
	return lexicon.LoadAnswersFile(path)
}
