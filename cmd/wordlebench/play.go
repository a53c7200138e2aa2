package main

import (
	"fmt"

	"github.com/lox/wordlebench/internal/guesser"
	"github.com/lox/wordlebench/internal/wordle"
)

// PlayCmd plays one game against a known answer, showing every round
type PlayCmd struct {
	Answer   string `kong:"arg,help='Hidden answer to solve for'"`
	Strategy string `kong:"default='entropy',help='Guessing strategy: entropy, naive, random'"`
	Lexicon  string `kong:"help='Path to word-frequency lexicon (default: embedded)'"`
	Seed     int64  `kong:"default='1',help='RNG seed for randomised strategies'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	lex, err := loadLexicon(c.Lexicon)
	if err != nil {
		return err
	}
	if !lex.Contains(c.Answer) {
		return fmt.Errorf("answer %q is not in the lexicon", c.Answer)
	}

	strategy, err := guesser.New(c.Strategy, lex, c.Seed, logger)
	if err != nil {
		return err
	}

	result, err := wordle.Play(lex, c.Answer, strategy)
	if err != nil {
		return err
	}

	remaining := wordle.NewCandidateSet(lex.Candidates())
	for i, g := range result.History {
		remaining.Filter(g.Word, g.Mask)
		fmt.Printf("round %2d: %s  %s  %d candidates remain\n", i+1, g.Word, g.Mask, remaining.Len())
	}
	if result.Won {
		fmt.Printf("guessed %s in %d rounds\n", c.Answer, result.Rounds)
	} else {
		fmt.Printf("failed to guess %s in %d rounds\n", c.Answer, result.Rounds)
	}
	return nil
}
