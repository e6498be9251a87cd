// commands.go
//
// Cobra command tree for the helper CLI.
//   solve     interactive assistant: enter guesses + observed feedback,
//             get candidate counts and a suggested next guess.
//   art       inverse mode: fix a target word, search candidates whose
//             feedback against it matches a desired pattern.
//   simulate  self-play: auto-answer each suggested guess against a
//             random (or daily) hidden word until solved.
//   words     word source stats and top-scoring starter words.

package main

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/words"
)

var (
	wordsFile  string // --words: text file, one word per line
	wordsDB    string // --db: SQLite dictionary database
	simDaily   bool   // simulate --daily: deterministic word of the day
	simAnswer  string // simulate --answer: fixed hidden word
	topStarter int    // words --top: how many starters to list

	rootCmd = &cobra.Command{
		Use:   "wordle-helper",
		Short: "A constraint-based assistant for 5-letter word puzzles",
		Long: `wordle-helper narrows a candidate vocabulary from per-guess
feedback and recommends next guesses by letter frequency. The art mode
inverts the search: given a target word, it finds candidates producing a
chosen feedback pattern.`,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Interactively narrow candidates from observed feedback",
		RunE:  runSolve,
	}

	artCmd = &cobra.Command{
		Use:   "art",
		Short: "Find words that paint a chosen feedback pattern against a target",
		RunE:  runArt,
	}

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Watch the solver play itself against a hidden word",
		RunE:  runSimulate,
	}

	wordsCmd = &cobra.Command{
		Use:   "words",
		Short: "Show the loaded word source and the best starter words",
		RunE:  runWords,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&wordsFile, "words", "", "word list file (one word per line)")
	rootCmd.PersistentFlags().StringVar(&wordsDB, "db", "", "SQLite dictionary database")

	simulateCmd.Flags().BoolVar(&simDaily, "daily", false, "play the deterministic word of the day")
	simulateCmd.Flags().StringVar(&simAnswer, "answer", "", "play a fixed hidden word instead of a random one")

	wordsCmd.Flags().IntVar(&topStarter, "top", 10, "number of top-scoring starter words to list")

	rootCmd.AddCommand(solveCmd, artCmd, simulateCmd, wordsCmd)
}

// loadVocabulary resolves the word source from flags/env and returns the
// normalized list. Any failure here aborts the session.
func loadVocabulary() ([]string, string, error) {
	return words.Load(words.Config{File: wordsFile, DB: wordsDB})
}
